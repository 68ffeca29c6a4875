// Copyright 2026 go-isort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package algo

import "github.com/ajroetker/go-isort/seq"

// IterSwap exchanges the values stored at a and b.
func IterSwap[T any, C seq.Cursor[T, C]](a, b C) {
	va := a.Get()
	a.Set(b.Get())
	b.Set(va)
}

// Rotate rotates [first, last) to the left so that the element at middle
// becomes the first one. Elements of [first, middle) and [middle, last) keep
// their relative order.
//
// It returns the new position of the element previously at first. middle
// must lie within [first, last].
func Rotate[T any, C seq.Cursor[T, C]](first, middle, last C) C {
	if first.Equal(middle) {
		return last
	}
	if middle.Equal(last) {
		return first
	}

	// Swap the left block forward one block at a time; whenever the left
	// block is exhausted the remaining right part becomes the new problem.
	next := middle
	for {
		IterSwap[T](first, next)
		first, next = first.Next(), next.Next()
		if first.Equal(middle) {
			middle = next
		}
		if next.Equal(last) {
			break
		}
	}
	ret := first

	next = middle
	for !next.Equal(last) {
		IterSwap[T](first, next)
		first, next = first.Next(), next.Next()
		if first.Equal(middle) {
			middle = next
		} else if next.Equal(last) {
			next = middle
		}
	}
	return ret
}
