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

// IsSortedUntil returns the first cursor p in [first, last) such that
// less(p.Get(), p.Prev().Get()) holds, or last if the range is sorted.
func IsSortedUntil[T any, C seq.Cursor[T, C]](first, last C, less func(a, b T) bool) C {
	if first.Equal(last) {
		return last
	}
	prev := first
	for p := first.Next(); !p.Equal(last); p = p.Next() {
		if less(p.Get(), prev.Get()) {
			return p
		}
		prev = p
	}
	return last
}

// IsSorted reports whether no element of [first, last) precedes its
// predecessor under less.
func IsSorted[T any, C seq.Cursor[T, C]](first, last C, less func(a, b T) bool) bool {
	return IsSortedUntil[T](first, last, less).Equal(last)
}

// Equal reports whether [first, last) holds the same values as want, in order.
func Equal[T comparable, C seq.Cursor[T, C]](first, last C, want []T) bool {
	i := 0
	for p := first; !p.Equal(last); p = p.Next() {
		if i >= len(want) || p.Get() != want[i] {
			return false
		}
		i++
	}
	return i == len(want)
}
