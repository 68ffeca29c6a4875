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

// UpperBound returns the first cursor p in [first, last) such that
// less(value, p.Get()) holds, or last if there is none.
//
// [first, last) must be partitioned with respect to value, which is the case
// when it is sorted by less. Inserting value at the returned position places
// it after every element equal to it.
//
// Detecting random access boxes first, which allocates for cursors that are
// not pointer-shaped such as seq.SliceCursor. Callers searching repeatedly
// should assert seq.RandomAccess once and use UpperBoundRandom.
func UpperBound[T any, C seq.Cursor[T, C]](first, last C, value T, less func(a, b T) bool) C {
	if ra, ok := any(first).(seq.RandomAccess[C]); ok {
		return UpperBoundRandom(ra, ra.Distance(last), value, less)
	}
	for p := first; !p.Equal(last); p = p.Next() {
		if less(value, p.Get()) {
			return p
		}
	}
	return last
}

// UpperBoundRandom is UpperBound over the n slots starting at the cursor
// behind ra, using binary search. It does not allocate.
func UpperBoundRandom[T any, C seq.Cursor[T, C]](ra seq.RandomAccess[C], n int, value T, less func(a, b T) bool) C {
	lo := 0
	for n > 0 {
		half := n / 2
		if less(value, ra.Advance(lo+half).Get()) {
			n = half
		} else {
			lo += half + 1
			n -= half + 1
		}
	}
	return ra.Advance(lo)
}
