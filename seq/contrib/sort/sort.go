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
package sort

import (
	"cmp"

	"github.com/ajroetker/go-isort/seq"
	"github.com/ajroetker/go-isort/seq/contrib/algo"
)

// InsertionSort sorts [begin, end) in ascending order using the
// shift-based insertion sort.
func InsertionSort[T cmp.Ordered, C seq.Cursor[T, C]](begin, end C) {
	InsertionSortFunc[T](begin, end, Less[T])
}

// InsertionSortFunc sorts [begin, end) in place so that less never holds
// for an element and its predecessor. Equal elements keep their order.
func InsertionSortFunc[T any, C seq.Cursor[T, C]](begin, end C, less func(a, b T) bool) {
	if begin.Equal(end) {
		return
	}

	for j := begin; !j.Equal(end); j = j.Next() {
		key := j.Get()
		i := j
		for !i.Equal(begin) {
			prev := i.Prev()
			v := prev.Get()
			if !less(key, v) {
				break
			}
			i.Set(v)
			i = prev
		}
		i.Set(key)
	}
}

// BinaryInsertionSort sorts [begin, end) in ascending order using the
// search-and-rotate insertion sort.
func BinaryInsertionSort[T cmp.Ordered, C seq.Cursor[T, C]](begin, end C) {
	BinaryInsertionSortFunc[T](begin, end, Less[T])
}

// BinaryInsertionSortFunc sorts [begin, end) in place, growing a sorted
// prefix one element at a time: the next element is rotated into the slot
// returned by algo.UpperBound, after any equal elements, so the sort is
// stable.
//
// Random access is detected once per call, which may allocate once.
func BinaryInsertionSortFunc[T any, C seq.Cursor[T, C]](begin, end C, less func(a, b T) bool) {
	if begin.Equal(end) {
		return
	}

	ra, random := any(begin).(seq.RandomAccess[C])
	sorted := 1
	for it := begin.Next(); !it.Equal(end); it = it.Next() {
		var p C
		if random {
			p = algo.UpperBoundRandom[T](ra, sorted, it.Get(), less)
		} else {
			p = algo.UpperBound[T](begin, it, it.Get(), less)
		}
		algo.Rotate[T](p, it, it.Next())
		sorted++
	}
}
