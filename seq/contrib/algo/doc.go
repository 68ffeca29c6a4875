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
// Package algo provides range primitives over seq cursors.
//
// The functions mirror the classic iterator algorithms: they take half-open
// ranges [first, last) of cursors and a comparator, and only reassign values
// already stored in the sequence.
//
//   - UpperBound finds the insertion point that keeps equal elements in order
//   - UpperBoundRandom does the same from an already asserted seq.RandomAccess
//   - Rotate moves a block of elements in front of another in place
//   - IterSwap exchanges the values of two slots
//   - IsSorted, IsSortedUntil and Equal inspect ranges
//
// Searches use binary search when the cursors implement seq.RandomAccess and
// fall back to a linear scan otherwise. Only UpperBound may allocate: it
// boxes its first cursor to look for seq.RandomAccess.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-isort/seq/contrib/algo"
//
//	func Insert(s []int, i int) {
//	    it := seq.SliceAt(s, i)
//	    p := algo.UpperBound[int](seq.SliceBegin(s), it, it.Get(), cmp.Less[int])
//	    algo.Rotate[int](p, it, it.Next())
//	}
package algo
