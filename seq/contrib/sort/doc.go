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
// Package sort provides in-place insertion sorts over seq cursor ranges.
//
// Two algorithmically equivalent variants are offered:
//   - InsertionSort / InsertionSortFunc shift larger elements one slot to
//     the right until the key's slot is found
//   - BinaryInsertionSort / BinaryInsertionSortFunc locate the slot with
//     algo.UpperBound and move the key there with algo.Rotate
//
// Both are stable. The shift-based sort never allocates; the
// library-composed sort allocates at most once per call, when it checks
// begin for seq.RandomAccess.
//
// # Comparators
//
// A comparator less(a, b) reports whether a must precede b. It must be a
// strict weak ordering: irreflexive, transitive, with transitive
// incomparability. The result for other comparators is undefined; the
// functions do not check. The Ordered entry points use Less, which follows
// cmp.Less and therefore places NaNs first.
//
// The sequence must not be modified by anyone else while it is sorted.
//
// # Complexity
//
// Shift-based: O(n²) comparisons and moves in the worst case. An already
// sorted range costs n-1 comparisons and no moves.
//
// Library-composed: O(n log n) comparisons on random-access cursors (slices)
// and O(n²) on bidirectional cursors (lists), where the search degrades to a
// forward linear scan over the whole sorted prefix. Sorted input is no
// shortcut: a list of n sorted elements still costs n(n-1)/2 comparisons.
// Element moves are O(n²) in the worst case either way.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-isort/seq/contrib/sort"
//
//	func Process(data []int, l *seq.List[string]) {
//	    sort.Slice(data, sort.Shift)
//	    sort.InsertionSortFunc[string](l.Begin(), l.End(), sort.Greater[string])
//	}
package sort
