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
	"fmt"

	"github.com/ajroetker/go-isort/seq"
)

// Variant selects an insertion sort implementation.
type Variant int

const (
	// Shift moves elements one slot at a time while scanning backward.
	Shift Variant = iota

	// Binary searches the insertion point and rotates the key into place.
	Binary
)

// String returns the variant's name as accepted by ParseVariant.
func (v Variant) String() string {
	switch v {
	case Shift:
		return "shift"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	return []Variant{Shift, Binary}
}

// ParseVariant returns the variant named s.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown sort variant %q (want shift or binary)", s)
}

// SortFunc sorts [begin, end) with the given variant.
func SortFunc[T any, C seq.Cursor[T, C]](v Variant, begin, end C, less func(a, b T) bool) {
	switch v {
	case Shift:
		InsertionSortFunc[T](begin, end, less)
	case Binary:
		BinaryInsertionSortFunc[T](begin, end, less)
	default:
		panic(fmt.Sprintf("sort: unknown variant %d", int(v)))
	}
}

// Slice sorts data in ascending order.
func Slice[T cmp.Ordered](data []T, v Variant) {
	SliceFunc(data, v, Less[T])
}

// SliceFunc sorts data by less.
func SliceFunc[T any](data []T, v Variant, less func(a, b T) bool) {
	SortFunc[T](v, seq.SliceBegin(data), seq.SliceEnd(data), less)
}

// List sorts l in ascending order.
func List[T cmp.Ordered](l *seq.List[T], v Variant) {
	ListFunc(l, v, Less[T])
}

// ListFunc sorts l by less.
func ListFunc[T any](l *seq.List[T], v Variant, less func(a, b T) bool) {
	SortFunc[T](v, l.Begin(), l.End(), less)
}
