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

import "cmp"

// Less is the default ascending comparator.
func Less[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// Greater orders elements descending.
func Greater[T cmp.Ordered](a, b T) bool {
	return cmp.Less(b, a)
}

// Reverse returns a comparator ordering elements opposite to less.
func Reverse[T any](less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool { return less(b, a) }
}

// ByKey orders elements ascending by a derived key.
func ByKey[T any, K cmp.Ordered](key func(T) K) func(a, b T) bool {
	return func(a, b T) bool { return cmp.Less(key(a), key(b)) }
}

// FromCompare adapts a three-way comparison (negative, zero, positive) such
// as strings.Compare or cmp.Compare.
func FromCompare[T any](compare func(a, b T) int) func(a, b T) bool {
	return func(a, b T) bool { return compare(a, b) < 0 }
}

// Comparable is implemented by types that order themselves.
type Comparable[T any] interface {
	CompareTo(other T) int
}

// ByCompareTo orders elements by their CompareTo method.
func ByCompareTo[T Comparable[T]]() func(a, b T) bool {
	return func(a, b T) bool { return a.CompareTo(b) < 0 }
}
