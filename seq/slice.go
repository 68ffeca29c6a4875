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

package seq

// SliceCursor is a random-access cursor over a slice.
//
// Cursors are only comparable when they were derived from the same slice.
type SliceCursor[T any] struct {
	s []T
	i int
}

// SliceBegin returns the cursor of the first element of s.
func SliceBegin[T any](s []T) SliceCursor[T] {
	return SliceCursor[T]{s: s}
}

// SliceEnd returns the cursor one past the last element of s.
func SliceEnd[T any](s []T) SliceCursor[T] {
	return SliceCursor[T]{s: s, i: len(s)}
}

// SliceAt returns the cursor of s[i]. i may equal len(s).
func SliceAt[T any](s []T, i int) SliceCursor[T] {
	if i < 0 || i > len(s) {
		panic("seq: slice cursor index out of range")
	}
	return SliceCursor[T]{s: s, i: i}
}

func (c SliceCursor[T]) Equal(other SliceCursor[T]) bool {
	return c.i == other.i
}

func (c SliceCursor[T]) Next() SliceCursor[T] {
	return SliceCursor[T]{c.s, c.i + 1}
}

func (c SliceCursor[T]) Prev() SliceCursor[T] {
	return SliceCursor[T]{c.s, c.i - 1}
}

func (c SliceCursor[T]) Get() T {
	return c.s[c.i]
}

func (c SliceCursor[T]) Set(v T) {
	c.s[c.i] = v
}

// Advance returns the cursor n slots away from c.
func (c SliceCursor[T]) Advance(n int) SliceCursor[T] {
	return SliceCursor[T]{c.s, c.i + n}
}

// Distance returns other's index minus c's index.
func (c SliceCursor[T]) Distance(other SliceCursor[T]) int {
	return other.i - c.i
}

// Index returns the position of c in its slice.
func (c SliceCursor[T]) Index() int {
	return c.i
}
