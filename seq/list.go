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

import (
	"fmt"
	"strings"
)

// node is one slot of a List. The root node is a sentinel: it holds no
// value and serves as the end position, so root.next is the front and
// root.prev is the back.
type node[T any] struct {
	next, prev *node[T]
	value      T
}

// List is a doubly linked list whose cursors are bidirectional only.
//
// The zero value is an empty list ready to use. A List must not be copied
// after first use.
type List[T any] struct {
	root node[T]
	len  int
}

// NewList returns a list holding values in order.
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

func (l *List[T]) insertAfter(v T, at *node[T]) {
	n := &node[T]{value: v, prev: at, next: at.next}
	at.next.prev = n
	at.next = n
	l.len++
}

// PushBack appends v at the back of the list.
func (l *List[T]) PushBack(v T) {
	l.lazyInit()
	l.insertAfter(v, l.root.prev)
}

// PushFront inserts v at the front of the list.
func (l *List[T]) PushFront(v T) {
	l.lazyInit()
	l.insertAfter(v, &l.root)
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.len }

// Front returns the first element and whether the list is non-empty.
func (l *List[T]) Front() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.root.next.value, true
}

// Back returns the last element and whether the list is non-empty.
func (l *List[T]) Back() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.root.prev.value, true
}

// Begin returns the cursor of the first element, or End for an empty list.
func (l *List[T]) Begin() ListCursor[T] {
	l.lazyInit()
	return ListCursor[T]{n: l.root.next}
}

// End returns the past-the-end cursor.
func (l *List[T]) End() ListCursor[T] {
	l.lazyInit()
	return ListCursor[T]{n: &l.root}
}

// Values returns the elements front to back.
func (l *List[T]) Values() []T {
	return Values[T](l.Begin(), l.End())
}

// String formats the list like a slice, e.g. "[1 2 3]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for c := l.Begin(); !c.Equal(l.End()); c = c.Next() {
		if !c.Equal(l.Begin()) {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, c.Get())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ListCursor is a bidirectional cursor over a List.
type ListCursor[T any] struct {
	n *node[T]
}

func (c ListCursor[T]) Equal(other ListCursor[T]) bool {
	return c.n == other.n
}

func (c ListCursor[T]) Next() ListCursor[T] {
	return ListCursor[T]{c.n.next}
}

func (c ListCursor[T]) Prev() ListCursor[T] {
	return ListCursor[T]{c.n.prev}
}

func (c ListCursor[T]) Get() T {
	return c.n.value
}

func (c ListCursor[T]) Set(v T) {
	c.n.value = v
}
