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

// Package seq models mutable sequences as half-open ranges of cursors.
//
// A cursor identifies one slot of a sequence. It never owns the element in
// the slot: reading and writing go through Get and Set, and stepping returns
// a new cursor, leaving the receiver untouched. Algorithms take a pair of
// cursors [begin, end) and only need bidirectional stepping; sequences that
// can also jump by an offset implement RandomAccess and algorithms may use it.
//
// Two sequences are provided: plain slices (random access) and List, a
// generic doubly linked list (bidirectional only).
package seq

// Cursor is a position in a sequence holding elements of type T.
//
// C is the concrete cursor type itself, so that stepping stays statically
// typed and does not allocate:
//
//	func Walk[T any, C seq.Cursor[T, C]](begin, end C) {
//	    for c := begin; !c.Equal(end); c = c.Next() {
//	        _ = c.Get()
//	    }
//	}
//
// Stepping before the first slot or past the end cursor is undefined.
type Cursor[T any, C any] interface {
	// Equal reports whether both cursors identify the same slot.
	Equal(other C) bool

	// Next returns the cursor of the following slot.
	Next() C

	// Prev returns the cursor of the preceding slot. Prev of an end cursor
	// is the last slot of the sequence.
	Prev() C

	// Get returns the element stored in the slot.
	Get() T

	// Set replaces the element stored in the slot.
	Set(v T)
}

// RandomAccess is implemented by cursors that can jump by an offset in
// constant time.
type RandomAccess[C any] interface {
	// Advance returns the cursor n slots after the receiver (n may be negative).
	Advance(n int) C

	// Distance returns the number of Next steps from the receiver to other.
	Distance(other C) int
}

// Traversal describes how a cursor type can move through its sequence.
type Traversal int

const (
	// TraversalBidirectional cursors step one slot at a time in either direction.
	TraversalBidirectional Traversal = iota

	// TraversalRandomAccess cursors additionally jump by offsets in constant time.
	TraversalRandomAccess
)

// String returns a human-readable name for the traversal level.
func (t Traversal) String() string {
	switch t {
	case TraversalBidirectional:
		return "bidirectional"
	case TraversalRandomAccess:
		return "random-access"
	default:
		return "unknown"
	}
}

// TraversalOf returns the traversal level supported by the cursor type of c.
func TraversalOf[C any](c C) Traversal {
	if _, ok := any(c).(RandomAccess[C]); ok {
		return TraversalRandomAccess
	}
	return TraversalBidirectional
}

// Len returns the number of slots in [begin, end).
func Len[T any, C Cursor[T, C]](begin, end C) int {
	if ra, ok := any(begin).(RandomAccess[C]); ok {
		return ra.Distance(end)
	}
	n := 0
	for c := begin; !c.Equal(end); c = c.Next() {
		n++
	}
	return n
}

// Values copies the elements of [begin, end) into a new slice.
func Values[T any, C Cursor[T, C]](begin, end C) []T {
	out := make([]T, 0, Len[T](begin, end))
	for c := begin; !c.Equal(end); c = c.Next() {
		out = append(out, c.Get())
	}
	return out
}
