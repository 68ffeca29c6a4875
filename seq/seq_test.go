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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceCursor(t *testing.T) {
	s := []int{10, 20, 30}
	begin, end := SliceBegin(s), SliceEnd(s)

	require.Equal(t, 3, begin.Distance(end))
	require.Equal(t, 10, begin.Get())
	require.Equal(t, 30, end.Prev().Get())
	require.True(t, begin.Advance(3).Equal(end))
	require.True(t, end.Advance(-3).Equal(begin))
	require.Equal(t, 1, SliceAt(s, 1).Index())

	SliceAt(s, 1).Set(25)
	require.Equal(t, []int{10, 25, 30}, s)

	require.Panics(t, func() { SliceAt(s, 4) })
	require.Panics(t, func() { SliceAt(s, -1) })
}

func TestListCursor(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var l List[int]
		require.True(t, l.Begin().Equal(l.End()))
		require.Equal(t, 0, l.Len())
		require.Empty(t, l.Values())
		require.Equal(t, "[]", l.String())

		_, ok := l.Front()
		require.False(t, ok)
		_, ok = l.Back()
		require.False(t, ok)
	})

	t.Run("Walk", func(t *testing.T) {
		l := NewList(1, 2, 3)
		var got []int
		for c := l.Begin(); !c.Equal(l.End()); c = c.Next() {
			got = append(got, c.Get())
		}
		require.Equal(t, []int{1, 2, 3}, got)

		got = got[:0]
		for c := l.End(); !c.Equal(l.Begin()); {
			c = c.Prev()
			got = append(got, c.Get())
		}
		require.Equal(t, []int{3, 2, 1}, got)
	})

	t.Run("Set", func(t *testing.T) {
		l := NewList("a", "b", "c")
		l.Begin().Next().Set("x")
		require.Equal(t, []string{"a", "x", "c"}, l.Values())
		require.Equal(t, "[a x c]", l.String())
	})

	t.Run("PushFrontAndBack", func(t *testing.T) {
		l := &List[int]{}
		l.PushBack(2)
		l.PushFront(1)
		l.PushBack(3)

		require.Equal(t, 3, l.Len())
		front, ok := l.Front()
		require.True(t, ok)
		require.Equal(t, 1, front)
		back, ok := l.Back()
		require.True(t, ok)
		require.Equal(t, 3, back)
		require.Equal(t, []int{1, 2, 3}, l.Values())
	})
}

func TestTraversalOf(t *testing.T) {
	require.Equal(t, TraversalRandomAccess, TraversalOf(SliceBegin([]int{1})))
	require.Equal(t, TraversalBidirectional, TraversalOf(NewList(1).Begin()))

	require.Equal(t, "random-access", TraversalRandomAccess.String())
	require.Equal(t, "bidirectional", TraversalBidirectional.String())
	require.Equal(t, "unknown", Traversal(42).String())
}

func TestLenAndValues(t *testing.T) {
	s := []int{4, 5, 6, 7}
	require.Equal(t, 4, Len[int](SliceBegin(s), SliceEnd(s)))
	require.Equal(t, 2, Len[int](SliceAt(s, 1), SliceAt(s, 3)))
	require.Equal(t, []int{5, 6}, Values[int](SliceAt(s, 1), SliceAt(s, 3)))

	l := NewList(4, 5, 6, 7)
	require.Equal(t, 4, Len[int](l.Begin(), l.End()))
	require.Equal(t, 0, Len[int](l.End(), l.End()))
	require.Equal(t, s, Values[int](l.Begin(), l.End()))
}
