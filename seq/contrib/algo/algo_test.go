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

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-isort/seq"
)

func TestUpperBound(t *testing.T) {
	tests := []struct {
		name   string
		data   []int
		value  int
		expect int
	}{
		{"empty", []int{}, 1, 0},
		{"before_all", []int{2, 4, 6}, 1, 0},
		{"after_all", []int{2, 4, 6}, 7, 3},
		{"middle", []int{2, 4, 6}, 5, 2},
		{"after_equal", []int{1, 3, 3, 3, 5}, 3, 4},
		{"all_equal", []int{42, 42, 42}, 42, 3},
		{"single_less", []int{9}, 1, 0},
		{"single_equal", []int{9}, 9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Random access: binary search.
			got := UpperBound[int](seq.SliceBegin(tt.data), seq.SliceEnd(tt.data), tt.value, cmp.Less[int])
			require.Equal(t, tt.expect, got.Index(), "slice")

			// Bidirectional: linear scan.
			l := seq.NewList(tt.data...)
			p := UpperBound[int](l.Begin(), l.End(), tt.value, cmp.Less[int])
			require.Equal(t, tt.expect, seq.Len[int](l.Begin(), p), "list")
		})
	}
}

func TestUpperBoundStableForKeys(t *testing.T) {
	type pair struct{ key, id int }
	byKey := func(a, b pair) bool { return a.key < b.key }

	data := []pair{{1, 0}, {2, 1}, {2, 2}, {3, 3}}
	p := UpperBound[pair](seq.SliceBegin(data), seq.SliceEnd(data), pair{2, 9}, byKey)
	require.Equal(t, 3, p.Index())
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name   string
		data   []int
		middle int
		expect []int
		ret    int
	}{
		{"empty_left", []int{1, 2, 3}, 0, []int{1, 2, 3}, 3},
		{"empty_right", []int{1, 2, 3}, 3, []int{1, 2, 3}, 0},
		{"one_to_front", []int{1, 2, 3, 4}, 3, []int{4, 1, 2, 3}, 1},
		{"one_to_back", []int{1, 2, 3, 4}, 1, []int{2, 3, 4, 1}, 3},
		{"halves", []int{1, 2, 3, 4, 5, 6}, 3, []int{4, 5, 6, 1, 2, 3}, 3},
		{"uneven", []int{1, 2, 3, 4, 5, 6, 7}, 2, []int{3, 4, 5, 6, 7, 1, 2}, 5},
		{"uneven_right", []int{1, 2, 3, 4, 5, 6, 7}, 5, []int{6, 7, 1, 2, 3, 4, 5}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := append([]int(nil), tt.data...)
			ret := Rotate[int](seq.SliceBegin(s), seq.SliceAt(s, tt.middle), seq.SliceEnd(s))
			require.Equal(t, tt.expect, s, "slice")
			require.Equal(t, tt.ret, ret.Index(), "slice return")

			l := seq.NewList(tt.data...)
			middle := l.Begin()
			for i := 0; i < tt.middle; i++ {
				middle = middle.Next()
			}
			lret := Rotate[int](l.Begin(), middle, l.End())
			require.Equal(t, tt.expect, l.Values(), "list")
			require.Equal(t, tt.ret, seq.Len[int](l.Begin(), lret), "list return")
		})
	}
}

func TestRotateSubrange(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5}
	Rotate[int](seq.SliceAt(s, 1), seq.SliceAt(s, 4), seq.SliceAt(s, 5))
	require.Equal(t, []int{0, 4, 1, 2, 3, 5}, s)
}

func TestIterSwap(t *testing.T) {
	l := seq.NewList("a", "b")
	IterSwap[string](l.Begin(), l.Begin().Next())
	require.Equal(t, []string{"b", "a"}, l.Values())
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name   string
		data   []int
		until  int
		sorted bool
	}{
		{"empty", []int{}, 0, true},
		{"single", []int{1}, 1, true},
		{"ascending", []int{1, 2, 2, 3}, 4, true},
		{"descending", []int{3, 2, 1}, 1, false},
		{"late_break", []int{1, 2, 3, 0}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			begin, end := seq.SliceBegin(tt.data), seq.SliceEnd(tt.data)
			require.Equal(t, tt.sorted, IsSorted[int](begin, end, cmp.Less[int]))
			require.Equal(t, tt.until, IsSortedUntil[int](begin, end, cmp.Less[int]).Index())

			l := seq.NewList(tt.data...)
			require.Equal(t, tt.sorted, IsSorted[int](l.Begin(), l.End(), cmp.Less[int]))
		})
	}
}

func TestEqual(t *testing.T) {
	l := seq.NewList(1, 2, 3)
	require.True(t, Equal[int](l.Begin(), l.End(), []int{1, 2, 3}))
	require.False(t, Equal[int](l.Begin(), l.End(), []int{1, 2}))
	require.False(t, Equal[int](l.Begin(), l.End(), []int{1, 2, 3, 4}))
	require.False(t, Equal[int](l.Begin(), l.End(), []int{1, 5, 3}))
	require.True(t, Equal[int](l.End(), l.End(), nil))
}

func TestUpperBoundRandom(t *testing.T) {
	data := []int{1, 3, 3, 5, 7, 9}
	ra := seq.RandomAccess[seq.SliceCursor[int]](seq.SliceBegin(data))

	require.Equal(t, 3, UpperBoundRandom[int](ra, 4, 3, cmp.Less[int]).Index())
	require.Equal(t, 4, UpperBoundRandom[int](ra, 4, 6, cmp.Less[int]).Index())
	require.Equal(t, 0, UpperBoundRandom[int](ra, 0, 6, cmp.Less[int]).Index())
	require.Equal(t, 0, UpperBoundRandom[int](ra, 6, 0, cmp.Less[int]).Index())

	allocs := testing.AllocsPerRun(20, func() {
		UpperBoundRandom[int](ra, len(data), 4, cmp.Less[int])
	})
	require.Zero(t, allocs)
}
