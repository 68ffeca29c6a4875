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
package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/samber/lo"
)

// shape builds an input of n integers.
type shape struct {
	name     string
	generate func(n int, rng *rand.Rand) []int
}

func (s shape) String() string { return s.name }

var allShapes = []shape{
	{"sorted", func(n int, _ *rand.Rand) []int {
		return lo.Range(n)
	}},
	{"reversed", func(n int, _ *rand.Rand) []int {
		return lo.Times(n, func(i int) int { return n - 1 - i })
	}},
	{"random", func(n int, rng *rand.Rand) []int {
		return lo.Times(n, func(int) int { return rng.Intn(max(n, 1)) })
	}},
	{"identical", func(n int, _ *rand.Rand) []int {
		return lo.Times(n, func(int) int { return 42 })
	}},
}

// pick resolves names against all, keeping the order of names and dropping
// repeats.
func pick[T any](kind string, requested []string, all []T, name func(T) string) ([]T, error) {
	var out []T
	for _, n := range lo.Uniq(lo.Map(requested, func(s string, _ int) string { return strings.TrimSpace(s) })) {
		v, ok := lo.Find(all, func(item T) bool { return name(item) == n })
		if !ok {
			return nil, fmt.Errorf("unknown %s %q (want one of %s)", kind, n, strings.Join(names(all, name), ", "))
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no %s selected", kind)
	}
	return out, nil
}

func names[T any](all []T, name func(T) string) []string {
	return lo.Map(all, func(item T, _ int) string { return name(item) })
}
