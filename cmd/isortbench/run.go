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
	"io"
	"math/rand"
	"runtime"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/ajroetker/go-isort/seq"
	"github.com/ajroetker/go-isort/seq/contrib/algo"
	isort "github.com/ajroetker/go-isort/seq/contrib/sort"
)

// container copies an input into a sequence, sorts it with the given
// variant and reports the elapsed wall-clock time of the sort alone.
type container struct {
	name      string
	traversal seq.Traversal
	sort      func(v isort.Variant, input []int) (time.Duration, []int)
}

func (c container) String() string { return c.name }

var allContainers = []container{
	{"slice", seq.TraversalOf(seq.SliceBegin([]int(nil))), sortSlice},
	{"list", seq.TraversalOf(seq.NewList[int]().Begin()), sortList},
}

func sortSlice(v isort.Variant, input []int) (time.Duration, []int) {
	data := slices.Clone(input)
	start := time.Now()
	isort.Slice(data, v)
	return time.Since(start), data
}

func sortList(v isort.Variant, input []int) (time.Duration, []int) {
	l := seq.NewList(input...)
	start := time.Now()
	isort.List(l, v)
	return time.Since(start), l.Values()
}

// result is one timed run.
type result struct {
	container container
	variant   isort.Variant
	shape     shape
	size      int
	elapsed   time.Duration
	ok        bool
}

// verify reports whether output is input sorted ascending.
func verify(input, output []int) bool {
	if !algo.IsSorted[int](seq.SliceBegin(output), seq.SliceEnd(output), isort.Less[int]) {
		return false
	}
	want := slices.Clone(input)
	slices.Sort(want)
	return algo.Equal[int](seq.SliceBegin(output), seq.SliceEnd(output), want)
}

func run(w io.Writer, cfg *config) error {
	fmt.Fprintf(w, "%s %s/%s cpu: %s\n\n", runtime.Version(), runtime.GOOS, runtime.GOARCH, strings.Join(cpuFeatures(), " "))

	rng := rand.New(rand.NewSource(cfg.seed))
	var results []result
	for _, sh := range cfg.shapes {
		input := sh.generate(cfg.size, rng)
		for _, c := range cfg.containers {
			for _, v := range cfg.variants {
				elapsed, output := c.sort(v, input)
				results = append(results, result{
					container: c,
					variant:   v,
					shape:     sh,
					size:      len(input),
					elapsed:   elapsed,
					ok:        !cfg.verify || verify(input, output),
				})
			}
		}
	}

	if err := printResults(w, results, cfg.verify); err != nil {
		return err
	}

	bad := 0
	for _, r := range results {
		if !r.ok {
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d runs produced unsorted output", bad, len(results))
	}
	return nil
}

func printResults(w io.Writer, results []result, verified bool) error {
	okColor := color.New(color.FgGreen).SprintFunc()
	failColor := color.New(color.FgRed, color.Bold).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONTAINER\tTRAVERSAL\tVARIANT\tSHAPE\tN\tELAPSED\tCHECK")
	for _, r := range results {
		check := "-"
		switch {
		case !verified:
		case r.ok:
			check = okColor("ok")
		default:
			check = failColor("FAIL")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.container, r.container.traversal, r.variant, r.shape,
			humanize.Comma(int64(r.size)), r.elapsed.Round(time.Microsecond), check)
	}
	return tw.Flush()
}
