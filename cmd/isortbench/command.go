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

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	isort "github.com/ajroetker/go-isort/seq/contrib/sort"
)

// options holds the raw flag values.
type options struct {
	size       int
	shapes     []string
	variants   []string
	containers []string
	seed       int64
	verify     bool
	noColor    bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "isortbench",
		Short:        "Time shift-based and library-composed insertion sort",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if opts.noColor {
				color.NoColor = true
			}
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.size, "size", "n", 10000, "number of integers per input")
	f.StringSliceVar(&opts.shapes, "shapes", names(allShapes, shape.String), "input shapes to run")
	f.StringSliceVar(&opts.variants, "variants", names(isort.Variants(), isort.Variant.String), "sort variants to run")
	f.StringSliceVar(&opts.containers, "containers", names(allContainers, container.String), "containers to sort")
	f.Int64Var(&opts.seed, "seed", 1, "seed for the random shape")
	f.BoolVar(&opts.verify, "verify", true, "check every result is a sorted permutation of its input")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

// config is the validated form of options.
type config struct {
	size       int
	shapes     []shape
	variants   []isort.Variant
	containers []container
	seed       int64
	verify     bool
}

func (o *options) config() (*config, error) {
	if o.size < 0 {
		return nil, fmt.Errorf("size must be >= 0, got %d", o.size)
	}
	shapes, err := pick("shape", o.shapes, allShapes, shape.String)
	if err != nil {
		return nil, err
	}
	variants, err := pick("variant", o.variants, isort.Variants(), isort.Variant.String)
	if err != nil {
		return nil, err
	}
	containers, err := pick("container", o.containers, allContainers, container.String)
	if err != nil {
		return nil, err
	}
	return &config{
		size:       o.size,
		shapes:     shapes,
		variants:   variants,
		containers: containers,
		seed:       o.seed,
		verify:     o.verify,
	}, nil
}
