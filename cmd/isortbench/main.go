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
// Command isortbench times the insertion sort variants on integer inputs.
//
// Usage:
//
//	isortbench                                   # 10,000 ints, every shape, variant and container
//	isortbench -n 2000 --shapes random,reversed  # smaller inputs, two shapes
//	isortbench --containers list --variants binary
//
// Each input is built in one of four shapes (sorted, reversed, random,
// identical), copied into a slice or a linked list, sorted, and timed with
// the wall clock. Every result is checked to be a sorted permutation of its
// input; the command fails if any run is wrong.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
