// Copyright 2025 Quercus Lab
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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Treebench %s**

Compare a plain binary search tree against a height-balanced AVL tree over
the same inputs, and see why insertion order makes or breaks the former.

Built with Go %s

# 1. What it measures
* Final tree height after building each tree from the same dataset
* Key comparisons during insertion and during a single search probe
* Rotations performed by the AVL engine
* Wall-clock insertion time for both engines

# 2. Dataset arrangements
* random — uniform draws from [0, 10000)
* sorted — 1..n ascending (the BST worst case)
* reverse — n..1 descending
* nearly-sorted — ascending with a fraction of random pair swaps
* shuffled — a random permutation of 1..n (distinct keys; opt in with --modes)

# 3. Commands
* treebench run — run the full suite and print comparison reports
* treebench chart — bar charts of heights and comparisons per arrangement
* treebench browse — interactive result browser with copy-to-clipboard
* treebench settings — show (and create) ~/.treebench.yaml

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed
* Pin experiment.seed in the config for reproducible datasets

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
