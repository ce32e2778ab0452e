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

package datasets

import "math/rand"

// ShuffledGenerator deals the keys 1..n in a Fisher-Yates permutation.
// Unlike the random arrangement the keys are distinct, so both trees
// always end up holding exactly n nodes.
type ShuffledGenerator struct {
	rng *rand.Rand
}

func NewShuffledGenerator(rng *rand.Rand) *ShuffledGenerator {
	return &ShuffledGenerator{rng: rng}
}

func (g *ShuffledGenerator) Name() string {
	return "shuffled"
}

func (g *ShuffledGenerator) Label() string {
	return "SHUFFLED (1..n)"
}

func (g *ShuffledGenerator) Generate(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = i + 1
	}
	Shuffle(g.rng, arr)
	return arr
}
