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

// RandomGenerator draws keys uniformly from [0, RandomMax). Duplicates
// are possible and expected; the engines ignore them on insert.
type RandomGenerator struct {
	rng *rand.Rand
}

func NewRandomGenerator(rng *rand.Rand) *RandomGenerator {
	return &RandomGenerator{rng: rng}
}

func (g *RandomGenerator) Name() string {
	return "random"
}

func (g *RandomGenerator) Label() string {
	return "RANDOM"
}

func (g *RandomGenerator) Generate(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = g.rng.Intn(RandomMax)
	}
	return arr
}
