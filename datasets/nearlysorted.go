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

import (
	"fmt"
	"math/rand"
)

// DefaultSortedness is the fraction of a nearly-sorted dataset left
// undisturbed.
const DefaultSortedness = 0.9

// NearlySortedGenerator starts from 1..n ascending and swaps
// n*(1-sortedness) randomly chosen index pairs, leaving the array mostly
// but not fully ordered.
type NearlySortedGenerator struct {
	rng        *rand.Rand
	sortedness float64
}

func NewNearlySortedGenerator(rng *rand.Rand, sortedness float64) *NearlySortedGenerator {
	return &NearlySortedGenerator{rng: rng, sortedness: sortedness}
}

func (g *NearlySortedGenerator) Name() string {
	return "nearly-sorted"
}

func (g *NearlySortedGenerator) Label() string {
	return fmt.Sprintf("NEARLY SORTED (%d%%)", int(g.sortedness*100))
}

func (g *NearlySortedGenerator) Generate(n int) []int {
	arr := (&SortedGenerator{}).Generate(n)

	swaps := int(float64(n) * (1.0 - g.sortedness))
	for i := 0; i < swaps; i++ {
		a := g.rng.Intn(n)
		b := g.rng.Intn(n)
		arr[a], arr[b] = arr[b], arr[a]
	}
	return arr
}
