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
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryModes(t *testing.T) {
	r := NewRegistry(1, DefaultSortedness)
	assert.Equal(t, []string{"random", "sorted", "reverse", "nearly-sorted", "shuffled"}, r.Modes())
}

func TestRegistryUnknownMode(t *testing.T) {
	r := NewRegistry(1, DefaultSortedness)
	_, err := r.Generate("splay", 10)
	assert.Error(t, err)
}

func TestSortedAndReversedArrangements(t *testing.T) {
	r := NewRegistry(1, DefaultSortedness)

	asc, err := r.Generate("sorted", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, asc)

	desc, err := r.Generate("reverse", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, desc)
}

func TestRandomArrangementBoundsAndDeterminism(t *testing.T) {
	a, err := NewRegistry(42, DefaultSortedness).Generate("random", 1000)
	require.NoError(t, err)
	b, err := NewRegistry(42, DefaultSortedness).Generate("random", 1000)
	require.NoError(t, err)

	// Same seed, same dataset.
	assert.Equal(t, a, b)

	for _, k := range a {
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, RandomMax)
	}
}

func TestNearlySortedArrangement(t *testing.T) {
	const n = 1000
	arr, err := NewRegistry(42, 0.9).Generate("nearly-sorted", n)
	require.NoError(t, err)
	require.Len(t, arr, n)

	// Swapping never loses elements: the sorted content is still 1..n.
	sorted := append([]int(nil), arr...)
	sort.Ints(sorted)
	for i, k := range sorted {
		require.Equal(t, i+1, k)
	}

	// Mostly ordered, but not fully: at most 2 displaced elements per
	// swap, and at least one swap lands with overwhelming probability.
	displaced := 0
	for i, k := range arr {
		if k != i+1 {
			displaced++
		}
	}
	assert.LessOrEqual(t, displaced, 2*int(float64(n)*0.1))
	assert.Greater(t, displaced, 0)
}

func TestNearlySortedFullSortednessIsIdentity(t *testing.T) {
	g := NewNearlySortedGenerator(rand.New(rand.NewSource(1)), 1.0)
	assert.Equal(t, []int{1, 2, 3, 4}, g.Generate(4))
}

func TestShuffledArrangement(t *testing.T) {
	const n = 200
	a, err := NewRegistry(42, DefaultSortedness).Generate("shuffled", n)
	require.NoError(t, err)
	b, err := NewRegistry(42, DefaultSortedness).Generate("shuffled", n)
	require.NoError(t, err)

	// Same seed, same permutation.
	assert.Equal(t, a, b)

	// Distinct keys: sorting recovers exactly 1..n.
	sorted := append([]int(nil), a...)
	sort.Ints(sorted)
	for i, k := range sorted {
		require.Equal(t, i+1, k)
	}
	assert.NotEqual(t, sorted, a)
}

func TestShuffleIsAPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	arr := (&SortedGenerator{}).Generate(100)
	Shuffle(rng, arr)

	sorted := append([]int(nil), arr...)
	sort.Ints(sorted)
	for i, k := range sorted {
		require.Equal(t, i+1, k)
	}
	assert.NotEqual(t, (&SortedGenerator{}).Generate(100), arr)
}

func TestLabels(t *testing.T) {
	r := NewRegistry(1, 0.9)

	g, err := r.Lookup("nearly-sorted")
	require.NoError(t, err)
	assert.Equal(t, "NEARLY SORTED (90%)", g.Label())

	g, err = r.Lookup("random")
	require.NoError(t, err)
	assert.Equal(t, "RANDOM", g.Label())

	g, err = r.Lookup("shuffled")
	require.NoError(t, err)
	assert.Equal(t, "SHUFFLED (1..n)", g.Label())
}
