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

package trees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bstTestCase struct {
	Name           string
	KeysToInsert   []int
	KeysToDelete   []int
	ExpectedOrder  []int
	ExpectedHeight int
}

func TestBSTOperations(t *testing.T) {
	testCases := []bstTestCase{
		{
			Name:           "Balanced Insertion Order",
			KeysToInsert:   []int{5, 3, 8, 1, 4, 7, 9},
			ExpectedOrder:  []int{1, 3, 4, 5, 7, 8, 9},
			ExpectedHeight: 3,
		},
		{
			Name:           "Ascending Input Degenerates To A Chain",
			KeysToInsert:   []int{1, 2, 3, 4, 5, 6, 7},
			ExpectedOrder:  []int{1, 2, 3, 4, 5, 6, 7},
			ExpectedHeight: 7,
		},
		{
			Name:           "Descending Input Degenerates To A Chain",
			KeysToInsert:   []int{5, 4, 3, 2, 1},
			ExpectedOrder:  []int{1, 2, 3, 4, 5},
			ExpectedHeight: 5,
		},
		{
			Name:           "Delete Leaf",
			KeysToInsert:   []int{5, 3, 8},
			KeysToDelete:   []int{3},
			ExpectedOrder:  []int{5, 8},
			ExpectedHeight: 2,
		},
		{
			Name:           "Delete Node With One Child",
			KeysToInsert:   []int{5, 3, 8, 7},
			KeysToDelete:   []int{8},
			ExpectedOrder:  []int{3, 5, 7},
			ExpectedHeight: 2,
		},
		{
			Name:           "Delete Root With Two Children",
			KeysToInsert:   []int{5, 3, 8, 1, 4, 7, 9},
			KeysToDelete:   []int{5},
			ExpectedOrder:  []int{1, 3, 4, 7, 8, 9},
			ExpectedHeight: 3,
		},
		{
			Name:           "Delete Absent Key Is A No-Op",
			KeysToInsert:   []int{5, 3, 8},
			KeysToDelete:   []int{42},
			ExpectedOrder:  []int{3, 5, 8},
			ExpectedHeight: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := NewBST()
			m := &Metrics{}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key, m)
			}
			for _, key := range tc.KeysToDelete {
				tree.Delete(key, m)
			}
			assert.Equal(t, tc.ExpectedOrder, tree.Keys())
			assert.Equal(t, tc.ExpectedHeight, tree.Height())
			assert.NoError(t, tree.CheckBST())
		})
	}
}

func TestBSTDeleteTwoChildrenPromotesSuccessor(t *testing.T) {
	tree := NewBST()
	m := &Metrics{}
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(key, m)
	}

	tree.Delete(5, m)

	// The in-order successor of 5 is 7; its key must now sit at the root
	// and its old slot must be gone.
	require.NotNil(t, tree.Root)
	assert.Equal(t, 7, tree.Root.Key)
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, tree.Keys())
}

func TestBSTDuplicateInsertIsIgnored(t *testing.T) {
	tree := NewBST()
	m := &Metrics{}
	for _, key := range []int{5, 3, 8} {
		tree.Insert(key, m)
	}

	before := tree.Keys()
	tree.Insert(3, m)

	assert.Equal(t, before, tree.Keys())
	assert.Equal(t, 3, tree.Count())
}

func TestBSTRoundTrip(t *testing.T) {
	tree := NewBST()
	m := &Metrics{}

	tree.Insert(42, m)
	assert.NotNil(t, tree.Search(42, m))

	tree.Delete(42, m)
	assert.Nil(t, tree.Search(42, m))
}

func TestBSTSearchComparisonsMatchDepth(t *testing.T) {
	tree := NewBST()
	m := &Metrics{}
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(key, m)
	}

	// A node at depth d costs exactly d+1 comparisons to find.
	testCases := []struct {
		Key   int
		Depth int
	}{
		{Key: 5, Depth: 0},
		{Key: 3, Depth: 1},
		{Key: 8, Depth: 1},
		{Key: 1, Depth: 2},
		{Key: 9, Depth: 2},
	}

	for _, tc := range testCases {
		sm := &Metrics{}
		node := tree.Search(tc.Key, sm)
		require.NotNil(t, node)
		assert.Equal(t, int64(tc.Depth+1), sm.Comparisons, "key %d", tc.Key)
	}

	// An absent key costs the full path to the empty slot.
	sm := &Metrics{}
	assert.Nil(t, tree.Search(6, sm))
	assert.Equal(t, int64(3), sm.Comparisons)
}

func TestBSTInsertComparisonAccumulation(t *testing.T) {
	tree := NewBST()
	m := &Metrics{}

	// Ascending inserts into a chain: the i-th insert visits i nodes.
	for _, key := range []int{1, 2, 3, 4} {
		tree.Insert(key, m)
	}
	assert.Equal(t, int64(0+1+2+3), m.Comparisons)

	// The engine never resets the accumulator across calls.
	tree.Insert(5, m)
	assert.Equal(t, int64(0+1+2+3+4), m.Comparisons)
}
