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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSampleAVL inserts a perfectly balanced 7-key tree:
//
//	        4
//	      /   \
//	     2     6
//	    / \   / \
//	   1   3 5   7
func buildSampleAVL(t *testing.T) *AVL {
	t.Helper()
	tree := NewAVL()
	m := &Metrics{}
	for _, key := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(key, m)
	}
	require.Equal(t, int64(0), m.Rotations)
	return tree
}

func TestTraversalOrders(t *testing.T) {
	tree := buildSampleAVL(t)

	collect := func(seq func(func(int) bool)) []int {
		var keys []int
		for k := range seq {
			keys = append(keys, k)
		}
		return keys
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(tree.InOrder()))
	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, collect(tree.PreOrder()))
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, collect(tree.PostOrder()))
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, collect(tree.LevelOrder()))
}

func TestTraversalIsLazyAndRestartable(t *testing.T) {
	tree := buildSampleAVL(t)

	// Breaking out stops the walk early.
	var partial []int
	for k := range tree.InOrder() {
		partial = append(partial, k)
		if len(partial) == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, partial)

	// Ranging again restarts from the root.
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.Keys())
}

func TestEmptyTreeTraversal(t *testing.T) {
	bst := NewBST()
	avl := NewAVL()

	assert.Empty(t, bst.Keys())
	assert.Empty(t, avl.Keys())

	for range avl.LevelOrder() {
		t.Fatal("level order on an empty tree yielded a key")
	}
}

func TestSprint(t *testing.T) {
	tree := NewAVL()
	m := &Metrics{}
	for _, key := range []int{2, 1, 3} {
		tree.Insert(key, m)
	}

	out := tree.Sprint()
	assert.Equal(t, 3, strings.Count(out, "\n"))
	assert.Contains(t, out, "2 (h=2)")
	assert.Contains(t, out, "    3 (h=1)")

	bst := NewBST()
	bst.Insert(1, m)
	assert.Equal(t, "1\n", bst.Sprint())
}
