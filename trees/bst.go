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

// BST is an unbalanced binary search tree over integer keys. It is the
// degenerate-prone half of the comparison: insertion order dictates the
// shape, and sorted input produces a chain of height n.
type BST struct {
	Root *BSTNode
}

func NewBST() *BST {
	return &BST{Root: nil}
}

// Insert adds key to the tree. Duplicate keys are silently ignored.
func (t *BST) Insert(key int, m *Metrics) {
	t.Root = bstInsert(t.Root, key, m)
}

func bstInsert(node *BSTNode, key int, m *Metrics) *BSTNode {
	if node == nil {
		return &BSTNode{Key: key}
	}

	m.Comparisons++

	if key < node.Key {
		node.Left = bstInsert(node.Left, key, m)
	} else if key > node.Key {
		node.Right = bstInsert(node.Right, key, m)
	}
	// key == node.Key: duplicate, leave the tree as is

	return node
}

// Search walks down from the root and returns the matching node, or nil
// when the key is absent. Every node visited costs one comparison.
func (t *BST) Search(key int, m *Metrics) *BSTNode {
	return bstSearch(t.Root, key, m)
}

func bstSearch(node *BSTNode, key int, m *Metrics) *BSTNode {
	if node == nil {
		return nil
	}

	m.Comparisons++

	if key == node.Key {
		return node
	} else if key < node.Key {
		return bstSearch(node.Left, key, m)
	}
	return bstSearch(node.Right, key, m)
}

// Delete removes key from the tree. Deleting an absent key is a no-op.
func (t *BST) Delete(key int, m *Metrics) {
	t.Root = bstDelete(t.Root, key, m)
}

func bstDelete(node *BSTNode, key int, m *Metrics) *BSTNode {
	if node == nil {
		return nil // key not found
	}

	m.Comparisons++

	if key < node.Key {
		node.Left = bstDelete(node.Left, key, m)
	} else if key > node.Key {
		node.Right = bstDelete(node.Right, key, m)
	} else {
		// Case 1: at most one child, splice it in
		if node.Left == nil {
			return node.Right
		}
		if node.Right == nil {
			return node.Left
		}
		// Case 2: two children. Promote the in-order successor's key,
		// then delete the successor from its original slot.
		succ := bstMin(node.Right)
		node.Key = succ.Key
		node.Right = bstDelete(node.Right, succ.Key, m)
	}

	return node
}

func bstMin(node *BSTNode) *BSTNode {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

// Height computes the tree height by full recursive descent. This is
// intentionally O(n) per call: the BST stores no height field, which is
// exactly the contrast the experiment measures against the AVL engine.
func (t *BST) Height() int {
	return bstHeight(t.Root)
}

func bstHeight(node *BSTNode) int {
	if node == nil {
		return 0
	}
	return 1 + max(bstHeight(node.Left), bstHeight(node.Right))
}

// Count returns the number of nodes in the tree.
func (t *BST) Count() int {
	return bstCount(t.Root)
}

func bstCount(node *BSTNode) int {
	if node == nil {
		return 0
	}
	return 1 + bstCount(node.Left) + bstCount(node.Right)
}
