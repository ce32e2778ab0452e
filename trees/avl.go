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

// AVL is a height-balanced binary search tree over integer keys. Every
// structural change keeps cached heights exact and the balance factor of
// every node within [-1, 1], restoring it with rotations on the unwind
// path of the recursion.
type AVL struct {
	Root *AVLNode
}

func NewAVL() *AVL {
	return &AVL{Root: nil}
}

func avlHeight(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return node.Height
}

func avlUpdateHeight(node *AVLNode) {
	node.Height = max(avlHeight(node.Left), avlHeight(node.Right)) + 1
}

func avlBalance(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return avlHeight(node.Left) - avlHeight(node.Right)
}

// avlRotateLeft rotates the subtree rooted at node to the left and
// returns the new subtree root. Heights are recomputed for the two nodes
// touched, child first. Each call counts as one rotation.
func avlRotateLeft(node *AVLNode, m *Metrics) *AVLNode {
	pivot := node.Right

	node.Right = pivot.Left
	pivot.Left = node

	avlUpdateHeight(node)
	avlUpdateHeight(pivot)

	m.Rotations++

	return pivot
}

func avlRotateRight(node *AVLNode, m *Metrics) *AVLNode {
	pivot := node.Left

	node.Left = pivot.Right
	pivot.Right = node

	avlUpdateHeight(node)
	avlUpdateHeight(pivot)

	m.Rotations++

	return pivot
}

// Insert adds key to the tree, rebalancing on the way back up.
// Duplicate keys are silently ignored and trigger no rotation.
func (t *AVL) Insert(key int, m *Metrics) {
	t.Root = avlInsert(t.Root, key, m)
}

func avlInsert(node *AVLNode, key int, m *Metrics) *AVLNode {
	if node == nil {
		return &AVLNode{Key: key, Height: 1}
	}

	m.Comparisons++

	if key < node.Key {
		node.Left = avlInsert(node.Left, key, m)
	} else if key > node.Key {
		node.Right = avlInsert(node.Right, key, m)
	} else {
		return node // duplicate
	}

	avlUpdateHeight(node)

	// On insert the offending side is identified by where the new key
	// went relative to the taller child.
	balance := avlBalance(node)
	if balance > 1 {
		if key < node.Left.Key {
			return avlRotateRight(node, m) // left-left
		}
		node.Left = avlRotateLeft(node.Left, m) // left-right
		return avlRotateRight(node, m)
	}
	if balance < -1 {
		if key > node.Right.Key {
			return avlRotateLeft(node, m) // right-right
		}
		node.Right = avlRotateRight(node.Right, m) // right-left
		return avlRotateLeft(node, m)
	}

	return node
}

// Search walks down from the root and returns the matching node, or nil
// when the key is absent. Comparison counting mirrors the BST engine;
// only the path length differs.
func (t *AVL) Search(key int, m *Metrics) *AVLNode {
	return avlSearch(t.Root, key, m)
}

func avlSearch(node *AVLNode, key int, m *Metrics) *AVLNode {
	if node == nil {
		return nil
	}

	m.Comparisons++

	if key == node.Key {
		return node
	} else if key < node.Key {
		return avlSearch(node.Left, key, m)
	}
	return avlSearch(node.Right, key, m)
}

// Delete removes key from the tree, rebalancing every ancestor on the
// unwind path. Deleting an absent key is a no-op.
func (t *AVL) Delete(key int, m *Metrics) {
	t.Root = avlDelete(t.Root, key, m)
}

func avlDelete(node *AVLNode, key int, m *Metrics) *AVLNode {
	if node == nil {
		return nil // key not found
	}

	m.Comparisons++

	if key < node.Key {
		node.Left = avlDelete(node.Left, key, m)
	} else if key > node.Key {
		node.Right = avlDelete(node.Right, key, m)
	} else {
		// At most one child: splice it in, nothing below to rebalance.
		if node.Left == nil {
			return node.Right
		}
		if node.Right == nil {
			return node.Left
		}
		// Two children: promote the in-order successor's key and delete
		// the successor from the right subtree. The recursive delete
		// rebalances that subtree; this node and its ancestors are
		// handled below on the unwind.
		succ := avlMin(node.Right)
		node.Key = succ.Key
		node.Right = avlDelete(node.Right, succ.Key, m)
	}

	avlUpdateHeight(node)

	// On delete the inserted-key heuristic is useless; the child's own
	// balance sign picks between the single and double rotation.
	balance := avlBalance(node)
	if balance > 1 {
		if avlBalance(node.Left) >= 0 {
			return avlRotateRight(node, m)
		}
		node.Left = avlRotateLeft(node.Left, m)
		return avlRotateRight(node, m)
	}
	if balance < -1 {
		if avlBalance(node.Right) <= 0 {
			return avlRotateLeft(node, m)
		}
		node.Right = avlRotateRight(node.Right, m)
		return avlRotateLeft(node, m)
	}

	return node
}

func avlMin(node *AVLNode) *AVLNode {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

// Height is O(1): it reads the cached root height, which every insert
// and delete keeps current.
func (t *AVL) Height() int {
	return avlHeight(t.Root)
}

// Count returns the number of nodes in the tree.
func (t *AVL) Count() int {
	return avlCount(t.Root)
}

func avlCount(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return 1 + avlCount(node.Left) + avlCount(node.Right)
}

// Min returns the smallest key, with ok false on an empty tree.
func (t *AVL) Min() (int, bool) {
	if t.Root == nil {
		return 0, false
	}
	return avlMin(t.Root).Key, true
}

// Max returns the largest key, with ok false on an empty tree.
func (t *AVL) Max() (int, bool) {
	if t.Root == nil {
		return 0, false
	}
	node := t.Root
	for node.Right != nil {
		node = node.Right
	}
	return node.Key, true
}
