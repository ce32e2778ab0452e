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

import "iter"

// Traversals are exposed as lazy sequences. Ranging over one walks the
// tree on demand; breaking out stops the walk, and re-ranging restarts
// it from the root.

// InOrder yields the keys in ascending order.
func (t *BST) InOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		bstInOrder(t.Root, yield)
	}
}

func bstInOrder(node *BSTNode, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	if !bstInOrder(node.Left, yield) {
		return false
	}
	if !yield(node.Key) {
		return false
	}
	return bstInOrder(node.Right, yield)
}

// InOrder yields the keys in ascending order.
func (t *AVL) InOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		avlInOrder(t.Root, yield)
	}
}

func avlInOrder(node *AVLNode, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	if !avlInOrder(node.Left, yield) {
		return false
	}
	if !yield(node.Key) {
		return false
	}
	return avlInOrder(node.Right, yield)
}

// PreOrder yields each node before its children (root first).
func (t *AVL) PreOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		avlPreOrder(t.Root, yield)
	}
}

func avlPreOrder(node *AVLNode, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	if !yield(node.Key) {
		return false
	}
	if !avlPreOrder(node.Left, yield) {
		return false
	}
	return avlPreOrder(node.Right, yield)
}

// PostOrder yields each node after both children (root last). This is
// also the order a manual-memory implementation would free nodes in.
func (t *AVL) PostOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		avlPostOrder(t.Root, yield)
	}
}

func avlPostOrder(node *AVLNode, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	if !avlPostOrder(node.Left, yield) {
		return false
	}
	if !avlPostOrder(node.Right, yield) {
		return false
	}
	return yield(node.Key)
}

// LevelOrder yields the keys level by level, left to right.
func (t *AVL) LevelOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		if t.Root == nil {
			return
		}
		queue := []*AVLNode{t.Root}
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			if !yield(node.Key) {
				return
			}
			if node.Left != nil {
				queue = append(queue, node.Left)
			}
			if node.Right != nil {
				queue = append(queue, node.Right)
			}
		}
	}
}

// Keys collects the in-order traversal into a slice.
func (t *BST) Keys() []int {
	keys := make([]int, 0, bstCount(t.Root))
	for k := range t.InOrder() {
		keys = append(keys, k)
	}
	return keys
}

// Keys collects the in-order traversal into a slice.
func (t *AVL) Keys() []int {
	keys := make([]int, 0, avlCount(t.Root))
	for k := range t.InOrder() {
		keys = append(keys, k)
	}
	return keys
}
