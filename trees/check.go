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

import "fmt"

// CheckBST verifies the ordering invariant: an in-order walk must yield
// strictly ascending keys with no duplicates.
func (t *BST) CheckBST() error {
	first := true
	prev := 0
	for k := range t.InOrder() {
		if !first && k <= prev {
			return fmt.Errorf("ordering violated: %d follows %d in-order", k, prev)
		}
		prev = k
		first = false
	}
	return nil
}

// CheckAVL verifies the full AVL contract: the ordering invariant, exact
// cached heights, and a balance factor within [-1, 1] at every node.
func (t *AVL) CheckAVL() error {
	first := true
	prev := 0
	for k := range t.InOrder() {
		if !first && k <= prev {
			return fmt.Errorf("ordering violated: %d follows %d in-order", k, prev)
		}
		prev = k
		first = false
	}
	_, err := checkAVLNode(t.Root)
	return err
}

// checkAVLNode recomputes the height of every subtree and compares it
// against the cached value, then checks the balance factor.
func checkAVLNode(node *AVLNode) (int, error) {
	if node == nil {
		return 0, nil
	}
	lh, err := checkAVLNode(node.Left)
	if err != nil {
		return 0, err
	}
	rh, err := checkAVLNode(node.Right)
	if err != nil {
		return 0, err
	}
	h := 1 + max(lh, rh)
	if node.Height != h {
		return 0, fmt.Errorf("stale height at key %d: cached %d, actual %d", node.Key, node.Height, h)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, fmt.Errorf("balance violated at key %d: factor %d", node.Key, bf)
	}
	return h, nil
}
