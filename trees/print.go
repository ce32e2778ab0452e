// print.go

package trees

import (
	"fmt"
	"strings"
)

// Sprint renders the tree sideways (root at the left, right subtree on
// top), which is readable enough for the small demonstration datasets.
func (t *BST) Sprint() string {
	var b strings.Builder
	sprintBST(&b, t.Root, 0)
	return b.String()
}

func sprintBST(b *strings.Builder, node *BSTNode, depth int) {
	if node == nil {
		return
	}
	sprintBST(b, node.Right, depth+1)
	fmt.Fprintf(b, "%s%d\n", strings.Repeat("    ", depth), node.Key)
	sprintBST(b, node.Left, depth+1)
}

// Sprint renders the tree sideways, annotating each node with its
// cached height.
func (t *AVL) Sprint() string {
	var b strings.Builder
	sprintAVL(&b, t.Root, 0)
	return b.String()
}

func sprintAVL(b *strings.Builder, node *AVLNode, depth int) {
	if node == nil {
		return
	}
	sprintAVL(b, node.Right, depth+1)
	fmt.Fprintf(b, "%s%d (h=%d)\n", strings.Repeat("    ", depth), node.Key, node.Height)
	sprintAVL(b, node.Left, depth+1)
}
