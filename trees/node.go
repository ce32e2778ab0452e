// node.go

package trees

// BSTNode is a plain binary search tree node. Height is never cached;
// the BST engine recomputes it by full descent on demand.
type BSTNode struct {
	Key   int
	Left  *BSTNode
	Right *BSTNode
}

// AVLNode augments the node with a cached subtree height. A freshly
// created leaf has Height 1; an absent child counts as 0.
type AVLNode struct {
	Key    int
	Height int
	Left   *AVLNode
	Right  *AVLNode
}
