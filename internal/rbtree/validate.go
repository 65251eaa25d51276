package rbtree

// IsValid verifies the red-black invariants bottom-up:
//  1. the sentinel is black
//  2. the root is black (or the tree is empty)
//  3. no red node has a red child
//  4. every root-to-sentinel path carries the same number of black nodes
//  5. child/parent links are mutually consistent
//
// Intended for tests and diagnostics, not for hot paths.
func (t *Tree[V]) IsValid() bool {
	if t.sentinel.color != black {
		return false
	}
	if t.root == t.sentinel {
		return true
	}
	if t.root.color != black {
		return false
	}
	if t.root.parent != t.sentinel {
		return false
	}
	_, ok := t.checkSubtree(t.root)
	return ok
}

// checkSubtree returns the black height of the subtree and whether it
// satisfies the invariants.
func (t *Tree[V]) checkSubtree(n *node[V]) (int, bool) {
	if n == t.sentinel {
		return 1, true
	}
	if n.color == red && (n.left.color == red || n.right.color == red) {
		return 0, false
	}
	if n.left != t.sentinel && n.left.parent != n {
		return 0, false
	}
	if n.right != t.sentinel && n.right.parent != n {
		return 0, false
	}

	leftBlack, leftOK := t.checkSubtree(n.left)
	rightBlack, rightOK := t.checkSubtree(n.right)
	if !leftOK || !rightOK || leftBlack != rightBlack {
		return 0, false
	}

	if n.color == black {
		leftBlack++
	}
	return leftBlack, true
}
