package rbtree

type color bool

const (
	red   color = true
	black color = false
)

// node is a single key/value entry in the tree.
//
// keyHash caches the per-tree salted hash of key so that equality checks
// during descent can reject mismatches without comparing strings. height is
// the cached height of the subtree rooted here (sentinel = 0, leaf = 1); it
// is advisory and not consulted by the balancing logic.
type node[V any] struct {
	key     string
	keyHash uint32
	value   V
	color   color
	height  int

	left, right, parent *node[V]
}

// newSentinel returns the per-tree NIL node: always black, height 0, with
// every structural link pointing back at itself so descent code never has to
// test for nil pointers.
func newSentinel[V any]() *node[V] {
	s := &node[V]{color: black}
	s.left = s
	s.right = s
	s.parent = s
	return s
}
