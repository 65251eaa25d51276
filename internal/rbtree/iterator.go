package rbtree

// Iterator walks the tree in ascending key order using an explicit ancestor
// stack. Each call to Entries returns a fresh iterator, so independent
// traversals never share cursor state; an exhausted iterator is simply
// dropped and a new one requested.
//
// The iterator reads the live structure: mutating the tree mid-traversal is
// undefined, matching the tree's single-writer contract.
type Iterator[V any] struct {
	t       *Tree[V]
	stack   []*node[V]
	current *node[V]
}

// Entries returns an iterator positioned before the first entry.
func (t *Tree[V]) Entries() *Iterator[V] {
	it := &Iterator[V]{t: t}
	it.pushLeft(t.root)
	return it
}

func (it *Iterator[V]) pushLeft(n *node[V]) {
	for n != it.t.sentinel {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Next advances to the next entry. Returns false when exhausted.
func (it *Iterator[V]) Next() bool {
	if len(it.stack) == 0 {
		it.current = nil
		return false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(n.right)
	it.current = n
	return true
}

// Seek positions the iterator at the first entry with key >= target and
// reports whether such an entry exists. A subsequent Next continues the
// in-order walk from there.
func (it *Iterator[V]) Seek(target string) bool {
	it.stack = it.stack[:0]
	n := it.t.root
	for n != it.t.sentinel {
		if n.key >= target {
			it.stack = append(it.stack, n)
			n = n.left
		} else {
			n = n.right
		}
	}
	return it.Next()
}

// Key returns the current entry's key.
func (it *Iterator[V]) Key() string {
	return it.current.key
}

// Value returns the current entry's value.
func (it *Iterator[V]) Value() V {
	return it.current.value
}

// Entry returns the current entry as a pair.
func (it *Iterator[V]) Entry() Entry[V] {
	return Entry[V]{Key: it.current.key, Value: it.current.value}
}

// Keys returns every key in ascending order, pre-sized to the element count.
func (t *Tree[V]) Keys() []string {
	keys := make([]string, 0, t.count)
	t.inorder(t.root, func(n *node[V]) {
		keys = append(keys, n.key)
	})
	return keys
}

// Values returns every value in ascending key order.
func (t *Tree[V]) Values() []V {
	values := make([]V, 0, t.count)
	t.inorder(t.root, func(n *node[V]) {
		values = append(values, n.value)
	})
	return values
}

func (t *Tree[V]) inorder(n *node[V], visit func(*node[V])) {
	if n == t.sentinel {
		return
	}
	t.inorder(n.left, visit)
	visit(n)
	t.inorder(n.right, visit)
}
