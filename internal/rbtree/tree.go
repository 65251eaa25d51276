package rbtree

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// reserveLimit caps how many throwaway nodes Reserve pre-warms the pool with.
const reserveLimit = 1000

// FNV-1a parameters for the salted key hash.
const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// Entry is a key/value pair, used for bulk insertion and iteration.
type Entry[V any] struct {
	Key   string
	Value V
}

// Tree is an ordered map from string keys to values of type V, backed by a
// sentinel-based red-black tree with a bounded node-reuse pool.
//
// A Tree is not safe for concurrent use; callers sharing one instance must
// serialize access externally.
type Tree[V any] struct {
	sentinel *node[V]
	root     *node[V]
	count    int
	seed     uint32 // per-tree hash salt
	pool     *nodePool[V]

	rotations uint64
	searches  uint64
	maxDepth  int
}

// New creates an empty tree with the default pool capacity.
func New[V any]() *Tree[V] {
	return NewWithPoolCapacity[V](defaultPoolCapacity)
}

// NewWithPoolCapacity creates an empty tree whose node pool retains at most
// poolCapacity released records. A non-positive capacity selects the default.
func NewWithPoolCapacity[V any](poolCapacity int) *Tree[V] {
	s := newSentinel[V]()
	return &Tree[V]{
		sentinel: s,
		root:     s,
		seed:     rand.Uint32(),
		pool:     newNodePool(poolCapacity, s),
	}
}

// hashKey computes the FNV-1a hash of key with the per-tree salt folded into
// the offset basis. The hash is cached on nodes as an equality filter: equal
// strings always hash equal within one tree, so a hash mismatch proves the
// keys differ without a string comparison. Lexicographic comparison remains
// authoritative for ordering; distinct keys may collide on the hash.
func (t *Tree[V]) hashKey(key string) uint32 {
	h := uint32(fnvOffset32) ^ t.seed
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= fnvPrime32
	}
	return h
}

// Insert adds key with the given value, or overwrites the value in place if
// the key is already present. Returns ErrEmptyKey for the empty key; no other
// failure mode exists.
func (t *Tree[V]) Insert(key string, value V) error {
	if key == "" {
		return ErrEmptyKey
	}
	h := t.hashKey(key)

	parent := t.sentinel
	cur := t.root
	depth := 0
	for cur != t.sentinel {
		depth++
		if h == cur.keyHash && key == cur.key {
			cur.value = value
			t.observeDepth(depth)
			return nil
		}
		parent = cur
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	t.observeDepth(depth + 1)

	n := t.pool.acquire(key, h, value)
	n.parent = parent
	switch {
	case parent == t.sentinel:
		t.root = n
	case key < parent.key:
		parent.left = n
	default:
		parent.right = n
	}
	t.count++
	t.insertFixup(n)
	t.updateHeights(n)
	return nil
}

// Search returns the value stored under key. The second result is false if
// the key is absent or empty.
func (t *Tree[V]) Search(key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}
	t.searches++
	h := t.hashKey(key)

	cur := t.root
	depth := 0
	for cur != t.sentinel {
		depth++
		if h == cur.keyHash && key == cur.key {
			t.observeDepth(depth)
			return cur.value, true
		}
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	t.observeDepth(depth)
	return zero, false
}

// Contains reports whether key is present.
func (t *Tree[V]) Contains(key string) bool {
	_, ok := t.Search(key)
	return ok
}

// Delete removes key from the tree and reports whether it was present. The
// physically removed node record is returned to the pool.
func (t *Tree[V]) Delete(key string) bool {
	if key == "" {
		return false
	}
	z := t.findNode(key)
	if z == t.sentinel {
		return false
	}

	y := z
	removedColor := y.color
	var x *node[V]

	switch {
	case z.left == t.sentinel:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.sentinel:
		x = z.left
		t.transplant(z, z.left)
	default:
		// Two children: splice the in-order successor into z's position.
		y = t.minimum(z.right)
		removedColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if removedColor == black {
		t.deleteFixup(x)
	}
	t.updateHeights(x.parent)
	// Transplant may park the sentinel under a real parent; undo that.
	t.sentinel.parent = t.sentinel

	t.count--
	t.pool.release(z)
	return true
}

// Clear releases every node back to the pool and resets the tree to empty,
// including the diagnostic counters. Clearing an empty tree is a no-op.
func (t *Tree[V]) Clear() {
	t.releaseSubtree(t.root)
	t.root = t.sentinel
	t.count = 0
	t.rotations = 0
	t.searches = 0
	t.maxDepth = 0
}

// Deallocate clears the tree and then discards the pool's retained records,
// for callers that want prompt reclamation instead of a warm reuse pool.
func (t *Tree[V]) Deallocate() {
	t.Clear()
	t.pool.clear()
}

// Reserve pre-warms the pool by acquiring and immediately releasing up to
// min(expected, 1000) throwaway nodes. Purely a performance hint.
func (t *Tree[V]) Reserve(expected int) {
	n := expected
	if n > reserveLimit {
		n = reserveLimit
	}
	if n <= 0 {
		return
	}
	var zero V
	warm := make([]*node[V], 0, n)
	for i := 0; i < n; i++ {
		warm = append(warm, t.pool.acquire("", 0, zero))
	}
	for _, w := range warm {
		t.pool.release(w)
	}
}

// BulkInsert inserts all entries, reserving pool capacity first and sorting
// by key ascending to cut rebalancing churn on adversarial input orders. The
// sort is stable, so duplicate keys in the input keep last-write-wins
// semantics matching sequential Insert calls. Returns ErrEmptyKey (and
// inserts nothing) if any entry has an empty key.
func (t *Tree[V]) BulkInsert(entries []Entry[V]) error {
	for i := range entries {
		if entries[i].Key == "" {
			return ErrEmptyKey
		}
	}
	t.Reserve(len(entries))

	sorted := make([]Entry[V], len(entries))
	copy(sorted, entries)
	slices.SortStableFunc(sorted, func(a, b Entry[V]) int {
		return strings.Compare(a.Key, b.Key)
	})
	for _, e := range sorted {
		if err := t.Insert(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Min returns the value under the smallest key, or false if the tree is empty.
func (t *Tree[V]) Min() (V, bool) {
	var zero V
	if t.root == t.sentinel {
		return zero, false
	}
	return t.minimum(t.root).value, true
}

// Max returns the value under the largest key, or false if the tree is empty.
func (t *Tree[V]) Max() (V, bool) {
	var zero V
	if t.root == t.sentinel {
		return zero, false
	}
	return t.maximum(t.root).value, true
}

// Size returns the number of entries.
func (t *Tree[V]) Size() int {
	return t.count
}

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[V]) IsEmpty() bool {
	return t.count == 0
}

// Height returns the cached height of the root in nodes (0 when empty).
func (t *Tree[V]) Height() int {
	return t.root.height
}

// BlackHeight counts the black nodes along the leftmost spine from the root
// down to the sentinel. On a valid tree every root-to-sentinel path carries
// the same count.
func (t *Tree[V]) BlackHeight() int {
	h := 0
	for x := t.root; x != t.sentinel; x = x.left {
		if x.color == black {
			h++
		}
	}
	return h
}

// findNode locates the node holding key, or the sentinel if absent.
func (t *Tree[V]) findNode(key string) *node[V] {
	h := t.hashKey(key)
	cur := t.root
	for cur != t.sentinel {
		if h == cur.keyHash && key == cur.key {
			return cur
		}
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return t.sentinel
}

func (t *Tree[V]) minimum(x *node[V]) *node[V] {
	for x.left != t.sentinel {
		x = x.left
	}
	return x
}

func (t *Tree[V]) maximum(x *node[V]) *node[V] {
	for x.right != t.sentinel {
		x = x.right
	}
	return x
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (t *Tree[V]) transplant(u, v *node[V]) {
	switch {
	case u.parent == t.sentinel:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Tree[V]) rotateLeft(x *node[V]) {
	y := x.right
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.sentinel:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y

	t.refreshHeight(x)
	t.refreshHeight(y)
	t.rotations++
}

func (t *Tree[V]) rotateRight(y *node[V]) {
	x := y.left
	y.left = x.right
	if x.right != t.sentinel {
		x.right.parent = y
	}
	x.parent = y.parent
	switch {
	case y.parent == t.sentinel:
		t.root = x
	case y == y.parent.right:
		y.parent.right = x
	default:
		y.parent.left = x
	}
	x.right = y
	y.parent = x

	t.refreshHeight(y)
	t.refreshHeight(x)
	t.rotations++
}

// insertFixup restores the red-black invariants after linking a new red node.
func (t *Tree[V]) insertFixup(z *node[V]) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			uncle := z.parent.parent.right
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			uncle := z.parent.parent.left
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

// deleteFixup restores the red-black invariants after removing a black node.
// x carries the "extra black" and is pushed up or resolved by recoloring and
// at most three rotations.
func (t *Tree[V]) deleteFixup(x *node[V]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rotateRight(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}

// refreshHeight recomputes a single node's cached height from its children.
func (t *Tree[V]) refreshHeight(n *node[V]) {
	if n == t.sentinel {
		return
	}
	h := n.left.height
	if n.right.height > h {
		h = n.right.height
	}
	n.height = h + 1
}

// updateHeights refreshes cached heights from n up to the root. Rotations
// refresh the two pivots locally; this walk covers their ancestors.
func (t *Tree[V]) updateHeights(n *node[V]) {
	for n != t.sentinel {
		t.refreshHeight(n)
		n = n.parent
	}
}

func (t *Tree[V]) releaseSubtree(n *node[V]) {
	if n == t.sentinel {
		return
	}
	t.releaseSubtree(n.left)
	t.releaseSubtree(n.right)
	t.pool.release(n)
}

func (t *Tree[V]) observeDepth(depth int) {
	if depth > t.maxDepth {
		t.maxDepth = depth
	}
}
