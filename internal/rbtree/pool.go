package rbtree

// defaultPoolCapacity bounds how many released node records a tree retains
// for reuse. Records released beyond this are left to the garbage collector.
const defaultPoolCapacity = 4096

// nodePool is a bounded LIFO free list of released node records. It knows
// nothing about tree structure and performs no key comparisons; its only job
// is to hand back the most recently released record instead of allocating.
type nodePool[V any] struct {
	free     []*node[V]
	capacity int
	sentinel *node[V]

	// reuse-ratio accounting
	reused    uint64
	allocated uint64
}

func newNodePool[V any](capacity int, sentinel *node[V]) *nodePool[V] {
	if capacity <= 0 {
		capacity = defaultPoolCapacity
	}
	return &nodePool[V]{
		free:     make([]*node[V], 0, capacity),
		capacity: capacity,
		sentinel: sentinel,
	}
}

// acquire returns a node initialized with the given key, hash and value,
// colored red, with all links pointing at the sentinel. The most recently
// released record is preferred over a fresh allocation.
func (p *nodePool[V]) acquire(key string, keyHash uint32, value V) *node[V] {
	var n *node[V]
	if len(p.free) > 0 {
		n = p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
		p.reused++
	} else {
		n = &node[V]{}
		p.allocated++
	}
	n.key = key
	n.keyHash = keyHash
	n.value = value
	n.color = red
	n.height = 1
	n.left = p.sentinel
	n.right = p.sentinel
	n.parent = p.sentinel
	return n
}

// release returns a node to the free list if there is room. The record is
// scrubbed first so no reference to the old key or payload survives; a full
// pool simply drops the record.
func (p *nodePool[V]) release(n *node[V]) {
	if n == nil || n == p.sentinel {
		return
	}
	var zero V
	n.key = ""
	n.keyHash = 0
	n.value = zero
	n.color = black
	n.height = 0
	n.left = p.sentinel
	n.right = p.sentinel
	n.parent = p.sentinel
	if len(p.free) < p.capacity {
		p.free = append(p.free, n)
	}
}

// clear discards every pooled record.
func (p *nodePool[V]) clear() {
	for i := range p.free {
		p.free[i] = nil
	}
	p.free = p.free[:0]
}

// size reports how many records are currently available for reuse.
func (p *nodePool[V]) size() int {
	return len(p.free)
}

// reuseRatio is the fraction of acquires served from the free list.
func (p *nodePool[V]) reuseRatio() float64 {
	total := p.reused + p.allocated
	if total == 0 {
		return 0
	}
	return float64(p.reused) / float64(total)
}
