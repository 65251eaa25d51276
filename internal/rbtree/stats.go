package rbtree

import "math"

// Stats is a diagnostic snapshot of one tree. All fields are plain values;
// no live structural references escape.
type Stats struct {
	Size        int
	Height      int
	BlackHeight int
	Valid       bool

	// Cumulative counters since construction (or the last Clear).
	Rotations uint64
	Searches  uint64

	// MaxDepth is the deepest point reached by any search or insert.
	// AvgSearchDepth is MaxDepth divided by the search count - a cheap
	// approximation, not a true running average.
	MaxDepth       int
	AvgSearchDepth float64

	// Pool health.
	PoolReuseRatio float64
	PoolSize       int

	// BalanceFactor is ceil(log2(size+1)) over the actual height: 1 for a
	// perfectly packed tree, smaller as the tree stretches. 1 when empty.
	BalanceFactor float64
}

// Stats returns the current diagnostic snapshot. Runs a full validity check,
// so it is O(n); keep it off hot paths.
func (t *Tree[V]) Stats() Stats {
	s := Stats{
		Size:           t.count,
		Height:         t.root.height,
		BlackHeight:    t.BlackHeight(),
		Valid:          t.IsValid(),
		Rotations:      t.rotations,
		Searches:       t.searches,
		MaxDepth:       t.maxDepth,
		PoolReuseRatio: t.pool.reuseRatio(),
		PoolSize:       t.pool.size(),
		BalanceFactor:  1,
	}
	if t.searches > 0 {
		s.AvgSearchDepth = float64(t.maxDepth) / float64(t.searches)
	}
	if t.count > 0 && t.root.height > 0 {
		optimal := math.Ceil(math.Log2(float64(t.count + 1)))
		s.BalanceFactor = optimal / float64(t.root.height)
	}
	return s
}
