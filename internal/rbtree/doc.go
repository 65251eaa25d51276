// Package rbtree implements a self-balancing ordered map keyed by strings.
//
// The map is a classic sentinel-based red-black tree. Node records are
// recycled through a bounded free list so that delete/insert churn does not
// translate into allocation churn.
//
// Architecture:
//
//	┌────────────────────────────────────────────────────────────┐
//	│                        Tree[V]                             │
//	├────────────────────────────────────────────────────────────┤
//	│  Insert/Delete:  descent → pool acquire/release → fixup    │
//	│  Search/Iterate: descent / explicit-stack in-order walk    │
//	├────────────────────────────────────────────────────────────┤
//	│  nodePool: bounded LIFO free list, drop-on-full            │
//	└────────────────────────────────────────────────────────────┘
//
// Key components:
//   - Tree: sentinel, root, balancing logic, diagnostic counters
//   - nodePool: bounded cache of released node records
//   - Iterator: restartable in-order traversal, fresh per Entries call
//
// A Tree is single-writer: callers sharing one instance across goroutines
// must serialize access externally. Separate Tree instances are independent.
package rbtree
