package rbtree

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_EmptyTree(t *testing.T) {
	tr := New[int]()
	s := tr.Stats()

	assert.Equal(t, 0, s.Size)
	assert.Equal(t, 0, s.Height)
	assert.Equal(t, 0, s.BlackHeight)
	assert.True(t, s.Valid)
	assert.Zero(t, s.Rotations)
	assert.Zero(t, s.Searches)
	assert.Zero(t, s.AvgSearchDepth)
	assert.Equal(t, 1.0, s.BalanceFactor)
}

func TestStats_AfterWorkload(t *testing.T) {
	tr := New[int]()

	n := 500
	for i := 0; i < n; i++ {
		require.NoError(t, tr.Insert(fmt.Sprintf("k%04d", i), i))
	}
	for i := 0; i < 100; i++ {
		tr.Search(fmt.Sprintf("k%04d", i))
	}

	s := tr.Stats()
	assert.Equal(t, n, s.Size)
	assert.True(t, s.Valid)
	assert.Positive(t, s.Height)
	assert.Positive(t, s.BlackHeight)
	assert.Positive(t, s.Rotations, "ascending inserts must rotate")
	assert.Equal(t, uint64(100), s.Searches)
	assert.Positive(t, s.MaxDepth)
	assert.InDelta(t, float64(s.MaxDepth)/100, s.AvgSearchDepth, 1e-9)

	optimal := math.Ceil(math.Log2(float64(n + 1)))
	assert.InDelta(t, optimal/float64(s.Height), s.BalanceFactor, 1e-9)
	assert.LessOrEqual(t, s.BalanceFactor, 1.0)
	assert.Greater(t, s.BalanceFactor, 0.4, "red-black height stays within 2x optimal")
}

func TestStats_PoolFields(t *testing.T) {
	tr := New[int]()

	require.NoError(t, tr.Insert("a", 1))
	require.True(t, tr.Delete("a"))

	s := tr.Stats()
	assert.Equal(t, 1, s.PoolSize)

	require.NoError(t, tr.Insert("b", 2))
	s = tr.Stats()
	assert.Equal(t, 0, s.PoolSize)
	assert.Positive(t, s.PoolReuseRatio)
}

func TestStats_ClearResetsCounters(t *testing.T) {
	tr := New[int]()
	for i := 0; i < 50; i++ {
		require.NoError(t, tr.Insert(fmt.Sprintf("k%02d", i), i))
	}
	tr.Search("k10")
	tr.Clear()

	s := tr.Stats()
	assert.Zero(t, s.Rotations)
	assert.Zero(t, s.Searches)
	assert.Zero(t, s.MaxDepth)
	assert.Equal(t, 1.0, s.BalanceFactor)
}

func TestStats_NoLiveReferencesEscape(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("a", 1))

	s := tr.Stats()
	s.Size = 999
	s.Rotations = 999

	// Mutating the snapshot leaves the tree untouched.
	assert.Equal(t, 1, tr.Size())
	assert.True(t, tr.IsValid())
}
