package treemap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monforje/treemap/internal/bench"
	"github.com/monforje/treemap/internal/rbtree"
)

// Integration tests verify end-to-end behavior across components.

func TestE2E_MapLifecycle(t *testing.T) {
	tr := rbtree.New[string]()

	// Build up a map, overwrite some keys, delete others.
	n := 1000
	for i := 0; i < n; i++ {
		require.NoError(t, tr.Insert(fmt.Sprintf("user:%04d", i), fmt.Sprintf("v%d", i)))
	}
	for i := 0; i < n; i += 2 {
		require.NoError(t, tr.Insert(fmt.Sprintf("user:%04d", i), "updated"))
	}
	for i := 0; i < n; i += 5 {
		require.True(t, tr.Delete(fmt.Sprintf("user:%04d", i)))
	}

	require.True(t, tr.IsValid())
	assert.Equal(t, n-n/5, tr.Size())

	// Surviving even keys carry the overwrite, odd keys the original value.
	v, ok := tr.Search("user:0002")
	require.True(t, ok)
	assert.Equal(t, "updated", v)

	v, ok = tr.Search("user:0003")
	require.True(t, ok)
	assert.Equal(t, "v3", v)

	_, ok = tr.Search("user:0005")
	assert.False(t, ok)

	// Iteration matches the materialized views.
	keys := tr.Keys()
	values := tr.Values()
	it := tr.Entries()
	i := 0
	for it.Next() {
		assert.Equal(t, keys[i], it.Key())
		assert.Equal(t, values[i], it.Value())
		i++
	}
	assert.Equal(t, tr.Size(), i)

	// Full teardown leaves a usable empty map.
	tr.Deallocate()
	assert.True(t, tr.IsEmpty())
	require.NoError(t, tr.Insert("fresh", "start"))
	assert.True(t, tr.Contains("fresh"))
}

func TestE2E_BulkLoadThenBench(t *testing.T) {
	tr := rbtree.New[int]()

	entries := make([]rbtree.Entry[int], 0, 500)
	for i := 499; i >= 0; i-- { // descending input order
		entries = append(entries, rbtree.Entry[int]{Key: fmt.Sprintf("k%04d", i), Value: i})
	}
	require.NoError(t, tr.BulkInsert(entries))
	require.True(t, tr.IsValid())
	assert.Equal(t, 500, tr.Size())

	min, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, 0, min)

	max, ok := tr.Max()
	require.True(t, ok)
	assert.Equal(t, 499, max)

	// The bench runner drives the same tree implementation across
	// goroutine-isolated instances.
	cfg := bench.DefaultConfig()
	cfg.Keys = 200
	cfg.Trees = 3
	cfg.Workload = bench.WorkloadChurn

	results, err := bench.Run(cfg)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Stats.Valid)
		assert.Positive(t, r.Stats.PoolReuseRatio)
	}
}
