package rbtree

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_AscendingOrder(t *testing.T) {
	tr := New[int]()
	rng := rand.New(rand.NewPCG(1, 2))

	want := map[string]int{}
	for i := 0; i < 300; i++ {
		key := fmt.Sprintf("k%03d", rng.IntN(200))
		require.NoError(t, tr.Insert(key, i))
		want[key] = i
	}

	keys := tr.Keys()
	require.Len(t, keys, len(want))
	assert.True(t, sort.StringsAreSorted(keys), "keys out of order: %v", keys)

	// Entries yields the same pairs as Keys/Values zipped.
	values := tr.Values()
	it := tr.Entries()
	i := 0
	for it.Next() {
		require.Less(t, i, len(keys))
		assert.Equal(t, keys[i], it.Key())
		assert.Equal(t, values[i], it.Value())
		assert.Equal(t, Entry[int]{Key: keys[i], Value: values[i]}, it.Entry())
		i++
	}
	assert.Equal(t, len(keys), i)
}

func TestIterator_Restartable(t *testing.T) {
	tr := New[int]()
	for i := 0; i < 10; i++ {
		require.NoError(t, tr.Insert(fmt.Sprintf("k%d", i), i))
	}

	first := tr.Entries()
	n := 0
	for first.Next() {
		n++
	}
	require.Equal(t, 10, n)
	assert.False(t, first.Next(), "exhausted iterator must stay exhausted")

	// A fresh iterator sees the full current contents again.
	second := tr.Entries()
	n = 0
	for second.Next() {
		n++
	}
	assert.Equal(t, 10, n)
}

func TestIterator_IndependentCursors(t *testing.T) {
	tr := New[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, tr.Insert(fmt.Sprintf("k%d", i), i))
	}

	a := tr.Entries()
	b := tr.Entries()

	require.True(t, a.Next())
	require.True(t, a.Next())
	require.True(t, b.Next())

	assert.Equal(t, "k1", a.Key())
	assert.Equal(t, "k0", b.Key())
}

func TestIterator_Seek(t *testing.T) {
	tr := New[int]()
	for _, key := range []string{"apple", "banana", "cherry", "grape"} {
		require.NoError(t, tr.Insert(key, len(key)))
	}

	it := tr.Entries()
	require.True(t, it.Seek("b"))
	assert.Equal(t, "banana", it.Key())

	require.True(t, it.Next())
	assert.Equal(t, "cherry", it.Key())

	// Exact match.
	require.True(t, it.Seek("cherry"))
	assert.Equal(t, "cherry", it.Key())

	// Past the end.
	assert.False(t, it.Seek("zzz"))
}

func TestIterator_EmptyTree(t *testing.T) {
	tr := New[int]()

	it := tr.Entries()
	assert.False(t, it.Next())
	assert.Empty(t, tr.Keys())
	assert.Empty(t, tr.Values())
}
