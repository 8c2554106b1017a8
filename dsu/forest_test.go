package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/arannis/conexus/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AllSingletons(t *testing.T) {
	f := dsu.New(5)
	require.Equal(t, uint64(5), f.Size())
	for i := uint64(0); i < 5; i++ {
		assert.Equal(t, i, f.Find(i), "fresh forest: every node is its own root")
	}
}

func TestUnion_MergesAndIsIdempotent(t *testing.T) {
	f := dsu.New(4)
	assert.True(t, f.Union(0, 1))
	assert.True(t, f.Same(0, 1))
	// Re-union of already-connected nodes is a no-op and reports false.
	assert.False(t, f.Union(0, 1))
	assert.False(t, f.Same(0, 2))
}

func TestUnion_Transitivity(t *testing.T) {
	f := dsu.New(3)
	f.Union(0, 1)
	f.Union(1, 2)
	assert.True(t, f.Same(0, 2), "unioning (0,1) and (1,2) must connect 0 and 2")
}

func TestSame_Reflexive(t *testing.T) {
	f := dsu.New(1)
	assert.True(t, f.Same(0, 0))
}

func TestUnionByRank_AttachesShorterUnderTaller(t *testing.T) {
	// Build a rank-2 tree over {0,1,2,3}, then union with a fresh
	// singleton; the singleton must attach under the existing root
	// rather than flipping it, keeping height from growing needlessly.
	f := dsu.New(5)
	f.Union(0, 1)
	f.Union(2, 3)
	f.Union(0, 2) // ranks equal -> root(0) absorbs root(2), rank(root(0)) becomes 2
	root := f.Find(0)
	f.Union(0, 4)
	assert.Equal(t, root, f.Find(4))
}

func TestFind_PathCompression(t *testing.T) {
	f := dsu.New(6)
	// Chain of unions (0,1),(1,2),...,(4,5); every node must then resolve
	// to the same root.
	for i := uint64(1); i < 6; i++ {
		f.Union(i-1, i)
	}
	root := f.Find(5)
	for i := uint64(0); i < 6; i++ {
		assert.Equal(t, root, f.Find(i))
	}
}

// TestLargeForest_RandomUnions checks correctness at a size large enough
// to stress path compression and rank growth meaningfully. It stays on
// the uint32-backed forest; neither the tests nor the benchmarks
// allocate a forest of 2^31 or more nodes.
func TestLargeForest_RandomUnions(t *testing.T) {
	const n = 20000
	f := dsu.New(n)
	r := rand.New(rand.NewSource(7))
	// Random spanning unions guarantee full connectivity at the end.
	for i := uint64(1); i < n; i++ {
		j := uint64(r.Intn(int(i)))
		f.Union(i, j)
	}
	root := f.Find(0)
	for i := uint64(0); i < n; i++ {
		require.Equal(t, root, f.Find(i))
	}
}
