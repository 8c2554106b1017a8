package label_test

import (
	"sort"
	"testing"

	"github.com/arannis/conexus/dsu"
	"github.com/arannis/conexus/label"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildThreeComponents builds edges {(1,2),(2,3),(5,6),(8,9),(9,10)}
// already interned by first appearance into 0..7, with from/to parallel
// to the internal edge order, forming three disjoint components of
// size 3, 3, and 2.
func buildThreeComponents(t *testing.T) (*dsu.DSF, []uint64, []uint64) {
	t.Helper()
	f := dsu.New(8)
	from := []uint64{0, 1, 3, 5, 6}
	to := []uint64{1, 2, 4, 6, 7}
	for i := range from {
		f.Union(from[i], to[i])
	}
	return f, from, to
}

func TestLabel_Compressed_ThreeComponents(t *testing.T) {
	f, from, to := buildThreeComponents(t)
	res, err := label.Label(f, from, to, true)
	require.NoError(t, err)

	assert.EqualValues(t, 3, res.K)
	sizes := append([]uint64(nil), res.Sizes...)
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] > sizes[j] })
	assert.Equal(t, []uint64{3, 3, 2}, sizes)

	sum := uint64(0)
	for _, s := range res.Sizes {
		sum += s
	}
	assert.Equal(t, f.Size(), sum, "sizes must sum to N")
}

func TestLabel_EdgeCoherence(t *testing.T) {
	f, from, to := buildThreeComponents(t)
	res, err := label.Label(f, from, to, true)
	require.NoError(t, err)

	require.Len(t, res.EdgeFromLabel, 5)
	for i := range res.EdgeFromLabel {
		assert.Equal(t, res.EdgeFromLabel[i], res.EdgeToLabel[i])
	}
	assert.Equal(t, res.EdgeFromLabel[0], res.EdgeFromLabel[1])
	assert.NotEqual(t, res.EdgeFromLabel[0], res.EdgeFromLabel[2])
	assert.Equal(t, res.EdgeFromLabel[3], res.EdgeFromLabel[4])
	assert.NotEqual(t, res.EdgeFromLabel[0], res.EdgeFromLabel[3])
}

func TestLabel_Uncompressed_RawRootIndices(t *testing.T) {
	f := dsu.New(3)
	f.Union(0, 1)
	res, err := label.Label(f, nil, nil, false)
	require.NoError(t, err)

	root := f.Find(0)
	assert.Equal(t, root, res.NodeLabel[0])
	assert.Equal(t, root, res.NodeLabel[1])
	assert.NotEqual(t, res.NodeLabel[0], res.NodeLabel[2])
	assert.Equal(t, uint64(2), res.K)
	assert.Equal(t, uint64(2), res.RootSizes[root])
}

func TestLabel_EmptyForest(t *testing.T) {
	f := dsu.New(0)
	res, err := label.Label(f, nil, nil, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), res.K)
	assert.Empty(t, res.NodeLabel)
}

func TestLabel_MismatchedEdgeLengths(t *testing.T) {
	f := dsu.New(2)
	_, err := label.Label(f, []uint64{0}, []uint64{0, 1}, true)
	assert.ErrorIs(t, err, label.ErrEdgeLengthMismatch)
}

func TestLabel_SelfLoopSizeUnaffected(t *testing.T) {
	f := dsu.New(1)
	// Self-loop: union never called, since self-loops contribute no merge.
	res, err := label.Label(f, []uint64{0}, []uint64{0}, true)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, res.Sizes)
	assert.Equal(t, res.EdgeFromLabel[0], res.EdgeToLabel[0])
}
