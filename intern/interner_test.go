package intern_test

import (
	"testing"

	"github.com/arannis/conexus/intern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntern_FirstAppearanceOrder(t *testing.T) {
	in := intern.New(0)
	a, err := in.Intern(500)
	require.NoError(t, err)
	b, err := in.Intern(10)
	require.NoError(t, err)
	c, err := in.Intern(500)
	require.NoError(t, err)

	assert.Equal(t, uint64(0), a, "first ID seen gets index 0 regardless of numeric value")
	assert.Equal(t, uint64(1), b)
	assert.Equal(t, a, c, "re-interning the same ID returns its existing index")
	assert.Equal(t, uint64(2), in.Size())
}

func TestInverse_RoundTrips(t *testing.T) {
	in := intern.New(0)
	ids := []uint64{7, 22361810781, 3, 50000000001}
	for _, id := range ids {
		idx, err := in.Intern(id)
		require.NoError(t, err)
		assert.Equal(t, id, in.Inverse(idx))
	}
}

func TestIntern_RejectsZero(t *testing.T) {
	in := intern.New(0)
	_, err := in.Intern(0)
	assert.ErrorIs(t, err, intern.ErrInvalidNodeID)
}

func TestLookup_UnknownIDNotInterned(t *testing.T) {
	in := intern.New(0)
	_, err := in.Intern(1)
	require.NoError(t, err)

	_, ok := in.Lookup(999)
	assert.False(t, ok)
	assert.Equal(t, uint64(1), in.Size(), "Lookup must not intern a miss")
}

func TestIntern_ManyDistinctSequentialIDs(t *testing.T) {
	const n = 5000
	in := intern.New(n)
	for i := uint64(1); i <= n; i++ {
		idx, err := in.Intern(i)
		require.NoError(t, err)
		assert.Equal(t, i-1, idx)
	}
	assert.Equal(t, uint64(n), in.Size())
	// Re-scan confirms stability of the mapping after growth.
	for i := uint64(1); i <= n; i++ {
		idx, err := in.Intern(i)
		require.NoError(t, err)
		assert.Equal(t, i-1, idx)
	}
}
