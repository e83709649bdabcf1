package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solved4x4 is a full valid assignment for the blocks4x4 layout: every
// region holds 1..4 once and no two 8-adjacent cells match.
var solved4x4 = []int{
	3, 1, 3, 1,
	4, 2, 4, 2,
	1, 3, 1, 3,
	2, 4, 2, 4,
}

func newTestGrid(t *testing.T) *Grid {
	t.Helper()
	l, err := NewLayout(4, 4, blocks4x4())
	require.NoError(t, err)
	return New(l)
}

func TestSetAndClear(t *testing.T) {
	g := newTestGrid(t)

	require.NoError(t, g.Set(0, 3))
	assert.Equal(t, 3, g.Get(0))
	assert.Equal(t, 15, g.EmptyCount())
	assert.Equal(t, 1, g.ClueCount())

	g.Clear(0)
	assert.Equal(t, EmptyCell, g.Get(0))
	assert.Equal(t, 16, g.EmptyCount())

	// Clearing an empty cell is harmless.
	g.Clear(0)
	assert.Equal(t, 16, g.EmptyCount())
}

func TestSetRejectsRegionDuplicate(t *testing.T) {
	g := newTestGrid(t)

	require.NoError(t, g.Set(0, 3))
	// Cell 5 is in the same 2x2 region as cell 0.
	err := g.Set(5, 3)
	require.ErrorIs(t, err, ErrIllegalMove)
	assert.Equal(t, EmptyCell, g.Get(5))
}

func TestSetRejectsAdjacentDuplicate(t *testing.T) {
	g := newTestGrid(t)

	// Cells 1 and 6 are diagonal neighbors in different regions.
	require.NoError(t, g.Set(1, 2))
	err := g.Set(6, 2)
	require.ErrorIs(t, err, ErrIllegalMove)

	// Cells 1 and 2 are orthogonal neighbors in different regions.
	err = g.Set(2, 2)
	require.ErrorIs(t, err, ErrIllegalMove)

	// A non-adjacent cell in another region may reuse the value.
	require.NoError(t, g.Set(11, 2))
}

func TestSetRejectionKeepsExistingValue(t *testing.T) {
	g := newTestGrid(t)
	require.NoError(t, g.Set(1, 2))
	require.NoError(t, g.Set(0, 3))

	// Cell 1 shares region 0 with cell 0, so overwriting with 2 is illegal;
	// the rejected move must leave the old value in place.
	err := g.Set(0, 2)
	require.ErrorIs(t, err, ErrIllegalMove)
	assert.Equal(t, 3, g.Get(0))
	assert.Equal(t, 14, g.EmptyCount())

	// A legal overwrite replaces the value without changing the counts.
	require.NoError(t, g.Set(0, 4))
	assert.Equal(t, 4, g.Get(0))
	assert.Equal(t, 14, g.EmptyCount())

	// Re-setting the same value is a no-op.
	require.NoError(t, g.Set(0, 4))
	assert.Equal(t, 4, g.Get(0))
	assert.Equal(t, 14, g.EmptyCount())
}

func TestSetRejectsOutOfRangeValues(t *testing.T) {
	g := newTestGrid(t)

	assert.ErrorIs(t, g.Set(0, 5), ErrInvalidValue) // region size is 4
	assert.ErrorIs(t, g.Set(0, -1), ErrInvalidValue)
	assert.ErrorIs(t, g.Set(-1, 1), ErrInvalidPosition)
	assert.ErrorIs(t, g.Set(16, 1), ErrInvalidPosition)
}

func TestCandidates(t *testing.T) {
	g := newTestGrid(t)

	assert.Equal(t, []int{1, 2, 3, 4}, g.Candidates(0))

	require.NoError(t, g.Set(0, 3)) // region mate of 5, neighbor of 5
	require.NoError(t, g.Set(2, 1)) // neighbor of 5 diagonally? no: (0,2) vs (1,1) is diagonal
	candidates := g.Candidates(5)
	assert.NotContains(t, candidates, 3, "region and adjacency exclude 3")
	assert.NotContains(t, candidates, 1, "diagonal adjacency excludes 1")
	assert.Contains(t, candidates, 2)
	assert.Contains(t, candidates, 4)
}

func TestCandidatesShrinkAndRestore(t *testing.T) {
	g := newTestGrid(t)

	before := g.CandidatesMask(5)
	require.NoError(t, g.Set(0, 4))
	assert.NotEqual(t, before, g.CandidatesMask(5))
	g.Clear(0)
	assert.Equal(t, before, g.CandidatesMask(5))
}

func TestCloneIsIndependent(t *testing.T) {
	g := newTestGrid(t)
	require.NoError(t, g.Set(0, 3))

	clone := g.Clone()
	require.NoError(t, clone.Set(15, 2))

	assert.Equal(t, EmptyCell, g.Get(15))
	assert.Equal(t, 3, clone.Get(0))
	assert.Same(t, g.Layout(), clone.Layout(), "layout pointer is shared")
}

func TestIsValidAndIsSolved(t *testing.T) {
	g := newTestGrid(t)
	assert.True(t, g.IsValid(), "empty grid is valid")
	assert.False(t, g.IsComplete())
	assert.False(t, g.IsSolved())

	for pos, val := range solved4x4 {
		require.NoError(t, g.Set(pos, val), "cell %d", pos)
	}
	assert.True(t, g.IsComplete())
	assert.True(t, g.IsValid())
	assert.True(t, g.IsSolved())

	// Force a region duplicate and an adjacency conflict.
	g.Clear(0)
	g.SetForce(0, 2) // duplicates value 2 of region 0 (cell 5)
	assert.False(t, g.IsValid())
}

func TestStringAndFormat(t *testing.T) {
	g := newTestGrid(t)
	require.NoError(t, g.Set(0, 3))

	assert.Equal(t, "3...............", g.String())
	assert.Contains(t, g.Format(), "3 . . .")
	assert.Equal(t, "a a b b\na a b b\nc c d d\nc c d d\n", g.FormatRegions())
}
