package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blocks4x4 partitions a 4x4 grid into four 2x2 regions.
func blocks4x4() []int {
	return []int{
		0, 0, 1, 1,
		0, 0, 1, 1,
		2, 2, 3, 3,
		2, 2, 3, 3,
	}
}

func TestNewLayoutValid(t *testing.T) {
	l, err := NewLayout(4, 4, blocks4x4())
	require.NoError(t, err)

	assert.Equal(t, 16, l.CellCount())
	require.Len(t, l.Regions, 4)
	for r := range l.Regions {
		assert.Len(t, l.Regions[r], 4, "region %d", r)
	}
	assert.Equal(t, []int{0, 1, 4, 5}, l.RegionCells(0))
	assert.Equal(t, 4, l.RegionSize(0))
	assert.Equal(t, 3, l.Region(l.Pos(3, 3)))
}

func TestNewLayoutRejectsInvalidMaps(t *testing.T) {
	cases := []struct {
		name string
		rows int
		cols int
		m    []int
	}{
		{"wrong length", 4, 4, []int{0, 0, 1}},
		{"negative region", 2, 2, []int{0, -1, 0, 0}},
		{"empty region id gap", 2, 2, []int{0, 0, 2, 2}},
		{"oversized region", 4, 4, append(make([]int, 10), 1, 1, 1, 1, 1, 1)},
		{"disconnected region", 3, 3, []int{
			0, 1, 0,
			1, 1, 1,
			0, 1, 0,
		}},
		{"zero dimensions", 0, 4, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLayout(tc.rows, tc.cols, tc.m)
			assert.Error(t, err)
		})
	}
}

func TestNeighborTables(t *testing.T) {
	l, err := NewLayout(4, 4, blocks4x4())
	require.NoError(t, err)

	// Corner cell has 3 diagonal-inclusive neighbors, 2 orthogonal.
	corner := l.Pos(0, 0)
	assert.ElementsMatch(t, []int{1, 4, 5}, l.Neighbors(corner))
	assert.ElementsMatch(t, []int{1, 4}, l.OrthNeighbors(corner))

	// Interior cell has 8 and 4.
	mid := l.Pos(1, 1)
	assert.Len(t, l.Neighbors(mid), 8)
	assert.ElementsMatch(t, []int{l.Pos(0, 1), l.Pos(2, 1), l.Pos(1, 0), l.Pos(1, 2)}, l.OrthNeighbors(mid))

	// Edge cell.
	edge := l.Pos(0, 2)
	assert.Len(t, l.Neighbors(edge), 5)
	assert.Len(t, l.OrthNeighbors(edge), 3)
}

func TestPosRowColRoundTrip(t *testing.T) {
	l, err := NewLayout(4, 4, blocks4x4())
	require.NoError(t, err)

	for pos := 0; pos < l.CellCount(); pos++ {
		row, col := l.RowCol(pos)
		assert.Equal(t, pos, l.Pos(row, col))
	}
	assert.Equal(t, -1, l.Pos(-1, 0))
	assert.Equal(t, -1, l.Pos(0, 4))
}
