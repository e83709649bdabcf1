// Package grid implements the Suguru puzzle model: an immutable region
// Layout plus a mutable Grid of cell values with bitmask candidate
// tracking. A value is legal when it is unused within its region and
// differs from all 8-adjacent neighbors.
package grid

import (
	"strings"
)

// EmptyCell marks an unset cell value.
const EmptyCell = 0

// Grid is a partitioned Suguru grid with a (possibly partial) value
// assignment. Cells are stored in a flat slice indexed row*Cols+col; the
// region partition lives in the shared immutable Layout.
type Grid struct {
	layout *Layout
	cells  []int

	// regionMasks track placed values per region; bit i represents value
	// i+1. Together with the neighbor values they give O(1)-ish candidate
	// computation.
	regionMasks []uint16

	// emptyCount tracks unfilled cells for quick completion checks.
	// Only Set, SetForce and Clear may touch it after construction.
	emptyCount int
}

// New creates an empty Grid over the given layout.
func New(layout *Layout) *Grid {
	return &Grid{
		layout:      layout,
		cells:       make([]int, layout.CellCount()),
		regionMasks: make([]uint16, len(layout.Regions)),
		emptyCount:  layout.CellCount(),
	}
}

// Clone creates an independent copy of the Grid.
// The layout pointer is shared — Layout is immutable after construction.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := &Grid{
		layout:      g.layout,
		cells:       make([]int, len(g.cells)),
		regionMasks: make([]uint16, len(g.regionMasks)),
		emptyCount:  g.emptyCount,
	}
	copy(clone.cells, g.cells)
	copy(clone.regionMasks, g.regionMasks)
	return clone
}

// Layout returns the grid's region layout.
func (g *Grid) Layout() *Layout {
	return g.layout
}

// CellCount returns the total number of cells.
func (g *Grid) CellCount() int {
	return len(g.cells)
}

// Get returns the value at the given position, or EmptyCell.
func (g *Grid) Get(pos int) int {
	return g.cells[pos]
}

// Set attempts to place a value at the given position.
// Returns an error if the placement violates Suguru rules.
func (g *Grid) Set(pos, val int) error {
	if err := g.validatePosition(pos); err != nil {
		return err
	}
	if val == EmptyCell {
		g.Clear(pos)
		return nil
	}
	if err := g.validateValue(pos, val); err != nil {
		return err
	}
	if g.cells[pos] == val {
		return nil
	}

	region := g.layout.PosToRegion[pos]
	mask := uint16(1) << (val - 1)

	if g.regionMasks[region]&mask != 0 {
		return errValueInRegion(val, region)
	}
	for _, nb := range g.layout.Neighbors(pos) {
		if g.cells[nb] == val {
			return errValueAdjacent(val, nb)
		}
	}

	// Modify the grid only once we know the move is legal; a rejected
	// overwrite keeps the cell's previous value.
	g.Clear(pos)
	g.cells[pos] = val
	g.regionMasks[region] |= mask
	g.emptyCount--
	return nil
}

// SetForce places a value without legality checks.
// Use only when certain the move is valid and the cell is empty.
func (g *Grid) SetForce(pos, val int) {
	g.cells[pos] = val
	g.regionMasks[g.layout.PosToRegion[pos]] |= uint16(1) << (val - 1)
	g.emptyCount--
}

// Clear removes the value at the given position.
// No harm is done calling Clear on an already empty cell.
func (g *Grid) Clear(pos int) {
	val := g.cells[pos]
	if val == EmptyCell {
		return
	}
	g.cells[pos] = EmptyCell
	g.regionMasks[g.layout.PosToRegion[pos]] &^= uint16(1) << (val - 1)
	g.emptyCount++
}

// CandidatesMask returns the bitmask of legal values for a position: the
// region's value range minus values already placed in the region and among
// the 8-adjacent neighbors. A returned 0 for an empty cell means the grid
// is unsolvable from this state.
func (g *Grid) CandidatesMask(pos int) uint16 {
	region := g.layout.PosToRegion[pos]
	mask := fullMask(len(g.layout.Regions[region])) &^ g.regionMasks[region]
	for _, nb := range g.layout.Neighbors(pos) {
		if v := g.cells[nb]; v != EmptyCell {
			mask &^= uint16(1) << (v - 1)
		}
	}
	return mask
}

// Candidates returns the legal values for a position as a slice.
func (g *Grid) Candidates(pos int) []int {
	mask := g.CandidatesMask(pos)
	candidates := make([]int, 0, maxRegionSize)
	for v := 1; v <= maxRegionSize; v++ {
		if mask&(uint16(1)<<(v-1)) != 0 {
			candidates = append(candidates, v)
		}
	}
	return candidates
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	return g.emptyCount
}

// ClueCount returns the number of filled cells.
func (g *Grid) ClueCount() int {
	return len(g.cells) - g.emptyCount
}

// IsComplete reports whether every cell has a value.
func (g *Grid) IsComplete() bool {
	return g.emptyCount == 0
}

// String returns the grid as a compact row-major string.
// Empty cells are represented as '.', filled cells as their digit.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells))
	for _, cell := range g.cells {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}
	return sb.String()
}

// Format returns a human-readable rendering, one grid row per line.
func (g *Grid) Format() string {
	var sb strings.Builder
	for row := 0; row < g.layout.Rows; row++ {
		for col := 0; col < g.layout.Cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			val := g.cells[g.layout.Pos(row, col)]
			if val == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRegions renders the region partition, one letter per region.
func (g *Grid) FormatRegions() string {
	var sb strings.Builder
	for row := 0; row < g.layout.Rows; row++ {
		for col := 0; col < g.layout.Cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('a' + byte(g.layout.PosToRegion[g.layout.Pos(row, col)]%26))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// fullMask returns the bitmask with the low n bits set: the complete value
// range 1..n of a size-n region.
func fullMask(n int) uint16 {
	return uint16(1)<<n - 1
}
