package grid

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("value out of range for region")
	ErrIllegalMove     = errors.New("move violates Suguru constraints")
)

// IsValid reports whether the current assignment satisfies the Suguru
// constraints: no duplicate values within a region and no equal values on
// 8-adjacent cells. Empty cells are ignored.
func (g *Grid) IsValid() bool {
	seen := make([]uint16, len(g.layout.Regions))

	for pos, val := range g.cells {
		if val == EmptyCell {
			continue
		}
		region := g.layout.PosToRegion[pos]
		if val > len(g.layout.Regions[region]) {
			return false
		}
		mask := uint16(1) << (val - 1)
		if seen[region]&mask != 0 {
			return false
		}
		seen[region] |= mask

		// Checking only the forward neighbors covers each pair once.
		for _, nb := range g.layout.Neighbors(pos) {
			if nb > pos && g.cells[nb] == val {
				return false
			}
		}
	}
	return true
}

// IsSolved reports whether the grid is complete and valid, i.e. every
// region contains each value 1..size exactly once and no 8-adjacent cells
// share a value.
func (g *Grid) IsSolved() bool {
	return g.IsComplete() && g.IsValid()
}

func (g *Grid) validatePosition(pos int) error {
	if pos < 0 || pos >= len(g.cells) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, len(g.cells))
	}
	return nil
}

func (g *Grid) validateValue(pos, val int) error {
	size := g.layout.RegionSize(pos)
	if val < 1 || val > size {
		return fmt.Errorf("%w: value %d at cell %d (region size %d)", ErrInvalidValue, val, pos, size)
	}
	return nil
}

func errValueInRegion(val, region int) error {
	return fmt.Errorf("%w: value %d already in region %d", ErrIllegalMove, val, region)
}

func errValueAdjacent(val, nb int) error {
	return fmt.Errorf("%w: value %d already on adjacent cell %d", ErrIllegalMove, val, nb)
}
