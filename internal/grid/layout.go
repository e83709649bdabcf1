package grid

import "fmt"

// maxRegionSize bounds region sizes (and therefore cell values) across all
// layouts. Partition configs may use a tighter range.
const maxRegionSize = 9

// Layout describes the region partition of a Suguru grid: which region each
// cell belongs to, plus precomputed neighbor tables for the 4-adjacency used
// by region connectivity and the 8-adjacency used by the value constraint.
//
// Layout is immutable after construction — it is safe to share the same
// pointer across Grid clones and concurrently generated puzzles.
type Layout struct {
	Rows int
	Cols int

	// PosToRegion maps a cell position (row*Cols + col) to its region index.
	PosToRegion []int

	// Regions holds, per region index, the cell positions belonging to it in
	// ascending order.
	Regions [][]int

	// neighbor tables, built once at construction
	orth [][]int // 4-adjacent in-bounds neighbors per position
	adj  [][]int // 8-adjacent in-bounds neighbors per position
}

// NewLayout builds a Layout from an arbitrary region map and validates it:
// region indices must be 0..R-1 with no gaps, every region must have
// between 1 and 9 cells, and every region must be orthogonally connected.
func NewLayout(rows, cols int, posToRegion []int) (*Layout, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("layout: invalid dimensions %dx%d", rows, cols)
	}
	if len(posToRegion) != rows*cols {
		return nil, fmt.Errorf("layout: region map has %d entries, expected %d", len(posToRegion), rows*cols)
	}

	l := &Layout{
		Rows:        rows,
		Cols:        cols,
		PosToRegion: make([]int, len(posToRegion)),
	}
	copy(l.PosToRegion, posToRegion)

	if err := l.buildRegions(); err != nil {
		return nil, err
	}
	l.buildNeighbors()
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// CellCount returns the total number of cells.
func (l *Layout) CellCount() int {
	return l.Rows * l.Cols
}

// Pos transforms a row and column into a linear position.
// Returns -1 if row and/or col are out of bounds.
func (l *Layout) Pos(row, col int) int {
	if row < 0 || row >= l.Rows || col < 0 || col >= l.Cols {
		return -1
	}
	return row*l.Cols + col
}

// RowCol is the inverse of Pos.
func (l *Layout) RowCol(pos int) (row, col int) {
	return pos / l.Cols, pos % l.Cols
}

// Region returns the region index of a cell position.
func (l *Layout) Region(pos int) int {
	return l.PosToRegion[pos]
}

// RegionSize returns the size of the region that pos belongs to. Values in
// that region run 1..RegionSize(pos).
func (l *Layout) RegionSize(pos int) int {
	return len(l.Regions[l.PosToRegion[pos]])
}

// RegionCells returns the cell positions belonging to the given region.
// The returned slice must not be modified.
func (l *Layout) RegionCells(region int) []int {
	return l.Regions[region]
}

// Neighbors returns the in-bounds 8-adjacent neighbors of pos — the cells
// that may not share pos's value. The returned slice must not be modified.
func (l *Layout) Neighbors(pos int) []int {
	return l.adj[pos]
}

// OrthNeighbors returns the in-bounds 4-adjacent neighbors of pos.
// The returned slice must not be modified.
func (l *Layout) OrthNeighbors(pos int) []int {
	return l.orth[pos]
}

// buildRegions fills the Regions inverse table and checks that region
// indices are a gapless 0..R-1 range with 1..maxRegionSize cells each.
func (l *Layout) buildRegions() error {
	regionCount := 0
	for pos, r := range l.PosToRegion {
		if r < 0 {
			return fmt.Errorf("layout: cell %d has negative region %d", pos, r)
		}
		if r+1 > regionCount {
			regionCount = r + 1
		}
	}

	l.Regions = make([][]int, regionCount)
	for pos, r := range l.PosToRegion {
		l.Regions[r] = append(l.Regions[r], pos)
	}

	for r, cells := range l.Regions {
		if len(cells) == 0 {
			return fmt.Errorf("layout: region %d has no cells", r)
		}
		if len(cells) > maxRegionSize {
			return fmt.Errorf("layout: region %d has %d cells, maximum is %d", r, len(cells), maxRegionSize)
		}
	}
	return nil
}

// buildNeighbors precomputes the 4- and 8-adjacency tables.
func (l *Layout) buildNeighbors() {
	total := l.CellCount()
	l.orth = make([][]int, total)
	l.adj = make([][]int, total)

	for pos := 0; pos < total; pos++ {
		row, col := l.RowCol(pos)
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				nb := l.Pos(row+dr, col+dc)
				if nb < 0 {
					continue
				}
				l.adj[pos] = append(l.adj[pos], nb)
				if dr == 0 || dc == 0 {
					l.orth[pos] = append(l.orth[pos], nb)
				}
			}
		}
	}
}

// validate checks that every region is orthogonally connected.
func (l *Layout) validate() error {
	for r := range l.Regions {
		if err := l.validateConnected(r); err != nil {
			return err
		}
	}
	return nil
}

// validateConnected performs a BFS/flood-fill to verify that all cells of
// region r are reachable from each other via orthogonal adjacency.
func (l *Layout) validateConnected(region int) error {
	cells := l.Regions[region]

	inRegion := make(map[int]bool, len(cells))
	for _, pos := range cells {
		inRegion[pos] = true
	}

	visited := make(map[int]bool, len(cells))
	queue := []int{cells[0]}
	visited[cells[0]] = true

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		for _, nb := range l.orth[pos] {
			if inRegion[nb] && !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	if len(visited) != len(cells) {
		return fmt.Errorf("layout: region %d is not connected (%d of %d cells reachable from cell %d)",
			region, len(visited), len(cells), cells[0])
	}
	return nil
}
