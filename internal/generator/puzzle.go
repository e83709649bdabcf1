package generator

import (
	"strings"

	"github.com/EmirMurat6606/SuguruMeister/internal/config"
	"github.com/EmirMurat6606/SuguruMeister/internal/grid"
)

// Puzzle is the immutable product of one generation run: a solved grid, a
// per-cell given mask describing the playable puzzle, and the difficulty
// label the puzzle was generated for. Renderers consume Puzzles; nothing
// mutates them after creation.
type Puzzle struct {
	layout     *grid.Layout
	solution   []int
	givens     []bool
	difficulty config.Difficulty
}

// newPuzzle snapshots the solved grid and given mask. The slices are copied
// so later mutation of the generation scratch state cannot alias into the
// Puzzle.
func newPuzzle(solved *grid.Grid, givens []bool, difficulty config.Difficulty) *Puzzle {
	layout := solved.Layout()
	p := &Puzzle{
		layout:     layout,
		solution:   make([]int, layout.CellCount()),
		givens:     make([]bool, layout.CellCount()),
		difficulty: difficulty,
	}
	for pos := range p.solution {
		p.solution[pos] = solved.Get(pos)
	}
	copy(p.givens, givens)
	return p
}

// Rows returns the grid's row count.
func (p *Puzzle) Rows() int { return p.layout.Rows }

// Cols returns the grid's column count.
func (p *Puzzle) Cols() int { return p.layout.Cols }

// CellCount returns the total number of cells.
func (p *Puzzle) CellCount() int { return p.layout.CellCount() }

// Layout returns the puzzle's region layout (immutable).
func (p *Puzzle) Layout() *grid.Layout { return p.layout }

// Region returns the region index of a cell position.
func (p *Puzzle) Region(pos int) int { return p.layout.Region(pos) }

// Solution returns the solved value at a cell position.
func (p *Puzzle) Solution(pos int) int { return p.solution[pos] }

// Given reports whether the cell's value is revealed in the playable
// puzzle.
func (p *Puzzle) Given(pos int) bool { return p.givens[pos] }

// Value returns the playable-grid value at a position: the solution value
// for given cells, grid.EmptyCell for blanks.
func (p *Puzzle) Value(pos int) int {
	if p.givens[pos] {
		return p.solution[pos]
	}
	return grid.EmptyCell
}

// ClueCount returns the number of given cells.
func (p *Puzzle) ClueCount() int {
	count := 0
	for _, g := range p.givens {
		if g {
			count++
		}
	}
	return count
}

// Difficulty returns the puzzle's difficulty label.
func (p *Puzzle) Difficulty() config.Difficulty { return p.difficulty }

// PlayableGrid reconstructs a Grid holding only the given values, for
// solvers and verifiers.
func (p *Puzzle) PlayableGrid() *grid.Grid {
	g := grid.New(p.layout)
	for pos, v := range p.solution {
		if p.givens[pos] {
			g.SetForce(pos, v)
		}
	}
	return g
}

// SolutionGrid reconstructs the full solved Grid.
func (p *Puzzle) SolutionGrid() *grid.Grid {
	g := grid.New(p.layout)
	for pos, v := range p.solution {
		g.SetForce(pos, v)
	}
	return g
}

// Format renders the playable puzzle, one grid row per line, blanks as '.'.
func (p *Puzzle) Format() string {
	return p.format(func(pos int) int { return p.Value(pos) })
}

// FormatSolution renders the solved grid.
func (p *Puzzle) FormatSolution() string {
	return p.format(func(pos int) int { return p.solution[pos] })
}

// FormatRegions renders the region partition, one letter per region.
func (p *Puzzle) FormatRegions() string {
	var sb strings.Builder
	for row := 0; row < p.layout.Rows; row++ {
		for col := 0; col < p.layout.Cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('a' + byte(p.layout.Region(p.layout.Pos(row, col))%26))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p *Puzzle) format(value func(pos int) int) string {
	var sb strings.Builder
	for row := 0; row < p.layout.Rows; row++ {
		for col := 0; col < p.layout.Cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			v := value(p.layout.Pos(row, col))
			if v == grid.EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(v))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
