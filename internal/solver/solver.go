// Package solver implements the constraint search over Suguru grids: a
// backtracking filler with naked-single propagation and MRV cell ordering,
// a solution counter capped at two for uniqueness checks, and a
// technique-trace difficulty rater.
package solver

import (
	"errors"
	"math/bits"
	"math/rand"

	"github.com/EmirMurat6606/SuguruMeister/internal/grid"
)

var (
	ErrNoSolution        = errors.New("grid has no valid assignment")
	ErrMultipleSolutions = errors.New("grid has multiple solutions")
	ErrInvalidGrid       = errors.New("grid violates Suguru constraints")
)

// maxSearchNodes bounds candidate trials per search so a pathological
// partition aborts instead of spinning; the orchestrator retries with a
// fresh partition. Orders of magnitude above what the supported grid sizes
// ever need.
const maxSearchNodes = 2_000_000

// Solver drives backtracking search over a private clone of a grid.
type Solver struct {
	g   *grid.Grid
	rng *rand.Rand // nil means deterministic candidate order
}

// New creates a solver for the given grid. The grid is cloned; the caller's
// copy is never mutated.
func New(g *grid.Grid) *Solver {
	return &Solver{g: g.Clone()}
}

// NewRandomized creates a solver that shuffles candidate order with rng,
// for generating varied complete assignments.
func NewRandomized(g *grid.Grid, rng *rand.Rand) *Solver {
	return &Solver{g: g.Clone(), rng: rng}
}

// Grid exposes the solver's working grid.
func (s *Solver) Grid() *grid.Grid {
	return s.g
}

// Fill searches for one complete valid assignment and returns the solved
// grid, or ErrNoSolution if the partition admits none (or the search budget
// ran out).
func (s *Solver) Fill() (*grid.Grid, error) {
	if !s.g.IsValid() {
		return nil, ErrInvalidGrid
	}
	solved := false
	s.run(func() bool {
		solved = true
		return false
	})
	if !solved {
		return nil, ErrNoSolution
	}
	return s.g, nil
}

// CountSolutions counts completions of the current grid, stopping early
// once limit solutions are found.
func (s *Solver) CountSolutions(limit int) int {
	if !s.g.IsValid() {
		return 0
	}
	count := 0
	s.run(func() bool {
		count++
		return count < limit
	})
	return count
}

// Unique reports whether the grid admits exactly one completion.
func Unique(g *grid.Grid) bool {
	return VerifyUnique(g) == nil
}

// VerifyUnique checks that the grid has exactly one completion, returning
// ErrNoSolution or ErrMultipleSolutions otherwise.
func VerifyUnique(g *grid.Grid) error {
	switch New(g).CountSolutions(2) {
	case 0:
		return ErrNoSolution
	case 1:
		return nil
	default:
		return ErrMultipleSolutions
	}
}

// frame is one decision point of the iterative search: a cell, the
// candidates tried at it, and journal marks for rollback.
type frame struct {
	pos        int
	candidates []int
	next       int // index of the next candidate to try
	prop       int // journal mark before the propagation preceding this frame
	base       int // journal mark right after the frame opened
}

// run executes the backtracking search iteratively over an explicit frame
// stack. Each forward step propagates naked singles (recording placements
// in a journal for rollback), then opens a decision frame at the MRV cell.
// yield is invoked on every complete assignment; returning false stops the
// search with the assignment left in place.
func (s *Solver) run(yield func() bool) {
	var (
		journal []int
		stack   []frame
		nodes   int
	)

	undoTo := func(mark int) {
		for len(journal) > mark {
			p := journal[len(journal)-1]
			journal = journal[:len(journal)-1]
			s.g.Clear(p)
		}
	}

	failed := false
	for {
		if !failed {
			// Forward step: propagate, then open the next decision frame.
			prop := len(journal)
			switch {
			case !s.propagate(&journal):
				undoTo(prop)
				failed = true
			case s.g.IsComplete():
				if !yield() {
					return
				}
				undoTo(prop)
				failed = true
			default:
				pos, candidates := s.mrvCell()
				if len(candidates) == 0 {
					undoTo(prop)
					failed = true
					break
				}
				if s.rng != nil {
					s.rng.Shuffle(len(candidates), func(i, j int) {
						candidates[i], candidates[j] = candidates[j], candidates[i]
					})
				}
				stack = append(stack, frame{pos: pos, candidates: candidates, prop: prop, base: len(journal)})
			}
		}

		if failed {
			// Unwind exhausted frames, undoing their propagation too.
			for len(stack) > 0 && stack[len(stack)-1].next >= len(stack[len(stack)-1].candidates) {
				undoTo(stack[len(stack)-1].prop)
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return
			}
		}

		nodes++
		if nodes > maxSearchNodes {
			return
		}

		// Try the next candidate of the deepest viable frame.
		f := &stack[len(stack)-1]
		undoTo(f.base)
		val := f.candidates[f.next]
		f.next++
		s.g.SetForce(f.pos, val)
		journal = append(journal, f.pos)
		failed = false
	}
}

// propagate repeatedly fills cells whose candidate set has exactly one
// value, recording placements in the journal. Returns false when some empty
// cell has no candidates left.
func (s *Solver) propagate(journal *[]int) bool {
	for {
		changed := false
		for pos, n := 0, s.g.CellCount(); pos < n; pos++ {
			if s.g.Get(pos) != grid.EmptyCell {
				continue
			}
			mask := s.g.CandidatesMask(pos)
			if mask == 0 {
				return false
			}
			if bits.OnesCount16(mask) == 1 {
				s.g.SetForce(pos, bits.TrailingZeros16(mask)+1)
				*journal = append(*journal, pos)
				changed = true
			}
		}
		if !changed {
			return true
		}
	}
}

// mrvCell returns the empty cell with the fewest remaining candidates and
// its candidate values. Ties break toward the lower row-major position.
// Returns (-1, nil) when the grid has no empty cells.
func (s *Solver) mrvCell() (int, []int) {
	best := -1
	bestMask := uint16(0)
	bestCount := 0

	for pos, n := 0, s.g.CellCount(); pos < n; pos++ {
		if s.g.Get(pos) != grid.EmptyCell {
			continue
		}
		mask := s.g.CandidatesMask(pos)
		count := bits.OnesCount16(mask)
		if best == -1 || count < bestCount {
			best, bestMask, bestCount = pos, mask, count
			// After propagation no single-candidate cells remain, so two
			// is the best achievable; zero means an immediate dead end.
			if count <= 1 {
				break
			}
		}
	}
	if best == -1 {
		return -1, nil
	}
	return best, maskValues(bestMask)
}

// maskValues expands a candidate bitmask into a value slice.
func maskValues(mask uint16) []int {
	values := make([]int, 0, bits.OnesCount16(mask))
	for mask != 0 {
		v := bits.TrailingZeros16(mask) + 1
		values = append(values, v)
		mask &^= uint16(1) << (v - 1)
	}
	return values
}
