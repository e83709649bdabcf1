package solver

import (
	"math/bits"

	"github.com/EmirMurat6606/SuguruMeister/internal/config"
	"github.com/EmirMurat6606/SuguruMeister/internal/grid"
)

// Technique weights. A guess grows more expensive the deeper the search is
// nested when it happens.
const (
	costNakedSingle = 1
	costElimination = 2
	costGuessBase   = 8
	costGuessDepth  = 4
)

// Rating summarizes the deduction work needed to solve a puzzle: the
// cumulative weighted technique cost, the number of brute-force guesses,
// and the deepest guess nesting encountered on the successful path.
type Rating struct {
	Cost     int
	Guesses  int
	MaxDepth int
}

// Rate simulates solving the grid with ordered deduction techniques —
// naked singles first, then region elimination, then brute-force guessing —
// and accumulates the weighted cost of each application. The caller's grid
// is not mutated.
func Rate(g *grid.Grid) Rating {
	var r Rating
	trace(g.Clone(), &r, 1)
	return r
}

// Classify maps a rating to a difficulty tier: easy puzzles need no
// guessing at all, medium ones a few shallow guesses, hard ones deeper
// search.
func Classify(r Rating, t config.Thresholds) config.Difficulty {
	switch {
	case r.Guesses == 0:
		return config.Easy
	case r.Guesses <= t.MediumMaxGuesses && r.MaxDepth <= t.MediumMaxDepth:
		return config.Medium
	default:
		return config.Hard
	}
}

// trace solves g in place using the cheapest applicable technique at each
// step, falling back to branching on the MRV cell. Reports whether a
// complete assignment was reached from this state.
func trace(g *grid.Grid, r *Rating, depth int) bool {
	for g.EmptyCount() > 0 {
		if pos, val, ok := nakedSingle(g); ok {
			g.SetForce(pos, val)
			r.Cost += costNakedSingle
			continue
		}
		if pos, val, ok := regionElimination(g); ok {
			g.SetForce(pos, val)
			r.Cost += costElimination
			continue
		}

		// No deduction applies; branch.
		pos, candidates := cheapestCell(g)
		if len(candidates) == 0 {
			return false
		}
		r.Guesses++
		r.Cost += costGuessBase + costGuessDepth*depth
		if depth > r.MaxDepth {
			r.MaxDepth = depth
		}
		for _, val := range candidates {
			clone := g.Clone()
			clone.SetForce(pos, val)
			if trace(clone, r, depth+1) {
				return true
			}
		}
		return false
	}
	return true
}

// nakedSingle returns the first cell (row-major) whose candidate set has
// exactly one value.
func nakedSingle(g *grid.Grid) (pos, val int, ok bool) {
	for pos, n := 0, g.CellCount(); pos < n; pos++ {
		if g.Get(pos) != grid.EmptyCell {
			continue
		}
		mask := g.CandidatesMask(pos)
		if bits.OnesCount16(mask) == 1 {
			return pos, bits.TrailingZeros16(mask) + 1, true
		}
	}
	return 0, 0, false
}

// regionElimination finds a value that fits in exactly one cell of its
// region once region mates and adjacent cells are exhausted.
func regionElimination(g *grid.Grid) (pos, val int, ok bool) {
	layout := g.Layout()
	for r := range layout.Regions {
		cells := layout.Regions[r]
		for v := 1; v <= len(cells); v++ {
			mask := uint16(1) << (v - 1)
			spot := -1
			count := 0
			for _, p := range cells {
				if g.Get(p) != grid.EmptyCell {
					continue
				}
				if g.CandidatesMask(p)&mask != 0 {
					spot = p
					count++
					if count > 1 {
						break
					}
				}
			}
			if count == 1 {
				return spot, v, true
			}
		}
	}
	return 0, 0, false
}

// cheapestCell is the MRV selection used for rating branches; ties break
// toward the lower row-major position.
func cheapestCell(g *grid.Grid) (int, []int) {
	best := -1
	bestMask := uint16(0)
	bestCount := 0
	for pos, n := 0, g.CellCount(); pos < n; pos++ {
		if g.Get(pos) != grid.EmptyCell {
			continue
		}
		mask := g.CandidatesMask(pos)
		count := bits.OnesCount16(mask)
		if best == -1 || count < bestCount {
			best, bestMask, bestCount = pos, mask, count
			if count == 0 {
				break
			}
		}
	}
	if best == -1 {
		return -1, nil
	}
	return best, maskValues(bestMask)
}
