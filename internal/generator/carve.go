package generator

import (
	"fmt"

	"github.com/EmirMurat6606/SuguruMeister/internal/config"
	"github.com/EmirMurat6606/SuguruMeister/internal/grid"
	"github.com/EmirMurat6606/SuguruMeister/internal/solver"
)

// carve removes values from a solved grid in a randomized order, keeping a
// removal only if the puzzle still has exactly one solution, until the
// tier's clue target is reached (or no removable cell remains). Each tier
// additionally constrains the rating of the result:
//
//   - easy skips any removal that makes the puzzle require guessing, so the
//     result is always rated easy;
//   - medium refuses removals that rate hard, then carves past its target
//     while the puzzle still rates easy;
//   - hard carves maximally and demands a hard rating.
//
// Returns the given mask, or ErrDifficultyUnreachable when this partition
// cannot produce a puzzle of the requested tier.
func (g *Generator) carve(solved *grid.Grid, difficulty config.Difficulty) ([]bool, error) {
	work := solved.Clone()
	order := g.rng.Perm(work.CellCount())
	target := difficulty.ClueTarget(g.opts.Format)

	for _, pos := range order {
		if target > 0 && work.ClueCount() <= target {
			break
		}
		val := work.Get(pos)
		work.Clear(pos)
		if !solver.Unique(work) {
			work.SetForce(pos, val)
			continue
		}
		switch difficulty {
		case config.Easy:
			if r := solver.Rate(work); r.Guesses > 0 {
				work.SetForce(pos, val)
			}
		case config.Medium:
			// Never overshoot: a removal that rates hard is skipped so the
			// puzzle walks through the medium band instead of past it.
			if solver.Classify(solver.Rate(work), g.opts.Thresholds) == config.Hard {
				work.SetForce(pos, val)
			}
		}
	}

	switch difficulty {
	case config.Medium:
		if err := g.carveToMedium(work, order); err != nil {
			return nil, err
		}
	case config.Hard:
		rating := solver.Rate(work)
		if tier := solver.Classify(rating, g.opts.Thresholds); tier != config.Hard {
			return nil, fmt.Errorf("%w: maximal carve rated %s (guesses=%d depth=%d)",
				ErrDifficultyUnreachable, tier, rating.Guesses, rating.MaxDepth)
		}
	}

	givens := make([]bool, work.CellCount())
	for pos := range givens {
		givens[pos] = work.Get(pos) != grid.EmptyCell
	}
	return givens, nil
}

// carveToMedium continues removing clues while the puzzle still rates easy,
// skipping removals that would break uniqueness or overshoot to hard.
func (g *Generator) carveToMedium(work *grid.Grid, order []int) error {
	rating := solver.Rate(work)
	tier := solver.Classify(rating, g.opts.Thresholds)

	for _, pos := range order {
		if tier != config.Easy {
			break
		}
		if work.Get(pos) == grid.EmptyCell {
			continue
		}
		val := work.Get(pos)
		work.Clear(pos)
		if !solver.Unique(work) {
			work.SetForce(pos, val)
			continue
		}
		r := solver.Rate(work)
		t := solver.Classify(r, g.opts.Thresholds)
		if t == config.Hard {
			// One clue fewer jumps past medium; keep this clue and look
			// for a gentler removal elsewhere.
			work.SetForce(pos, val)
			continue
		}
		rating, tier = r, t
	}

	if tier != config.Medium {
		return fmt.Errorf("%w: carve rated %s (guesses=%d depth=%d)",
			ErrDifficultyUnreachable, tier, rating.Guesses, rating.MaxDepth)
	}
	return nil
}
