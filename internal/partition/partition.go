// Package partition implements randomized region partitioning for Suguru
// grids. It divides a rows×cols grid into orthogonally connected regions
// whose sizes follow a weighted distribution, by growing regions from
// random seed cells. Growth is fill-aware: a region is committed only when
// its cells can take the values 1..size without clashing with the values
// already placed around it, so every returned layout admits at least one
// complete solution. The witness values are discarded; the solver produces
// the actual solution.
package partition

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/EmirMurat6606/SuguruMeister/internal/grid"
)

// maxRestarts bounds partition attempts before giving up. Restarts are
// cheap; exceeding the budget means the configuration itself is hostile
// (e.g. a size range the grid cannot be tiled with).
const maxRestarts = 200

// growRetries bounds how many shapes are tried for one region seed before
// falling back to merging into a neighbor.
const growRetries = 8

// ErrPartitionFailed reports that no valid region layout was found within
// the restart budget.
var ErrPartitionFailed = errors.New("no valid region layout found")

// Config controls the size distribution of generated regions.
type Config struct {
	// MinSize and MaxSize bound region sizes. A region that gets stuck
	// below MinSize is merged into a neighbor or the attempt is restarted.
	MinSize int
	MaxSize int

	// Weights holds the relative draw weight of each target size;
	// Weights[i] belongs to size MinSize+i. Must have MaxSize-MinSize+1
	// entries with a positive total.
	Weights []int
}

func (c Config) validate() error {
	if c.MinSize < 1 || c.MaxSize > 9 || c.MinSize > c.MaxSize {
		return fmt.Errorf("partition: invalid size range [%d, %d]", c.MinSize, c.MaxSize)
	}
	if len(c.Weights) != c.MaxSize-c.MinSize+1 {
		return fmt.Errorf("partition: %d weights for size range [%d, %d]", len(c.Weights), c.MinSize, c.MaxSize)
	}
	total := 0
	for _, w := range c.Weights {
		if w < 0 {
			return fmt.Errorf("partition: negative weight %d", w)
		}
		total += w
	}
	if total == 0 {
		return fmt.Errorf("partition: weights sum to zero")
	}
	return nil
}

// Generate partitions a rows×cols grid into connected regions with sizes in
// the configured range, covering every cell exactly once. Every returned
// layout is solvable: a witness assignment is built during growth, so the
// puzzle constraints (region values 1..size, no equal 8-adjacent values)
// are satisfiable. All randomness is drawn from rng, so results are
// reproducible for a fixed seed.
func Generate(rng *rand.Rand, rows, cols int, cfg Config) (*grid.Layout, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxRestarts; attempt++ {
		regionMap, ok := tryGenerate(rng, rows, cols, cfg)
		if !ok {
			continue
		}
		layout, err := grid.NewLayout(rows, cols, regionMap)
		if err != nil {
			// The growth procedure produced an invalid map; treat it like
			// any other failed attempt.
			continue
		}
		return layout, nil
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrPartitionFailed, maxRestarts)
}

// tryGenerate runs one partition attempt: repeatedly seed a region at a
// random unassigned cell, grow it by random orthogonal expansion toward its
// drawn target size, and commit it once its cells accept a conflict-free
// value assignment. A shape that stays below MinSize or cannot take values
// is regrown a few times; a seed where no shape works at all is folded into
// an adjacent region, whose values are then re-solved. The attempt is
// abandoned when even merging fails.
func tryGenerate(rng *rand.Rand, rows, cols int, cfg Config) ([]int, bool) {
	total := rows * cols
	assigned := make([]int, total)
	for i := range assigned {
		assigned[i] = -1
	}
	values := make([]int, total) // witness fill, 0 = unvalued

	seedOrder := rng.Perm(total)
	seedIdx := 0
	unassigned := total

	var sizes []int // registered region sizes, indexed by region id

	for unassigned > 0 {
		for assigned[seedOrder[seedIdx]] != -1 {
			seedIdx++
		}
		seed := seedOrder[seedIdx]
		id := len(sizes)

		committed := false
		for retry := 0; retry < growRetries; retry++ {
			target := drawSize(rng, cfg, unassigned)
			cells := grow(rng, assigned, rows, cols, seed, id, target)
			if len(cells) >= cfg.MinSize && assignValues(rng, values, rows, cols, cells) {
				sizes = append(sizes, len(cells))
				unassigned -= len(cells)
				committed = true
				break
			}
			// Undersized or unvaluable shape; regrow from the same seed.
			for _, c := range cells {
				assigned[c] = -1
			}
		}
		if committed {
			continue
		}

		// No standalone region works at this seed. Regrow minimally and
		// fold the cells into an adjacent region, re-solving the combined
		// region's values.
		cells := grow(rng, assigned, rows, cols, seed, id, cfg.MinSize)
		if !mergeStuck(rng, assigned, values, sizes, cells, rows, cols, cfg.MaxSize) {
			return nil, false
		}
		unassigned -= len(cells)
	}
	return assigned, true
}

// drawSize draws a target size from the weight table, redrawing while the
// target exceeds the remaining unassigned cell count.
func drawSize(rng *rand.Rand, cfg Config, remaining int) int {
	totalWeight := 0
	for _, w := range cfg.Weights {
		totalWeight += w
	}

	for draw := 0; draw < 64; draw++ {
		t := rng.Intn(totalWeight)
		for i, w := range cfg.Weights {
			if t < w {
				if size := cfg.MinSize + i; size <= remaining {
					return size
				}
				break
			}
			t -= w
		}
	}
	// Degenerate weight table for this remainder; settle for what fits.
	if remaining < cfg.MinSize {
		return remaining
	}
	return cfg.MinSize
}

// grow expands a region from seed by repeated random orthogonal steps,
// assigning cells to region id as it goes. When the current growth point
// has no free neighbor, growth continues from another cell of the region;
// when no cell has a free neighbor, the region is complete at its current
// size. Returns the grown cells.
func grow(rng *rand.Rand, assigned []int, rows, cols, seed, id, target int) []int {
	cells := []int{seed}
	assigned[seed] = id
	cur := seed

	for len(cells) < target {
		next := freeNeighbor(rng, assigned, rows, cols, cur)
		if next == -1 {
			// Current growth point is walled in; fall back to the rest of
			// the region.
			for _, c := range cells {
				if next = freeNeighbor(rng, assigned, rows, cols, c); next != -1 {
					break
				}
			}
			if next == -1 {
				break
			}
		}
		assigned[next] = id
		cells = append(cells, next)
		cur = next
	}
	return cells
}

// freeNeighbor returns a uniformly random unassigned orthogonal neighbor of
// pos, or -1 if there is none.
func freeNeighbor(rng *rand.Rand, assigned []int, rows, cols, pos int) int {
	var buf [4]int
	n := 0
	row, col := pos/cols, pos%cols
	if row > 0 && assigned[pos-cols] == -1 {
		buf[n] = pos - cols
		n++
	}
	if row < rows-1 && assigned[pos+cols] == -1 {
		buf[n] = pos + cols
		n++
	}
	if col > 0 && assigned[pos-1] == -1 {
		buf[n] = pos - 1
		n++
	}
	if col < cols-1 && assigned[pos+1] == -1 {
		buf[n] = pos + 1
		n++
	}
	if n == 0 {
		return -1
	}
	return buf[rng.Intn(n)]
}

// assignValues writes a permutation of 1..len(cells) into the region's
// cells such that no cell equals an 8-adjacent value placed earlier.
// Reports failure with the cells left unvalued. Cell and candidate order
// are shuffled so repeated attempts explore different assignments.
func assignValues(rng *rand.Rand, values []int, rows, cols int, cells []int) bool {
	order := make([]int, len(cells))
	copy(order, cells)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	var used uint16
	var place func(i int) bool
	place = func(i int) bool {
		if i == len(order) {
			return true
		}
		pos := order[i]
		for _, vi := range rng.Perm(len(order)) {
			bit := uint16(1) << vi
			v := vi + 1
			if used&bit != 0 || valueClashes(values, rows, cols, pos, v) {
				continue
			}
			values[pos] = v
			used |= bit
			if place(i + 1) {
				return true
			}
			values[pos] = 0
			used &^= bit
		}
		return false
	}
	return place(0)
}

// valueClashes reports whether an 8-adjacent cell of pos already holds v.
func valueClashes(values []int, rows, cols, pos, v int) bool {
	row, col := pos/cols, pos%cols
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			if values[nr*cols+nc] == v {
				return true
			}
		}
	}
	return false
}

// mergeStuck relabels the cells of an unregistered stuck region to an
// adjacent registered region, provided the merge keeps that region within
// maxSize and the combined region still accepts a conflict-free value
// assignment. Reports whether a merge happened.
func mergeStuck(rng *rand.Rand, assigned, values, sizes, cells []int, rows, cols, maxSize int) bool {
	for _, r := range adjacentRegions(assigned, sizes, cells, rows, cols) {
		if sizes[r]+len(cells) > maxSize {
			continue
		}

		combined := append([]int(nil), cells...)
		for pos, a := range assigned {
			if a == r {
				combined = append(combined, pos)
			}
		}
		saved := make([]int, len(combined))
		for i, pos := range combined {
			saved[i] = values[pos]
			values[pos] = 0
		}

		if assignValues(rng, values, rows, cols, combined) {
			for _, c := range cells {
				assigned[c] = r
			}
			sizes[r] += len(cells)
			return true
		}
		for i, pos := range combined {
			values[pos] = saved[i]
		}
	}
	return false
}

// adjacentRegions lists the registered regions orthogonally adjacent to the
// stuck cells, each once.
func adjacentRegions(assigned, sizes, cells []int, rows, cols int) []int {
	var out []int
	add := func(nb int) {
		r := assigned[nb]
		if r < 0 || r >= len(sizes) {
			return
		}
		for _, seen := range out {
			if seen == r {
				return
			}
		}
		out = append(out, r)
	}
	for _, pos := range cells {
		row, col := pos/cols, pos%cols
		if row > 0 {
			add(pos - cols)
		}
		if row < rows-1 {
			add(pos + cols)
		}
		if col > 0 {
			add(pos - 1)
		}
		if col < cols-1 {
			add(pos + 1)
		}
	}
	return out
}
