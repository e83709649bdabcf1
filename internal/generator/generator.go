// Package generator orchestrates Suguru puzzle creation: region
// partitioning, constrained grid filling, uniqueness-preserving clue
// carving and difficulty rating, with bounded retries at each stage.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/EmirMurat6606/SuguruMeister/internal/config"
	"github.com/EmirMurat6606/SuguruMeister/internal/grid"
	"github.com/EmirMurat6606/SuguruMeister/internal/partition"
	"github.com/EmirMurat6606/SuguruMeister/internal/solver"
)

const (
	// DefaultMaxAttempts caps full regenerations (new partition onward)
	// before generation is reported as failed.
	DefaultMaxAttempts = 120

	// carveRetries is how many removal orders the carver tries per filled
	// grid before a full regeneration.
	carveRetries = 3
)

var (
	ErrGenerationFailed      = errors.New("no valid value assignment for partition")
	ErrDifficultyUnreachable = errors.New("carving cannot reach requested difficulty")
	ErrUniquenessViolated    = errors.New("generated puzzle does not have exactly one solution")
	ErrAttemptsExhausted     = errors.New("generation attempt budget exhausted")
)

// Options configures puzzle generation.
type Options struct {
	Format     config.Format
	Difficulty config.Difficulty

	// Seed makes generation reproducible; 0 picks a time-based seed.
	Seed int64

	// MaxAttempts caps full regenerations; 0 means DefaultMaxAttempts.
	MaxAttempts int

	// Thresholds classify rating traces; zero value means defaults.
	Thresholds config.Thresholds

	// Logger receives per-attempt debug logging; nil means slog.Default.
	Logger *slog.Logger
}

// Generator produces Suguru puzzles for one (format, difficulty, seed)
// request. It is not safe for concurrent use; batch generation gives each
// worker its own Generator.
type Generator struct {
	opts Options
	rng  *rand.Rand
	log  *slog.Logger
}

// New validates the request and creates a generator. Unsupported formats
// and difficulties are rejected here, before any generation work.
func New(opts Options) (*Generator, error) {
	if !opts.Format.Supported() {
		return nil, fmt.Errorf("%w: %s (supported: %v)",
			config.ErrUnsupportedFormat, opts.Format, config.SupportedFormats)
	}
	if opts.Difficulty < config.Easy || opts.Difficulty > config.Hard {
		return nil, fmt.Errorf("%w: %s", config.ErrUnsupportedDifficulty, opts.Difficulty)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Thresholds == (config.Thresholds{}) {
		opts.Thresholds = config.DefaultThresholds()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Generator{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
		log:  opts.Logger.With("format", opts.Format.String(), "difficulty", opts.Difficulty.String()),
	}, nil
}

// Generate creates one puzzle. It retries the partition → fill → carve →
// rate pipeline with fresh randomness until a puzzle of the requested
// difficulty emerges, and fails with ErrAttemptsExhausted once the attempt
// budget is spent. A uniqueness violation on the finished puzzle indicates
// a solver bug and is returned immediately, never retried.
func (g *Generator) Generate() (*Puzzle, error) {
	f := g.opts.Format
	cfg := partition.Config{
		MinSize: config.MinRegionSize,
		MaxSize: config.MaxRegionSize,
		Weights: g.opts.Difficulty.SizeWeights(),
	}

	var lastErr error
	for attempt := 1; attempt <= g.opts.MaxAttempts; attempt++ {
		layout, err := partition.Generate(g.rng, f.Rows, f.Cols, cfg)
		if err != nil {
			lastErr = err
			g.log.Debug("partition failed", "attempt", attempt, "error", err)
			continue
		}

		solved, err := solver.NewRandomized(grid.New(layout), g.rng).Fill()
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrGenerationFailed, err)
			g.log.Debug("fill failed", "attempt", attempt, "error", err)
			continue
		}

		givens, err := g.carveWithRetries(solved)
		if err != nil {
			lastErr = err
			g.log.Debug("carve failed", "attempt", attempt, "error", err)
			continue
		}

		p := newPuzzle(solved, givens, g.opts.Difficulty)
		if err := solver.VerifyUnique(p.PlayableGrid()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUniquenessViolated, err)
		}
		g.log.Debug("puzzle generated", "attempt", attempt, "clues", p.ClueCount())
		return p, nil
	}

	return nil, fmt.Errorf("%w after %d attempts: %v", ErrAttemptsExhausted, g.opts.MaxAttempts, lastErr)
}

// carveWithRetries runs the carver with a few different removal orders
// before giving up on this fill.
func (g *Generator) carveWithRetries(solved *grid.Grid) ([]bool, error) {
	var lastErr error
	for retry := 0; retry < carveRetries; retry++ {
		givens, err := g.carve(solved, g.opts.Difficulty)
		if err == nil {
			return givens, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
