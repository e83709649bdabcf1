// Package config holds the immutable tuning values of the generator:
// supported puzzle formats, difficulty tiers with their region-size
// distributions and clue-density targets, and the thresholds that map a
// rating trace to a tier. Components receive these values explicitly so
// that batch generation stays deterministic and parallel-safe.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnsupportedFormat     = errors.New("unsupported puzzle format")
	ErrUnsupportedDifficulty = errors.New("unsupported difficulty")
)

// Format is a grid size expressed as rows × columns.
type Format struct {
	Rows int
	Cols int
}

// SupportedFormats lists the puzzle sizes the generator accepts, modeled on
// the Denksport Tectonic booklet formats.
var SupportedFormats = []Format{
	{Rows: 5, Cols: 4},
	{Rows: 5, Cols: 9},
	{Rows: 11, Cols: 4},
	{Rows: 11, Cols: 9},
}

// String returns the canonical "RxC" spelling, e.g. "5x4".
func (f Format) String() string {
	return fmt.Sprintf("%dx%d", f.Rows, f.Cols)
}

// Cells returns the total number of cells in the grid.
func (f Format) Cells() int {
	return f.Rows * f.Cols
}

// Supported reports whether f is one of the SupportedFormats.
func (f Format) Supported() bool {
	for _, s := range SupportedFormats {
		if f == s {
			return true
		}
	}
	return false
}

// ParseFormat parses a "RxC" string and checks it against SupportedFormats.
func ParseFormat(s string) (Format, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "x", 2)
	if len(parts) != 2 {
		return Format{}, fmt.Errorf("%w: %q (expected form like %q)", ErrUnsupportedFormat, s, "5x4")
	}
	rows, err := strconv.Atoi(parts[0])
	if err != nil {
		return Format{}, fmt.Errorf("%w: %q: invalid row count", ErrUnsupportedFormat, s)
	}
	cols, err := strconv.Atoi(parts[1])
	if err != nil {
		return Format{}, fmt.Errorf("%w: %q: invalid column count", ErrUnsupportedFormat, s)
	}
	f := Format{Rows: rows, Cols: cols}
	if !f.Supported() {
		return Format{}, fmt.Errorf("%w: %s (supported: %v)", ErrUnsupportedFormat, f, SupportedFormats)
	}
	return f, nil
}

// Difficulty is a requested puzzle tier.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty parses an "easy"/"medium"/"hard" string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("%w: %q (supported: easy, medium, hard)", ErrUnsupportedDifficulty, s)
	}
}

// MinRegionSize and MaxRegionSize bound the region sizes produced by the
// partitioner. Values in a region run 1..size, so MaxRegionSize also bounds
// the value range.
const (
	MinRegionSize = 1
	MaxRegionSize = 5
)

// SizeWeights returns the relative weights used to draw region target sizes
// MinRegionSize..MaxRegionSize during partitioning. Harder tiers favor
// larger regions, which admit sparser clue sets.
func (d Difficulty) SizeWeights() []int {
	switch d {
	case Medium:
		return []int{5, 15, 20, 20, 40}
	case Hard:
		return []int{5, 10, 15, 20, 50}
	default:
		return []int{5, 20, 20, 30, 25}
	}
}

// Clue-density fractions per tier. Hard carves as far as uniqueness allows
// rather than stopping at a target.
const (
	easyClueFraction   = 0.45
	mediumClueFraction = 0.34
)

// ClueTarget returns the number of given cells carving aims to leave for
// this tier and format. A zero target means "carve maximally".
func (d Difficulty) ClueTarget(f Format) int {
	n := float64(f.Cells())
	switch d {
	case Easy:
		return int(n*easyClueFraction + 0.5)
	case Medium:
		return int(n*mediumClueFraction + 0.5)
	default:
		return 0
	}
}

// Thresholds classify a solving trace into a difficulty tier. A puzzle that
// needs no guessing at all is easy; one solvable with a few shallow guesses
// is medium; anything needing deeper search is hard.
type Thresholds struct {
	// MediumMaxGuesses is the largest guess count still rated medium.
	MediumMaxGuesses int
	// MediumMaxDepth is the deepest guess nesting still rated medium.
	MediumMaxDepth int
}

// DefaultThresholds returns the tier boundaries used when the caller does
// not supply its own.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MediumMaxGuesses: 3,
		MediumMaxDepth:   2,
	}
}
