package partition

import (
	"math/rand"
	"testing"

	"github.com/EmirMurat6606/SuguruMeister/internal/config"
	"github.com/EmirMurat6606/SuguruMeister/internal/grid"
	"github.com/EmirMurat6606/SuguruMeister/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() Config {
	return Config{
		MinSize: config.MinRegionSize,
		MaxSize: config.MaxRegionSize,
		Weights: config.Easy.SizeWeights(),
	}
}

func TestGenerateCoversSupportedFormats(t *testing.T) {
	for _, f := range config.SupportedFormats {
		t.Run(f.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			for i := 0; i < 10; i++ {
				layout, err := Generate(rng, f.Rows, f.Cols, defaultConfig())
				require.NoError(t, err)

				// Every cell belongs to exactly one region; NewLayout has
				// already verified connectivity and coverage, so check the
				// size range here.
				total := 0
				for r := range layout.Regions {
					size := len(layout.Regions[r])
					assert.GreaterOrEqual(t, size, config.MinRegionSize)
					assert.LessOrEqual(t, size, config.MaxRegionSize)
					total += size
				}
				assert.Equal(t, f.Cells(), total)
			}
		})
	}
}

// Partitions must not only be structurally valid but solvable: every region
// needs a 1 (and a 2, and so on), and those placements must avoid each other
// across 8-adjacency. Dense small-region layouts easily make that impossible
// on the larger formats, so fill-aware growth has to hold for every format
// and every tier's size distribution.
func TestGenerateLayoutsAdmitSolutions(t *testing.T) {
	for _, f := range config.SupportedFormats {
		t.Run(f.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(5))
			for _, d := range []config.Difficulty{config.Easy, config.Medium, config.Hard} {
				cfg := Config{
					MinSize: config.MinRegionSize,
					MaxSize: config.MaxRegionSize,
					Weights: d.SizeWeights(),
				}
				for i := 0; i < 5; i++ {
					layout, err := Generate(rng, f.Rows, f.Cols, cfg)
					require.NoError(t, err)
					_, err = solver.New(grid.New(layout)).Fill()
					require.NoError(t, err, "%s %s layout %d admits no solution", f, d, i)
				}
			}
		})
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a, err := Generate(rand.New(rand.NewSource(7)), 5, 4, defaultConfig())
	require.NoError(t, err)
	b, err := Generate(rand.New(rand.NewSource(7)), 5, 4, defaultConfig())
	require.NoError(t, err)

	assert.Equal(t, a.PosToRegion, b.PosToRegion)

	c, err := Generate(rand.New(rand.NewSource(8)), 5, 4, defaultConfig())
	require.NoError(t, err)
	assert.NotEqual(t, a.PosToRegion, c.PosToRegion,
		"different seeds should virtually always give different partitions")
}

func TestGenerateHonorsTightSizeRange(t *testing.T) {
	cfg := Config{MinSize: 2, MaxSize: 4, Weights: []int{1, 1, 1}}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 10; i++ {
		layout, err := Generate(rng, 5, 4, cfg)
		require.NoError(t, err)
		for r := range layout.Regions {
			size := len(layout.Regions[r])
			assert.GreaterOrEqual(t, size, 2)
			assert.LessOrEqual(t, size, 4)
		}
	}
}

func TestGenerateRejectsBadConfigs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		name string
		cfg  Config
	}{
		{"inverted range", Config{MinSize: 4, MaxSize: 2, Weights: []int{1}}},
		{"wrong weight count", Config{MinSize: 1, MaxSize: 3, Weights: []int{1, 1}}},
		{"zero weights", Config{MinSize: 1, MaxSize: 2, Weights: []int{0, 0}}},
		{"negative weight", Config{MinSize: 1, MaxSize: 2, Weights: []int{1, -1}}},
		{"size above nine", Config{MinSize: 1, MaxSize: 10, Weights: make([]int, 10)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(rng, 5, 4, tc.cfg)
			assert.Error(t, err)
		})
	}
}
