package solver

import (
	"testing"

	"github.com/EmirMurat6606/SuguruMeister/internal/config"
	"github.com/EmirMurat6606/SuguruMeister/internal/grid"
	"github.com/stretchr/testify/assert"
)

func TestRateSolvedGridIsFree(t *testing.T) {
	r := Rate(solvedGrid(t))
	assert.Equal(t, Rating{}, r)
}

func TestRateSingleBlankIsOneNakedSingle(t *testing.T) {
	g := solvedGrid(t)
	g.Clear(0)

	r := Rate(g)
	assert.Equal(t, Rating{Cost: costNakedSingle, Guesses: 0, MaxDepth: 0}, r)
}

func TestRateDoesNotMutate(t *testing.T) {
	g := solvedGrid(t)
	g.Clear(0)
	Rate(g)
	assert.Equal(t, grid.EmptyCell, g.Get(0))
}

func TestRateEmptyGridNeedsGuessing(t *testing.T) {
	g := grid.New(blocks4x4Layout(t))

	r := Rate(g)
	assert.Positive(t, r.Guesses)
	assert.Positive(t, r.MaxDepth)
	assert.Greater(t, r.Cost, costGuessBase)
	assert.NotEqual(t, config.Easy, Classify(r, config.DefaultThresholds()))
}

func TestClassify(t *testing.T) {
	thresholds := config.Thresholds{MediumMaxGuesses: 3, MediumMaxDepth: 2}

	tests := []struct {
		name   string
		rating Rating
		want   config.Difficulty
	}{
		{"no guesses is easy", Rating{Cost: 40}, config.Easy},
		{"shallow guessing is medium", Rating{Guesses: 3, MaxDepth: 2}, config.Medium},
		{"too many guesses is hard", Rating{Guesses: 4, MaxDepth: 2}, config.Hard},
		{"deep guessing is hard", Rating{Guesses: 1, MaxDepth: 3}, config.Hard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.rating, thresholds))
		})
	}
}
