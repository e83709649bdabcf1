package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"5x4", Format{5, 4}},
		{"5x9", Format{5, 9}},
		{"11x4", Format{11, 4}},
		{"11x9", Format{11, 9}},
		{" 5x4 ", Format{5, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFormatRejectsUnsupported(t *testing.T) {
	for _, in := range []string{"6x6", "9x9", "5by4", "5", "", "x", "ax4", "5xb"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseFormat(in)
			require.ErrorIs(t, err, ErrUnsupportedFormat)
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{
		"easy":   Easy,
		"medium": Medium,
		"HARD":   Hard,
		" Easy ": Easy,
	} {
		got, err := ParseDifficulty(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseDifficulty("expert")
	assert.ErrorIs(t, err, ErrUnsupportedDifficulty)
}

func TestSizeWeightsCoverSizeRange(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		weights := d.SizeWeights()
		require.Len(t, weights, MaxRegionSize-MinRegionSize+1, "weights for %s", d)
		total := 0
		for _, w := range weights {
			assert.GreaterOrEqual(t, w, 0)
			total += w
		}
		assert.Positive(t, total)
	}
}

func TestClueTargetsAreMonotone(t *testing.T) {
	for _, f := range SupportedFormats {
		easy := Easy.ClueTarget(f)
		medium := Medium.ClueTarget(f)
		hard := Hard.ClueTarget(f)

		assert.Greater(t, easy, medium, "format %s", f)
		assert.Greater(t, medium, hard, "format %s", f)
		assert.Zero(t, hard, "hard carves maximally for %s", f)
		assert.Less(t, easy, f.Cells(), "format %s", f)
	}
}
