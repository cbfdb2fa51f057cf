package coloring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"red", Red, true},
		{"  Green ", Green, true},
		{"b", Blue, true},
		{"Y", Yellow, true},
		{"magenta", Magenta, true},
		{"m", Magenta, true},
		{"", NoColor, false},
		{"teal", NoColor, false},
		{"x", NoColor, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseColor(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestColorInitialsUnique(t *testing.T) {
	seen := make(map[rune]Color)
	for _, c := range AllColors() {
		ch := c.Char()
		prev, dup := seen[ch]
		require.False(t, dup, "%s and %s share %q", prev, c, ch)
		seen[ch] = c
	}
	assert.Equal(t, '.', NoColor.Char())
	assert.False(t, NoColor.Valid())
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"red", "g", "purple"})
	require.NoError(t, err)
	assert.Equal(t, Palette{Red, Green, Purple}, p)
	assert.Equal(t, []string{"red", "green", "purple"}, p.Names())
	assert.Equal(t, 2, p.Index(Purple))
	assert.Equal(t, -1, p.Index(Blue))

	_, err = ParsePalette([]string{"red", "pink"})
	require.ErrorIs(t, err, ErrUnknownColor)

	_, err = ParsePalette([]string{"red", "r"})
	require.ErrorIs(t, err, ErrDuplicateColor)
}

func TestDefaultPalette(t *testing.T) {
	assert.Equal(t, []string{"red", "green", "blue", "yellow"}, DefaultPalette().Names())
}

func TestReasonPenalties(t *testing.T) {
	penalized := map[Reason]bool{
		ReasonNotInPalette:   true,
		ReasonAlreadyColored: true,
		ReasonConflict:       true,
	}
	for _, r := range []Reason{
		ReasonNone, ReasonGameOver, ReasonSolving, ReasonNotInPalette,
		ReasonAlreadyColored, ReasonConflict, ReasonNoLegalColor, ReasonBoardFull,
	} {
		assert.Equal(t, penalized[r], r.Penalized(), r.String())
	}
	assert.NoError(t, ReasonNone.Err())
	assert.NoError(t, ReasonBoardFull.Err())
}
