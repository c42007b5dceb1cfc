package rain

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyph-rain/vmath"
)

func TestGlyphTableNonEmpty(t *testing.T) {
	require.NotEmpty(t, glyphs)
	// 56 half-width katakana plus 10 digits
	assert.Equal(t, 66, len(glyphs))
}

func TestGlyphsAreSingleWidth(t *testing.T) {
	for _, g := range glyphs {
		assert.Equal(t, 1, runewidth.RuneWidth(g), "glyph %q must occupy one cell", g)
	}
}

func TestRandomGlyphIsMember(t *testing.T) {
	members := make(map[rune]bool, len(glyphs))
	for _, g := range glyphs {
		members[g] = true
	}

	rng := vmath.NewFastRand(1)
	for i := 0; i < 1000; i++ {
		require.True(t, members[RandomGlyph(rng)])
	}
}
