package rain

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/glyph-rain/vmath"
)

// glyphs is the rain alphabet: half-width katakana plus digits. Built once at
// package init and never mutated.
var glyphs = buildGlyphs()

func buildGlyphs() []rune {
	table := make([]rune, 0, 66)
	// Half-width katakana block, U+FF66 (ｦ) through U+FF9D (ﾝ)
	for r := rune(0xFF66); r <= 0xFF9D; r++ {
		table = append(table, r)
	}
	for r := '0'; r <= '9'; r++ {
		table = append(table, r)
	}

	// Every cell is exactly one column wide; a wider rune would smear into
	// the neighboring stream.
	out := make([]rune, 0, len(table))
	for _, r := range table {
		if runewidth.RuneWidth(r) == 1 {
			out = append(out, r)
		}
	}
	return out
}

// RandomGlyph draws one symbol uniformly from the rain alphabet.
func RandomGlyph(rng *vmath.FastRand) rune {
	return glyphs[rng.Intn(len(glyphs))]
}
