package rain

import (
	"github.com/lixenwraith/glyph-rain/constants"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// Column is one vertical rain stream bound to a terminal column index.
type Column struct {
	Head   int     // Row of the brightest glyph; negative while entering from above
	Trail  int     // Lit rows behind the head
	Speed  float64 // Rows advanced per tick
	Active bool    // Idle columns render nothing
}

// Reseed rolls a complete fresh state. Used at construction and whenever the
// tail has fully left the viewport; the activity roll may leave the column idle.
func (c *Column) Reseed(rng *vmath.FastRand, height int, density, mult float64) {
	c.Active = rng.Float64() < density
	c.roll(rng, height, mult)
}

// Activate starts rain on an idle column.
func (c *Column) Activate(rng *vmath.FastRand, height int, mult float64) {
	c.Active = true
	c.roll(rng, height, mult)
}

func (c *Column) roll(rng *vmath.FastRand, height int, mult float64) {
	c.Trail = constants.TrailMin + rng.Intn(constants.TrailSpan)
	c.Speed = (constants.SpeedBase + rng.Float64()*constants.SpeedSpan) * mult
	// Staggered entry above the viewport avoids a synchronized wavefront
	c.Head = -rng.Intn(height)
}
