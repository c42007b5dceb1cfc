package rain

import (
	"github.com/lixenwraith/glyph-rain/constants"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// Simulator advances every column of a field by one tick.
type Simulator struct {
	rng     *vmath.FastRand
	density float64
	mult    float64
}

func NewSimulator(rng *vmath.FastRand, density, mult float64) *Simulator {
	return &Simulator{
		rng:     rng,
		density: density,
		mult:    mult,
	}
}

// Advance runs one tick over the whole field. Columns are independent, so
// update order does not matter.
func (s *Simulator) Advance(f *Field) {
	height := f.Height()
	for i := 0; i < f.Len(); i++ {
		c := f.Col(i)
		if c.Active {
			s.step(c, height)
			continue
		}
		// Idle columns trickle back in at a rate proportional to density,
		// decoupled from the construction roll
		if s.rng.Float64() < s.density/constants.ActivationDivisor {
			c.Activate(s.rng, height, s.mult)
		}
	}
}

// step moves one active column and reseeds it once the tail has cleared the
// viewport, so a fully-off-screen trail never survives to the next render.
func (s *Simulator) step(c *Column, height int) {
	if c.Speed < 1.0 {
		// Bernoulli step: mean rows per tick equals Speed without tracking
		// fractional positions
		if s.rng.Float64() < c.Speed {
			c.Head++
		}
	} else {
		c.Head += int(c.Speed)
	}

	if c.Head-c.Trail > height {
		c.Reseed(s.rng, height, s.density, s.mult)
	}
}
