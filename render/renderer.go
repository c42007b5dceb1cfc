package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-rain/rain"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// Renderer composes one frame of rain: a background pass that erases the
// previous frame (softly when fading is enabled) and a foreground pass drawing
// every active stream with its intensity falloff.
type Renderer struct {
	screen tcell.Screen
	buf    *Buffer
	rng    *vmath.FastRand
	fade   bool
	head   tcell.Style
}

// NewRenderer binds a frame buffer of the given dimensions to an initialized
// screen.
func NewRenderer(screen tcell.Screen, width, height int, rng *vmath.FastRand, fade, bold bool) *Renderer {
	return &Renderer{
		screen: screen,
		buf:    NewBuffer(width, height),
		rng:    rng,
		fade:   fade,
		head:   HeadStyle(bold),
	}
}

// Resize matches the frame buffer to new viewport dimensions.
func (r *Renderer) Resize(width, height int) {
	r.buf.Resize(width, height)
}

// Draw composes one frame from the field and presents it.
func (r *Renderer) Draw(f *rain.Field) {
	if r.fade {
		r.buf.Fill(' ', FadeStyle())
	} else {
		r.buf.Fill(' ', ClearStyle())
	}

	height := f.Height()
	for x := 0; x < f.Len(); x++ {
		c := f.Col(x)
		if !c.Active {
			continue
		}
		for y := c.Head - c.Trail; y <= c.Head; y++ {
			if y < 0 || y >= height {
				continue
			}
			// A fresh glyph every frame gives the shimmer the effect is
			// known for; symbols are not stable per row
			g := rain.RandomGlyph(r.rng)
			if y == c.Head {
				r.buf.Set(x, y, g, r.head)
			} else {
				r.buf.Set(x, y, g, TrailStyle(c.Head-y, c.Trail))
			}
		}
	}

	r.buf.Flush(r.screen)
}
