package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/glyph-rain/constants"
)

// Palette endpoints. The trail ramp runs from bright green just behind the
// head down to a tone barely above the background at the tail.
var (
	RgbHead      = tcell.NewRGBColor(220, 255, 220) // Near-white green
	rgbTrailHot  = colorful.Color{R: 50.0 / 255.0, G: 255.0 / 255.0, B: 50.0 / 255.0}
	rgbTrailCold = colorful.Color{R: 0, G: 60.0 / 255.0, B: 0}
	RgbFade      = tcell.NewRGBColor(0, 40, 0) // Soft-erase background tint
)

// trailRamp holds the precomputed intensity levels, brightest at index 0
// (nearest the head) to dimmest at the last index (the tail). Blending in Luv
// keeps the perceived brightness falloff even.
var trailRamp = buildTrailRamp()

func buildTrailRamp() [constants.RampSteps]tcell.Style {
	var ramp [constants.RampSteps]tcell.Style
	for i := range ramp {
		t := float64(i) / float64(constants.RampSteps-1)
		c := rgbTrailHot.BlendLuv(rgbTrailCold, t).Clamped()
		r, g, b := c.RGB255()
		ramp[i] = tcell.StyleDefault.Foreground(
			tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	return ramp
}

// HeadStyle is the bright tone of the leading glyph.
func HeadStyle(bold bool) tcell.Style {
	return tcell.StyleDefault.Foreground(RgbHead).Bold(bold)
}

// TrailStyle picks the intensity level for a trail cell dist rows behind the
// head. The last two rows of any trail are clamped to the dimmest band so the
// tail tapers out even on short trails.
func TrailStyle(dist, trail int) tcell.Style {
	last := constants.RampSteps - 1
	if trail <= 0 || dist > trail-2 {
		return trailRamp[last]
	}
	idx := dist * constants.RampSteps / (trail + 1)
	if idx > last {
		idx = last
	}
	if idx < 0 {
		idx = 0
	}
	return trailRamp[idx]
}

// FadeStyle is the soft-erase background used when fading is enabled.
func FadeStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(RgbFade).Dim(true)
}

// ClearStyle is the hard-clear background used with fading disabled; sharper
// trails at the cost of flicker on some terminals.
func ClearStyle() tcell.Style {
	return tcell.StyleDefault
}
