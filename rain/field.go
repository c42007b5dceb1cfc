package rain

import (
	"github.com/lixenwraith/glyph-rain/vmath"
)

// Field is the ordered set of rain columns spanning the viewport, one per
// terminal column. It owns every Column; nothing else holds references to them.
type Field struct {
	cols    []Column
	width   int
	height  int
	density float64
	mult    float64
	rng     *vmath.FastRand
}

// NewField allocates one column per terminal column, each independently
// seeded. Zero or negative dimensions yield an empty field rather than an error.
func NewField(width, height int, density, mult float64, rng *vmath.FastRand) *Field {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f := &Field{
		width:   width,
		height:  height,
		density: density,
		mult:    mult,
		rng:     rng,
	}
	f.cols = make([]Column, width)
	for i := range f.cols {
		f.cols[i].Reseed(rng, height, density, mult)
	}
	return f
}

// Reflow adapts the field to new viewport dimensions and reports whether they
// changed. Columns in the overlapping prefix keep their state, new indices are
// freshly seeded with the new height, excess columns are dropped. The caller
// must force a full repaint after a real reflow since previous screen contents
// are stale relative to the new dimensions.
func (f *Field) Reflow(width, height int) bool {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == f.width && height == f.height {
		return false
	}

	cols := make([]Column, width)
	copy(cols, f.cols)
	for i := len(f.cols); i < width; i++ {
		cols[i].Reseed(f.rng, height, f.density, f.mult)
	}

	f.cols = cols
	f.width = width
	f.height = height
	return true
}

// Width is the current viewport width; always equal to the column count.
func (f *Field) Width() int {
	return f.width
}

// Height is the current viewport height.
func (f *Field) Height() int {
	return f.height
}

// Len is the number of columns.
func (f *Field) Len() int {
	return len(f.cols)
}

// Col returns the column at index i for in-place mutation.
func (f *Field) Col(i int) *Column {
	return &f.cols[i]
}
