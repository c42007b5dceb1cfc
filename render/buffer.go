package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one glyph plus its style in the frame buffer.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer composites the background and rain passes into one frame before a
// single present. Backed by a flat cell slice reused across frames.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only if capacity is
// insufficient. Contents are reset to blank cells.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Fill(' ', tcell.StyleDefault)
}

// Fill overwrites every cell using exponential copy.
func (b *Buffer) Fill(r rune, style tcell.Style) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: r, Style: style}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Set writes one cell. Out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at (x, y), reporting false when out of bounds.
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

func (b *Buffer) Width() int {
	return b.width
}

func (b *Buffer) Height() int {
	return b.height
}

// Flush pushes the composed frame to the screen and presents it.
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
