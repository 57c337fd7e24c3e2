package render

import (
	"github.com/MarkLagodych/CyberspaceEmissary/core"
)

// Cell is one glyph of the output grid
type Cell struct {
	Rune  rune
	Color core.Color
}

// blankCell is what Clear writes everywhere
var blankCell = Cell{Rune: ' ', Color: core.White()}

// RenderBuffer is a row-major character+colour grid refreshed in full every frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a cleared buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
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
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blankCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) Width() int  { return b.width }
func (b *RenderBuffer) Height() int { return b.height }

// Size returns the grid dimensions
func (b *RenderBuffer) Size() core.Size {
	return core.Size{Width: b.width, Height: b.height}
}

// InBounds returns true if the cell lies on the grid
func (b *RenderBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a glyph, silently dropping off-grid coordinates
func (b *RenderBuffer) Set(x, y int, r rune, color core.Color) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Color: color}
}

// Cell returns the glyph at (x, y); off-grid reads yield a blank cell
func (b *RenderBuffer) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return blankCell
	}
	return b.cells[y*b.width+x]
}

// Cells exposes the row-major backing slice for shells to flush
// Callers must not retain it across Resize
func (b *RenderBuffer) Cells() []Cell {
	return b.cells
}

// Row returns row y as a string, handy for tests and debug dumps
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x := 0; x < b.width; x++ {
		runes[x] = b.cells[y*b.width+x].Rune
	}
	return string(runes)
}
