package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// RenderBuffer is a compositor backed by a flat cell array, flushed to a tcell.Screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	base   tcell.Style
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{base: tcell.StyleDefault.Background(RgbBackground)}
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
	b.cells[0] = Cell{Rune: ' ', Style: b.base}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns buffer width and height
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell, out-of-bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetFg writes a rune in the given color, keeping the cell's background
func (b *RenderBuffer) SetFg(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	_, bg, attrs := b.cells[idx].Style.Decompose()
	b.cells[idx] = Cell{Rune: r, Style: tcell.StyleDefault.Foreground(fg).Background(bg).Attributes(attrs)}
}

// SetBg changes only the background color of a cell
func (b *RenderBuffer) SetBg(x, y int, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Style = b.cells[idx].Style.Background(bg)
}

// SetString writes s starting at (x, y) and returns the number of cells written
func (b *RenderBuffer) SetString(x, y int, s string, style tcell.Style) int {
	n := 0
	for _, r := range s {
		b.Set(x+n, y, r, style)
		n++
	}
	return n
}

// Get returns the cell at (x, y), or a blank cell outside the buffer
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' ', Style: b.base}
	}
	return b.cells[y*b.width+x]
}

// FlushToScreen writes the buffer to the screen and shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
