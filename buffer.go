package notty

import "strings"

// Cell holds a single character cell: its rune and an mgutz/ansi style code
// (empty for the default style).
type Cell struct {
	R     rune
	Style string
}

// Coord addresses a cell in a buffer; 0,0 is the top-left corner.
type Coord struct {
	X uint
	Y uint
}

// Buffer is one screen buffer: a fixed-size cell grid with its own scroll
// behavior, a cursor, and any interactive widgets attached at coordinates.
// Buffers are owned exclusively by their session and carry no locking of
// their own.
type Buffer struct {
	cells   []Cell
	w       uint
	h       uint
	scrollX bool
	scrollY bool
	cursor  Coord
	widgets map[Coord]Widget
}

// NewBuffer creates an empty buffer with the given dimensions and
// scroll-independence flags.
func NewBuffer(width, height uint, scrollX, scrollY bool) *Buffer {
	return &Buffer{
		cells:   make([]Cell, width*height),
		w:       width,
		h:       height,
		scrollX: scrollX,
		scrollY: scrollY,
		widgets: make(map[Coord]Widget),
	}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() uint {
	return b.w
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() uint {
	return b.h
}

// ScrollsX reports whether the buffer scrolls horizontally on its own.
func (b *Buffer) ScrollsX() bool {
	return b.scrollX
}

// ScrollsY reports whether the buffer scrolls vertically on its own.
func (b *Buffer) ScrollsY() bool {
	return b.scrollY
}

// Plot places a rune with the default style.
func (b *Buffer) Plot(x, y uint, r rune) {
	b.PlotColor(x, y, "", r)
}

// PlotColor places a rune with an mgutz/ansi style code. Out-of-range
// coordinates are ignored.
func (b *Buffer) PlotColor(x, y uint, style string, r rune) {
	if x >= b.w || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = Cell{R: r, Style: style}
}

// At returns the cell at the given position, or a zero cell when out of range.
func (b *Buffer) At(x, y uint) Cell {
	if x >= b.w || y >= b.h {
		return Cell{}
	}
	return b.cells[y*b.w+x]
}

// SetCursor moves the cursor, clamping it to the grid.
func (b *Buffer) SetCursor(x, y uint) {
	if x >= b.w && b.w > 0 {
		x = b.w - 1
	}
	if y >= b.h && b.h > 0 {
		y = b.h - 1
	}
	b.cursor = Coord{X: x, Y: y}
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Coord {
	return b.cursor
}

// SetWidth resizes the buffer horizontally, keeping the overlapping content.
func (b *Buffer) SetWidth(width uint) {
	b.resize(width, b.h)
}

// SetHeight resizes the buffer vertically, keeping the overlapping content.
func (b *Buffer) SetHeight(height uint) {
	b.resize(b.w, height)
}

func (b *Buffer) resize(width, height uint) {
	if width == b.w && height == b.h {
		return
	}
	cells := make([]Cell, width*height)
	minW, minH := b.w, b.h
	if width < minW {
		minW = width
	}
	if height < minH {
		minH = height
	}
	for y := uint(0); y < minH; y++ {
		copy(cells[y*width:y*width+minW], b.cells[y*b.w:y*b.w+minW])
	}
	b.cells = cells
	b.w = width
	b.h = height
	b.SetCursor(b.cursor.X, b.cursor.Y)
}

// AttachWidget places a widget at a coordinate, replacing any widget
// already attached there.
func (b *Buffer) AttachWidget(at Coord, w Widget) {
	b.widgets[at] = w
}

// DetachWidget removes the widget at a coordinate, if any.
func (b *Buffer) DetachWidget(at Coord) {
	delete(b.widgets, at)
}

// WidgetAt returns the widget attached at a coordinate, or nil.
func (b *Buffer) WidgetAt(at Coord) Widget {
	return b.widgets[at]
}

// String returns the buffer contents as plain text, one row per line.
// Unset cells render as spaces; styles are not included.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := uint(0); y < b.h; y++ {
		for x := uint(0); x < b.w; x++ {
			r := b.cells[y*b.w+x].R
			if r == rune(0) {
				r = ' '
			}
			sb.WriteRune(r)
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
