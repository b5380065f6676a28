package core

import (
	"strings"
	"unicode/utf8"
)

// Canvas is the immediate-mode drawing surface games render into.
// Implementations exist for the terminal (Screen) and for pixel windows.
type Canvas interface {
	// Size returns the drawable area in canvas units.
	Size() (w, h int)

	// Clear fills the whole canvas with a color.
	Clear(c Color)

	// FillRect fills a rectangle; parts outside the canvas are clipped.
	FillRect(r Rect, c Color)

	// DrawText writes a single line of text with its top-left corner at (x, y).
	DrawText(x, y int, text string, c Color)

	// TextSize returns the extent of one line of text in canvas units.
	TextSize(text string) (w, h int)
}

// Block is the rune used to paint filled rectangles on a Screen.
const Block = '█'

// Cell is one character position of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D character buffer for rendering game graphics in a terminal.
// Cells are stored in row-major order: index = y*width + x.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.cells = make([]Cell, s.width*s.height)
	s.Clear(ColorDefault)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Size implements Canvas.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the screen dimensions. Content is discarded; games
// redraw every frame.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.cells = make([]Cell, width*height)
	s.Clear(ColorDefault)
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Clear fills the entire screen with blank cells. Non-default colors are
// painted as solid blocks so that a board background shows up.
func (s *Screen) Clear(c Color) {
	r := ' '
	if c != ColorDefault {
		r = Block
	}
	for i := range s.cells {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return s.cells[y*s.width+x]
}

// FillRect implements Canvas by painting block runes.
func (s *Screen) FillRect(r Rect, c Color) {
	for y := max(r.Y, 0); y < min(r.Bottom(), s.height); y++ {
		for x := max(r.X, 0); x < min(r.Right(), s.width); x++ {
			s.cells[y*s.width+x] = Cell{Rune: Block, Color: c}
		}
	}
}

// DrawText implements Canvas. Characters beyond the screen are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// TextSize implements Canvas: one cell per rune, one row high.
func (s *Screen) TextSize(text string) (int, int) {
	return utf8.RuneCountInString(text), 1
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	w, _ := s.TextSize(text)
	s.DrawText((s.width-w)/2, y, text, c)
}

// String converts the screen buffer to an uncolored string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	row := make([]rune, s.width)
	for x := range row {
		row[x] = s.cells[y*s.width+x].Rune
	}
	return string(row)
}
