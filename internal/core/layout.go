package core

// Aspect ratios for Layout. A terminal character is roughly twice as tall
// as it is wide, so board cells are drawn two characters wide.
const (
	TerminalAspect = 2
	PixelAspect    = 1
)

// gapMinCell is the smallest cell size that still gets a one-unit gap
// between neighbouring cells.
const gapMinCell = 4

// Layout maps board cells to canvas rectangles. It is computed once per
// board size and viewport and then reused for every frame.
type Layout struct {
	Cell   int // Cell height in canvas units; width is Cell*Aspect
	Aspect int
	OffX   int // Left padding that centres the board
	OffY   int // Top padding that centres the board
	BoardW int
	BoardH int
}

// NewLayout fits a boardW x boardH board into a viewW x viewH viewport.
// The cell size is the largest that fits both axes (at least 1) and the
// board is centred.
func NewLayout(viewW, viewH, boardW, boardH, aspect int) Layout {
	if aspect <= 0 {
		aspect = PixelAspect
	}
	l := Layout{Aspect: aspect, BoardW: boardW, BoardH: boardH, Cell: 1}
	if boardW <= 0 || boardH <= 0 {
		return l
	}

	l.Cell = max(1, min(viewW/(boardW*aspect), viewH/boardH))
	l.OffX = (viewW - l.Cell*aspect*boardW) / 2
	l.OffY = (viewH - l.Cell*boardH) / 2
	return l
}

// Fits reports whether the whole board is visible in a viewW x viewH viewport.
func (l Layout) Fits(viewW, viewH int) bool {
	return l.OffX >= 0 && l.OffY >= 0 &&
		l.Board().Right() <= viewW && l.Board().Bottom() <= viewH
}

// Board returns the rectangle covered by the whole board.
func (l Layout) Board() Rect {
	return Rect{X: l.OffX, Y: l.OffY, W: l.Cell * l.Aspect * l.BoardW, H: l.Cell * l.BoardH}
}

// CellRect returns the rectangle for board cell (x, y), leaving a one-unit
// gap on the right and bottom when cells are large enough.
func (l Layout) CellRect(x, y int) Rect {
	w, h := l.Cell*l.Aspect, l.Cell
	r := Rect{X: l.OffX + x*w, Y: l.OffY + y*h, W: w, H: h}
	if l.Cell >= gapMinCell {
		r.W--
		r.H--
	}
	return r
}

// InnerRect returns the rectangle for board cell (x, y) shrunk by a quarter
// of the cell on every side. Used for markers smaller than a full cell.
func (l Layout) InnerRect(x, y int) Rect {
	full := Rect{X: l.OffX + x*l.Cell*l.Aspect, Y: l.OffY + y*l.Cell, W: l.Cell * l.Aspect, H: l.Cell}
	q := l.Cell / 4
	inner := Rect{X: full.X + q*l.Aspect, Y: full.Y + q, W: full.W - 2*q*l.Aspect, H: full.H - 2*q}
	if q == 0 || inner.Empty() {
		// Too small to shrink: use a half-width marker on a single row.
		return Rect{X: full.X + full.W/4, Y: full.Y, W: max(1, full.W/2), H: max(1, full.H)}
	}
	return inner
}
