package sokoban

import (
	"errors"
	"strings"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// RowSeparator joins the rows of a flattened level definition.
const RowSeparator = "|"

// Level definition characters.
const (
	charGoal         = '.'
	charBox          = '$'
	charBoxOnGoal    = '*'
	charWall         = '#'
	charPlayer       = '@'
	charPlayerOnGoal = '&'
)

var (
	// ErrEmptyLevel is returned for a definition without any cells.
	ErrEmptyLevel = errors.New("sokoban: empty level")
	// ErrNoPlayer is returned for a definition that never places the player.
	ErrNoPlayer = errors.New("sokoban: level has no player")
)

// CellKind is the static terrain of a cell.
type CellKind uint8

const (
	KindFloor CellKind = iota
	KindWall
)

// Cell is one grid square. A wall never carries a goal or a box.
type Cell struct {
	Kind CellKind
	Goal bool
	Box  bool
}

// OnGoal reports whether a box currently covers this cell's goal.
func (c Cell) OnGoal() bool {
	return c.Goal && c.Box
}

// Level is a loaded box-pusher level: a flat grid indexed y*width+x,
// the player position and the number of uncovered goals.
type Level struct {
	def       string
	width     int
	height    int
	cells     []Cell
	player    core.Point
	goalCount int // goal-bearing cells, covered or not
	goals     int // goals not covered by a box

	Moves  int
	Pushes int
}

// ParseLevel builds a level from a flattened definition whose rows are
// separated by RowSeparator. Short rows are padded with floor. When several
// player characters appear, the last one places the player.
func ParseLevel(def string) (*Level, error) {
	rows := strings.Split(def, RowSeparator)

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if width == 0 {
		return nil, ErrEmptyLevel
	}

	lvl := &Level{
		def:    def,
		width:  width,
		height: len(rows),
		cells:  make([]Cell, width*len(rows)),
	}

	hasPlayer := false
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			c := &lvl.cells[y*width+x]
			switch row[x] {
			case charGoal:
				c.Goal = true
				lvl.goals++
			case charBox:
				c.Box = true
			case charBoxOnGoal:
				c.Goal, c.Box = true, true
			case charWall:
				c.Kind = KindWall
			case charPlayer:
				lvl.player = core.Pt(x, y)
				hasPlayer = true
			case charPlayerOnGoal:
				c.Goal = true
				lvl.goals++
				lvl.player = core.Pt(x, y)
				hasPlayer = true
			}
			if c.Goal {
				lvl.goalCount++
			}
		}
	}

	if !hasPlayer {
		return nil, ErrNoPlayer
	}
	return lvl, nil
}

// Width returns the number of columns.
func (l *Level) Width() int { return l.width }

// Height returns the number of rows.
func (l *Level) Height() int { return l.height }

// Player returns the player position.
func (l *Level) Player() core.Point { return l.player }

// GoalCount returns the number of goal-bearing cells.
func (l *Level) GoalCount() int { return l.goalCount }

// Remaining returns the number of goals not yet covered by a box.
func (l *Level) Remaining() int { return l.goals }

// Solved reports whether every goal is covered.
func (l *Level) Solved() bool { return l.goals == 0 }

// Definition returns the source definition, used to restart the level.
func (l *Level) Definition() string { return l.def }

// InBounds reports whether p lies on the grid.
func (l *Level) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < l.width && p.Y >= 0 && p.Y < l.height
}

// At returns the cell at p. Cells outside the grid read as walls.
func (l *Level) At(p core.Point) Cell {
	if !l.InBounds(p) {
		return Cell{Kind: KindWall}
	}
	return l.cells[p.Y*l.width+p.X]
}

func (l *Level) cell(p core.Point) *Cell {
	return &l.cells[p.Y*l.width+p.X]
}

// Boxes returns the positions of all boxes in row-major order.
func (l *Level) Boxes() []core.Point {
	var boxes []core.Point
	for i, c := range l.cells {
		if c.Box {
			boxes = append(boxes, core.Pt(i%l.width, i/l.width))
		}
	}
	return boxes
}

// String renders the level back into definition characters, one row per line.
func (l *Level) String() string {
	var b strings.Builder
	for y := range l.height {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range l.width {
			p := core.Pt(x, y)
			c := l.At(p)
			switch {
			case p == l.player && c.Goal:
				b.WriteByte(charPlayerOnGoal)
			case p == l.player:
				b.WriteByte(charPlayer)
			case c.Kind == KindWall:
				b.WriteByte(charWall)
			case c.OnGoal():
				b.WriteByte(charBoxOnGoal)
			case c.Box:
				b.WriteByte(charBox)
			case c.Goal:
				b.WriteByte(charGoal)
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
