package snake

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// MinLength is the body length after a self-collision.
const MinLength = 3

// TickResult describes what happened during one board update.
type TickResult struct {
	Ate      bool // Head reached the food; the snake grew by one
	Collided bool // Head hit the body; the snake was cut to MinLength
}

// Board is the toroidal snake world. Coordinates wrap modulo its size.
type Board struct {
	width  int
	height int
	body   []core.Point // Head at index 0
	dir    core.Direction
	food   core.Point
	rng    *rand.Rand

	Eaten int // Food eaten since the board was created
	Best  int // Longest body reached
}

// NewBoard creates a width x height board with a horizontal snake of
// startLen cells whose head sits at the centre, heading right.
func NewBoard(width, height, startLen int, rng *rand.Rand) *Board {
	startLen = max(startLen, 1)
	b := &Board{
		width:  width,
		height: height,
		dir:    core.DirRight,
		rng:    rng,
		body:   make([]core.Point, 0, startLen+1),
	}
	for k := range startLen {
		b.body = append(b.body, core.Pt(width/2-k, height/2).Wrap(width, height))
	}
	b.Best = len(b.body)
	b.food = b.randomCell()
	return b
}

// randomCell picks a uniformly random cell. Occupied cells are not excluded,
// so food may appear under the body.
func (b *Board) randomCell() core.Point {
	return core.Pt(b.rng.Intn(b.width), b.rng.Intn(b.height))
}

// SetDirection changes the heading from the next tick on. Reversals are
// accepted and run the head into the neck.
func (b *Board) SetDirection(d core.Direction) {
	b.dir = d
}

// Tick advances the snake by one cell.
func (b *Board) Tick() TickResult {
	var res TickResult

	head := b.body[0].Step(b.dir).Wrap(b.width, b.height)
	b.body = append(b.body, core.Point{})
	copy(b.body[1:], b.body)
	b.body[0] = head

	if head == b.food {
		res.Ate = true
		b.Eaten++
		b.food = b.randomCell()
	} else {
		b.body = b.body[:len(b.body)-1]
	}

	// The head can never meet the first two segments in a single step.
	for i := 2; i < len(b.body); i++ {
		if b.body[i] == head {
			b.body = b.body[:min(MinLength, len(b.body))]
			res.Collided = true
			break
		}
	}

	b.Best = max(b.Best, len(b.body))
	return res
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Direction returns the current heading.
func (b *Board) Direction() core.Direction { return b.dir }

// Head returns the head position.
func (b *Board) Head() core.Point { return b.body[0] }

// Len returns the body length.
func (b *Board) Len() int { return len(b.body) }

// Body returns a copy of the body, head first.
func (b *Board) Body() []core.Point {
	out := make([]core.Point, len(b.body))
	copy(out, b.body)
	return out
}

// Food returns the food position.
func (b *Board) Food() core.Point { return b.food }

// PlaceFood moves the food to p, wrapped onto the board.
func (b *Board) PlaceFood(p core.Point) {
	b.food = p.Wrap(b.width, b.height)
}
