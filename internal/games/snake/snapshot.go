package snake

import "github.com/vovakirdan/grid-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	SnakeLen       int
	Head           core.Point
	Dir            core.Direction
	Food           core.Point
	Eaten          int
	Best           int
	MoveEveryTicks int
	Paused         bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:           g.tick,
		SnakeLen:       g.board.Len(),
		Head:           g.board.Head(),
		Dir:            g.board.Direction(),
		Food:           g.board.Food(),
		Eaten:          g.board.Eaten,
		Best:           g.board.Best,
		MoveEveryTicks: g.moveEvery,
		Paused:         g.paused,
	}
}
