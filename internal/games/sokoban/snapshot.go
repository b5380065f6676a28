package sokoban

import "github.com/vovakirdan/grid-arcade/internal/core"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int // 1-indexed for display
	Levels    int
	Phase     Phase
	Player    core.Point
	Boxes     []core.Point
	Remaining int
	Moves     int
	Pushes    int
	Solved    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Level:  g.index + 1,
		Levels: len(g.defs),
		Phase:  g.phase,
		Solved: g.solved,
	}
	if g.level != nil {
		s.Player = g.level.Player()
		s.Boxes = g.level.Boxes()
		s.Remaining = g.level.Remaining()
		s.Moves = g.level.Moves
		s.Pushes = g.level.Pushes
	}
	return s
}
