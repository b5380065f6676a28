package sokoban

import "github.com/vovakirdan/grid-arcade/internal/core"

// MoveResult describes the outcome of one directional input.
type MoveResult struct {
	Moved  bool // Player changed cell
	Pushed bool // A box moved with the player
	Solved bool // No uncovered goals remain
}

// AttemptMove moves the player one cell in dir, pushing a single box if
// one is in the way. A blocked move or push leaves the level untouched.
func (l *Level) AttemptMove(dir core.Direction) MoveResult {
	dest := l.player.Step(dir)
	target := l.At(dest)

	if target.Kind == KindWall {
		return MoveResult{Solved: l.Solved()}
	}

	pushed := false
	if target.Box {
		beyond := dest.Step(dir)
		next := l.At(beyond)
		if next.Kind == KindWall || next.Box {
			return MoveResult{Solved: l.Solved()}
		}

		from := l.cell(dest)
		from.Box = false
		if from.Goal {
			l.goals++
		}

		to := l.cell(beyond)
		to.Box = true
		if to.Goal {
			l.goals--
		}

		pushed = true
		l.Pushes++
	}

	l.player = dest
	l.Moves++

	return MoveResult{Moved: true, Pushed: pushed, Solved: l.Solved()}
}
