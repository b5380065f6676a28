package snake

import (
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

func hudHeight(aspect int) int {
	if aspect == core.TerminalAspect {
		return 1
	}
	return 16
}

// Render draws the board. It does not change game state.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorGray)

	// Board background
	board := g.layout.Board()
	dst.FillRect(board, core.ColorBlack)

	for i, seg := range g.board.body {
		c := core.ColorGreen
		if i == 0 {
			c = core.ColorDarkGreen
		}
		dst.FillRect(g.layout.CellRect(seg.X, seg.Y), c)
	}

	food := g.board.Food()
	dst.FillRect(g.layout.CellRect(food.X, food.Y), core.ColorRed)

	status := fmt.Sprintf(" Length: %d  Best: %d  Eaten: %d", g.board.Len(), g.board.Best, g.board.Eaten)
	if g.paused {
		status += "  [PAUSED - press P]"
	}
	dst.DrawText(0, 0, status, core.ColorBrightWhite)
}
