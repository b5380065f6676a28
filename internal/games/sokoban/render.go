package sokoban

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// hudHeight is the canvas space reserved above the board for the status line.
func hudHeight(aspect int) int {
	if aspect == core.TerminalAspect {
		return 1
	}
	return 16
}

// Render draws the level. It does not change game state.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorBlack)

	switch g.phase {
	case PhaseFinished:
		drawCentered(dst, "All levels completed.", core.ColorWhite)
		return
	case PhaseInvalid:
		drawCentered(dst, fmt.Sprintf("Level %d: %v", g.index+1, g.levelErr), core.ColorRed)
		return
	}

	g.renderHUD(dst)
	g.renderLevel(dst)
}

func (g *Game) renderHUD(dst core.Canvas) {
	lvl := g.level
	hud := fmt.Sprintf(" Level %d/%d  Moves: %d  Pushes: %d  Goals left: %d",
		g.index+1, len(g.defs), lvl.Moves, lvl.Pushes, lvl.Remaining())
	if g.phase == PhaseCleared {
		width := 10
		filled := int(g.progress * float32(width))
		hud = fmt.Sprintf(" Level %d cleared! [%s%s]", g.index+1,
			strings.Repeat("#", filled), strings.Repeat(".", width-filled))
	}
	dst.DrawText(0, 0, hud, core.ColorWhite)
}

func (g *Game) renderLevel(dst core.Canvas) {
	lvl := g.level
	for y := range lvl.Height() {
		for x := range lvl.Width() {
			c := lvl.At(core.Pt(x, y))
			switch {
			case c.Kind == KindWall:
				dst.FillRect(g.layout.CellRect(x, y), core.ColorWhite)
			case c.OnGoal():
				dst.FillRect(g.layout.CellRect(x, y), core.ColorGreen)
			case c.Box:
				dst.FillRect(g.layout.CellRect(x, y), core.ColorRed)
			case c.Goal:
				dst.FillRect(g.layout.InnerRect(x, y), core.ColorRed)
			}
		}
	}

	p := lvl.Player()
	dst.FillRect(g.layout.CellRect(p.X, p.Y), core.ColorBlue)
}

func drawCentered(dst core.Canvas, text string, c core.Color) {
	w, h := dst.Size()
	tw, th := dst.TextSize(text)
	dst.DrawText((w-tw)/2, h/2-th/2, text, c)
}
