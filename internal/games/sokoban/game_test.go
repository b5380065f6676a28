package sokoban

import (
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

var testCfg = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	Aspect:   core.TerminalAspect,
	TickRate: 60,
	Seed:     1,
}

// useLevels configures the package-level settings for one test.
func useLevels(t *testing.T, delayMS int, defs ...string) {
	t.Helper()
	SetLevels(defs)
	SetAdvanceDelay(delayMS)
	t.Cleanup(func() {
		SetLevels(nil)
		SetAdvanceDelay(DefaultAdvanceDelayMS)
		SetStartLevel(0)
	})
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestGameAdvancesAfterDelay(t *testing.T) {
	useLevels(t, 800, "#####|#@$.#|#####", "######|#@ $.#|######")

	g := New()
	g.Reset(testCfg)

	st := g.Step(press(core.ActionRight)).State
	if g.Phase() != PhaseCleared {
		t.Fatalf("phase = %s, want %s", g.Phase(), PhaseCleared)
	}
	if st.Score != 1 {
		t.Errorf("score = %d, want 1", st.Score)
	}

	ticks := 0
	for g.Phase() == PhaseCleared && ticks < 120 {
		g.Step(core.NewInputFrame())
		ticks++
	}
	// 800ms at 60 ticks per second.
	if ticks < 47 || ticks > 50 {
		t.Errorf("transition took %d ticks, want about 48", ticks)
	}
	if g.LevelIndex() != 1 || g.Phase() != PhasePlaying {
		t.Errorf("level %d phase %s, want level 1 playing", g.LevelIndex(), g.Phase())
	}
}

func TestInputIgnoredWhileCleared(t *testing.T) {
	useLevels(t, 800, "#####|#@$.#|#####", "######|#@ $.#|######")

	g := New()
	g.Reset(testCfg)
	g.Step(press(core.ActionRight))

	g.Step(press(core.ActionRestart))
	g.Step(press(core.ActionLeft))
	if g.Phase() != PhaseCleared || g.LevelIndex() != 0 {
		t.Errorf("phase %s level %d, input should be ignored during transition", g.Phase(), g.LevelIndex())
	}
	if g.Level().Player() != core.Pt(2, 1) {
		t.Errorf("player moved during transition: %v", g.Level().Player())
	}
}

func TestGameFinishesAfterLastLevel(t *testing.T) {
	useLevels(t, 0, "#####|#@$.#|#####")

	g := New()
	g.Reset(testCfg)
	st := g.Step(press(core.ActionRight)).State

	if !st.Finished || g.Phase() != PhaseFinished {
		t.Fatalf("state %+v phase %s, want finished", st, g.Phase())
	}
	if g.Level() != nil {
		t.Error("no level should be loaded after the last one")
	}

	// Further ticks are no-ops.
	st = g.Step(press(core.ActionLeft)).State
	if !st.Finished {
		t.Error("finished state should be sticky")
	}
}

func TestRestartReloadsLevel(t *testing.T) {
	useLevels(t, 800, "######|#@$ .#|######")

	g := New()
	g.Reset(testCfg)
	g.Step(press(core.ActionRight))
	if g.Level().Player() != core.Pt(2, 1) || g.Level().Pushes != 1 {
		t.Fatalf("setup push failed: %s", g.Level())
	}

	g.Step(press(core.ActionRestart))
	lvl := g.Level()
	if lvl.Player() != core.Pt(1, 1) || lvl.Moves != 0 || lvl.Pushes != 0 {
		t.Errorf("restart did not reload: player %v moves %d pushes %d", lvl.Player(), lvl.Moves, lvl.Pushes)
	}
	if lvl.String() != "######\n#@$ .#\n######" {
		t.Errorf("restart grid =\n%s", lvl)
	}
}

func TestStartLevel(t *testing.T) {
	useLevels(t, 800, "#@.$", "#@$.", "@")
	SetStartLevel(2)

	g := New()
	g.Reset(testCfg)
	if g.LevelIndex() != 1 {
		t.Errorf("LevelIndex() = %d, want 1", g.LevelIndex())
	}
	if GetStartLevel() != 0 {
		t.Error("start level should be consumed by Reset")
	}

	SetStartLevel(9)
	g.Reset(testCfg)
	if g.LevelIndex() != 0 {
		t.Errorf("out of range start level should be ignored, got %d", g.LevelIndex())
	}
}

func TestInvalidLevel(t *testing.T) {
	useLevels(t, 800, "#.$#")

	g := New()
	g.Reset(testCfg)
	if g.Phase() != PhaseInvalid || !g.State().GameOver {
		t.Errorf("phase %s state %+v, want invalid game over", g.Phase(), g.State())
	}
	if g.Err() == nil {
		t.Error("Err() should report the parse error")
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr) // must not panic without a level
}

func TestBuiltinLevelsUsedByDefault(t *testing.T) {
	useLevels(t, 800)

	g := New()
	g.Reset(testCfg)
	if g.LevelCount() != len(BuiltinLevels()) || g.LevelCount() == 0 {
		t.Errorf("LevelCount() = %d, want builtin %d", g.LevelCount(), len(BuiltinLevels()))
	}
}

func TestRender(t *testing.T) {
	useLevels(t, 800, "#####|#@$.#|#####")

	g := New()
	g.Reset(testCfg)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// 80x23 board area, 5x3 level, aspect 2: cell 7, offsets (5, 1+1 HUD row).
	checks := []struct {
		x, y int
		want core.Color
		what string
	}{
		{5, 2, core.ColorWhite, "wall"},
		{19, 9, core.ColorBlue, "player"},
		{33, 9, core.ColorRed, "box"},
		{49, 10, core.ColorRed, "goal marker"},
		{47, 9, core.ColorBlack, "goal surround"},
		{18, 8, core.ColorBlack, "grid gap"},
	}
	for _, c := range checks {
		if got := scr.GetCell(c.x, c.y).Color; got != c.want {
			t.Errorf("%s at (%d,%d) color = %d, want %d", c.what, c.x, c.y, got, c.want)
		}
	}

	g.Step(press(core.ActionRight))
	g.Render(scr)
	// Box now covers the goal and is drawn green.
	if got := scr.GetCell(47, 9).Color; got != core.ColorGreen {
		t.Errorf("box on goal color = %d, want green", got)
	}
}

func TestRenderIsPure(t *testing.T) {
	useLevels(t, 800, "#####|#@$.#|#####")

	g := New()
	g.Reset(testCfg)
	before := g.Snapshot()
	scr := core.NewScreen(80, 24)
	for range 3 {
		g.Render(scr)
	}
	after := g.Snapshot()
	if before.Player != after.Player || before.Remaining != after.Remaining || before.Tick != after.Tick {
		t.Errorf("render changed state: %+v -> %+v", before, after)
	}
}

func TestResizeKeepsState(t *testing.T) {
	useLevels(t, 800, "######|#@ $.#|######")

	g := New()
	g.Reset(testCfg)
	g.Step(press(core.ActionRight))
	g.Resize(40, 12)

	if g.Level().Player() != core.Pt(2, 1) {
		t.Errorf("resize changed player: %v", g.Level().Player())
	}
	if !g.layout.Fits(40, 12) {
		t.Errorf("layout %+v does not fit 40x12", g.layout)
	}
}

func TestEveryPressInOneTickMoves(t *testing.T) {
	useLevels(t, 800, "#######|#@    #|#    .#|#######")

	g := New()
	g.Reset(testCfg)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionRight)
	in.Set(core.ActionDown)
	g.Step(in)

	lvl := g.Level()
	if lvl.Player() != core.Pt(3, 2) || lvl.Moves != 3 {
		t.Errorf("player %v moves %d, want (3,2) and 3 moves", lvl.Player(), lvl.Moves)
	}
}

func TestRestartThenMoveInOneTick(t *testing.T) {
	useLevels(t, 800, "######|#@  .#|######")

	g := New()
	g.Reset(testCfg)
	g.Step(press(core.ActionRight))

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	in.Set(core.ActionRight)
	g.Step(in)

	lvl := g.Level()
	if lvl.Player() != core.Pt(2, 1) || lvl.Moves != 1 {
		t.Errorf("player %v moves %d, want reload then one move", lvl.Player(), lvl.Moves)
	}
}

func TestPressesAfterSolveAreDropped(t *testing.T) {
	useLevels(t, 0, "#####|#@$.#|#####", "######|#@  .#|######")

	g := New()
	g.Reset(testCfg)

	in := core.NewInputFrame()
	in.Set(core.ActionRight) // solves level 1
	in.Set(core.ActionRight)
	g.Step(in)

	if g.LevelIndex() != 1 {
		t.Fatalf("level = %d, want 1", g.LevelIndex())
	}
	if lvl := g.Level(); lvl.Player() != core.Pt(1, 1) || lvl.Moves != 0 {
		t.Errorf("next level should start untouched: player %v moves %d", lvl.Player(), lvl.Moves)
	}
}

// pixelCanvas measures text like a 7x13 bitmap font and records text calls.
type pixelCanvas struct {
	w, h  int
	textX []int
	textY []int
}

func (c *pixelCanvas) Size() (int, int)               { return c.w, c.h }
func (c *pixelCanvas) Clear(core.Color)               {}
func (c *pixelCanvas) FillRect(core.Rect, core.Color) {}
func (c *pixelCanvas) TextSize(s string) (int, int)   { return 7 * len(s), 13 }
func (c *pixelCanvas) DrawText(x, y int, _ string, _ core.Color) {
	c.textX = append(c.textX, x)
	c.textY = append(c.textY, y)
}

func TestFinishedMessageCenteredInPixels(t *testing.T) {
	useLevels(t, 0, "#####|#@$.#|#####")

	g := New()
	g.Reset(testCfg)
	g.Step(press(core.ActionRight))
	if g.Phase() != PhaseFinished {
		t.Fatalf("phase = %s, want finished", g.Phase())
	}

	dst := &pixelCanvas{w: 800, h: 600}
	g.Render(dst)

	// "All levels completed." is 21 characters, 147 px wide.
	if len(dst.textX) != 1 || dst.textX[0] != (800-147)/2 || dst.textY[0] != 300-6 {
		t.Errorf("text at x=%v y=%v, want x=%d y=%d", dst.textX, dst.textY, (800-147)/2, 294)
	}
}
