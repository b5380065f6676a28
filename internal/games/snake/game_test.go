package snake

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
)

// newGame resets a game with an isolated home directory, so that a user's
// ~/.arcade config cannot leak into the test.
func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		Aspect:   core.TerminalAspect,
		TickRate: 60,
	})
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newGame(t, 12345)
	g2 := newGame(t, 12345)

	input := core.NewInputFrame()
	for i := range 600 {
		input.Clear()
		switch i {
		case 20:
			input.Set(core.ActionDown)
		case 80:
			input.Set(core.ActionLeft)
		case 200:
			input.Set(core.ActionUp)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestMovesEveryConfiguredTicks(t *testing.T) {
	g := newGame(t, 1)
	g.Board().PlaceFood(core.Pt(0, 0))

	if g.MoveEveryTicks() != 6 {
		t.Fatalf("MoveEveryTicks() = %d, want default 6", g.MoveEveryTicks())
	}

	idle := core.NewInputFrame()
	for range 5 {
		g.Step(idle)
	}
	if g.Board().Head() != core.Pt(10, 10) {
		t.Fatalf("head moved early: %v", g.Board().Head())
	}

	g.Step(idle)
	if g.Board().Head() != core.Pt(11, 10) {
		t.Errorf("Head() = %v, want (11,10)", g.Board().Head())
	}
}

func TestDirectionAppliesOnNextMove(t *testing.T) {
	g := newGame(t, 1)
	g.Board().PlaceFood(core.Pt(0, 0))

	g.Step(press(core.ActionUp))
	if g.Board().Head() != core.Pt(10, 10) {
		t.Fatal("direction change must not move the snake by itself")
	}
	for range 5 {
		g.Step(core.NewInputFrame())
	}
	if g.Board().Head() != core.Pt(10, 9) {
		t.Errorf("Head() = %v, want (10,9)", g.Board().Head())
	}
}

func TestPauseToggle(t *testing.T) {
	g := newGame(t, 1)
	g.Board().PlaceFood(core.Pt(0, 0))

	st := g.Step(press(core.ActionPause)).State
	if !st.Paused {
		t.Fatal("expected paused")
	}
	for range 30 {
		g.Step(press(core.ActionDown))
	}
	if g.Board().Head() != core.Pt(10, 10) || g.Board().Direction() != core.DirRight {
		t.Error("paused game must ignore ticks and input")
	}

	st = g.Step(press(core.ActionPause)).State
	if st.Paused {
		t.Error("expected resumed")
	}
}

func TestScoreIsLength(t *testing.T) {
	g := newGame(t, 1)
	g.Board().PlaceFood(core.Pt(11, 10))

	for range 6 {
		g.Step(core.NewInputFrame())
	}
	if g.State().Score != 4 {
		t.Errorf("Score = %d, want 4", g.State().Score)
	}
}

func TestDifficultyPreset(t *testing.T) {
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := newGame(t, 1)
	if got := g.MoveEveryTicks(); got != 4 {
		t.Errorf("MoveEveryTicks() = %d, want 4", got)
	}

	SetDifficultyPreset("bogus")
	g = newGame(t, 1)
	if got := g.MoveEveryTicks(); got != 6 {
		t.Errorf("unknown preset should keep config, got %d", got)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, 1)
	g.Board().PlaceFood(core.Pt(0, 0))
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// 80x23 board area, 20x20 board, aspect 2: cell 1, offsets (20, 1+1 HUD row).
	checks := []struct {
		x, y int
		want core.Color
		what string
	}{
		{40, 12, core.ColorDarkGreen, "head"},
		{38, 12, core.ColorGreen, "body"},
		{20, 2, core.ColorRed, "food"},
		{58, 21, core.ColorBlack, "empty board"},
		{5, 10, core.ColorGray, "surround"},
		{60, 10, core.ColorGray, "surround right"},
	}
	for _, c := range checks {
		if got := scr.GetCell(c.x, c.y).Color; got != c.want {
			t.Errorf("%s at (%d,%d) color = %d, want %d", c.what, c.x, c.y, got, c.want)
		}
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newGame(t, 1)
	before := g.Snapshot()

	g.Resize(120, 40)
	if g.Snapshot() != before {
		t.Error("resize changed world state")
	}
	if !g.layout.Fits(120, 40) {
		t.Errorf("layout %+v does not fit 120x40", g.layout)
	}
}

func TestSpeedIndependentOfTickRate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, Aspect: core.TerminalAspect, TickRate: 30})
	g.Board().PlaceFood(core.Pt(0, 0))

	// Ten moves per second at 30 fps is one move every 3 ticks.
	if g.MoveEveryTicks() != 3 {
		t.Fatalf("MoveEveryTicks() = %d, want 3", g.MoveEveryTicks())
	}
	for range 30 {
		g.Step(core.NewInputFrame())
	}
	if g.Board().Head() != core.Pt(0, 10) {
		t.Errorf("Head() = %v after one second, want (0,10)", g.Board().Head())
	}
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := newGame(t, 1)
	if g.Config() != config.DefaultSnakeConfig() {
		t.Errorf("Config() = %+v, want defaults", g.Config())
	}
}
