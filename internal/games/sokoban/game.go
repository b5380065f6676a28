// Package sokoban implements a box-pusher: the player walks a walled grid
// and pushes boxes, one at a time, onto goals.
package sokoban

import (
	_ "embed"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// DefaultAdvanceDelayMS is the pause between a solved level and the next.
const DefaultAdvanceDelayMS = 800

//go:embed levels.txt
var builtinLevelFile string

// Phase is the game's position in the level sequence.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseCleared  Phase = "cleared"
	PhaseFinished Phase = "finished"
	PhaseInvalid  Phase = "invalid"
)

// Game implements the box-pusher.
type Game struct {
	defs       []string
	index      int
	level      *Level
	levelErr   error
	phase      Phase
	tick       uint64
	solved     int
	delayMS    int
	transition *gween.Tween
	progress   float32 // Transition progress in [0, 1]

	tickRate int
	screenW  int
	screenH  int
	aspect   int
	layout   core.Layout
}

// Package-level settings applied on the next Reset, following the way the
// CLI configures registry-created games.
var (
	configuredLevels  []string
	selectedStart     int
	configuredDelayMS = DefaultAdvanceDelayMS
)

// SetLevels sets the level definitions used by new games.
// Nil restores the built-in levels.
func SetLevels(defs []string) {
	configuredLevels = defs
}

// SetStartLevel sets the starting level (1-based). 0 means the first level.
func SetStartLevel(level int) {
	selectedStart = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStart
}

// SetAdvanceDelay sets the pause in milliseconds between solved levels.
func SetAdvanceDelay(ms int) {
	configuredDelayMS = max(0, ms)
}

// BuiltinLevels returns the level definitions shipped with the binary.
func BuiltinLevels() []string {
	defs, err := ParseLevelList(strings.NewReader(builtinLevelFile))
	if err != nil {
		return nil
	}
	return defs
}

// New creates a box-pusher game. Levels are loaded on Reset.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("sokoban", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "sokoban"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sokoban"
}

// Reset loads the configured level list and starts at the selected level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.defs = configuredLevels
	if len(g.defs) == 0 {
		g.defs = BuiltinLevels()
	}
	g.delayMS = configuredDelayMS
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.aspect = cfg.Aspect
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.solved = 0

	g.index = 0
	if selectedStart > 0 && selectedStart <= len(g.defs) {
		g.index = selectedStart - 1
		selectedStart = 0 // Reset after use
	}

	g.loadLevel()
}

// Resize recomputes the layout for a new viewport.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.updateLayout()
}

// loadLevel rebuilds the grid of the current level from its definition.
func (g *Game) loadLevel() {
	g.transition = nil
	g.progress = 0

	if g.index >= len(g.defs) {
		g.level = nil
		g.phase = PhaseFinished
		return
	}

	lvl, err := ParseLevel(g.defs[g.index])
	if err != nil {
		g.level = nil
		g.levelErr = err
		g.phase = PhaseInvalid
		return
	}

	g.level = lvl
	g.levelErr = nil
	g.phase = PhasePlaying
	g.updateLayout()
}

func (g *Game) updateLayout() {
	if g.level == nil {
		return
	}
	hud := hudHeight(g.aspect)
	g.layout = core.NewLayout(g.screenW, g.screenH-hud, g.level.Width(), g.level.Height(), g.aspect)
	g.layout.OffY += hud
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseFinished, PhaseInvalid:
		return core.StepResult{State: g.State()}
	case PhaseCleared:
		g.stepTransition()
		return core.StepResult{State: g.State()}
	}

	// Every key press is one move, in the order pressed.
	for _, a := range input.Events() {
		if g.phase != PhasePlaying {
			break
		}
		if a == core.ActionRestart {
			g.loadLevel()
			continue
		}
		dir, ok := a.Direction()
		if !ok {
			continue
		}
		if res := g.level.AttemptMove(dir); res.Moved && res.Solved {
			g.solved++
			g.startTransition()
			break // Presses after the solving move are dropped.
		}
	}

	return core.StepResult{State: g.State()}
}

// startTransition holds the solved level on screen for the advance delay.
func (g *Game) startTransition() {
	g.phase = PhaseCleared
	if g.delayMS <= 0 {
		g.advance()
		return
	}
	g.transition = gween.New(0, 1, float32(g.delayMS)/1000, ease.Linear)
	g.progress = 0
}

func (g *Game) stepTransition() {
	if g.transition == nil {
		g.advance()
		return
	}
	progress, done := g.transition.Update(1 / float32(g.tickRate))
	g.progress = progress
	if done {
		g.advance()
	}
}

func (g *Game) advance() {
	g.index++
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.solved,
		GameOver: g.phase == PhaseInvalid,
		Finished: g.phase == PhaseFinished,
	}
}

// Level returns the level being played, or nil when none is loaded.
func (g *Game) Level() *Level {
	return g.level
}

// LevelIndex returns the 0-based index of the current level.
func (g *Game) LevelIndex() int {
	return g.index
}

// LevelCount returns the number of levels in the sequence.
func (g *Game) LevelCount() int {
	return len(g.defs)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Err returns the parse error of the current level, if any.
func (g *Game) Err() error {
	return g.levelErr
}
