// Package snake implements a snake on a toroidal board. Running into the
// body does not end the game; it cuts the snake back to its minimum length.
package snake

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the speed preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the speed preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements the Snake game.
type Game struct {
	board      *Board
	cfg        config.SnakeConfig
	runtime    core.RuntimeConfig
	tick       uint64
	moveEvery  int // Platform ticks between board updates
	moveTicker int // Ticks since the last board update
	paused     bool
	layout     core.Layout
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		log.Warn("using default snake config", "path", configPath, "err", err)
		cfg = config.DefaultSnakeConfig()
	}
	config.ApplySnakePreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.moveEvery = config.TicksPerMove(cfg.Snake.MovesPerSecond, runtime.TickRate)

	g.board = NewBoard(cfg.Board.Width, cfg.Board.Height, cfg.Snake.StartLength,
		rand.New(rand.NewSource(runtime.Seed)))
	g.tick = 0
	g.moveTicker = 0
	g.paused = false
	g.updateLayout()
}

// Resize recomputes the layout for a new viewport.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.updateLayout()
}

func (g *Game) updateLayout() {
	hud := hudHeight(g.runtime.Aspect)
	g.layout = core.NewLayout(g.runtime.ScreenW, g.runtime.ScreenH-hud,
		g.board.Width(), g.board.Height(), g.runtime.Aspect)
	g.layout.OffY += hud
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// The latest heading is applied on the next board update.
	if dir, ok := input.Direction(); ok {
		g.board.SetDirection(dir)
	}

	g.moveTicker++
	if g.moveTicker >= g.moveEvery {
		g.moveTicker = 0
		g.board.Tick()
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state. The score is the body length.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.board.Len(),
		Paused: g.paused,
	}
}

// Board exposes the world for inspection.
func (g *Game) Board() *Board {
	return g.board
}

// Config returns the configuration the current run was started with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// MoveEveryTicks returns the platform ticks between board updates.
func (g *Game) MoveEveryTicks() int {
	return g.moveEvery
}
