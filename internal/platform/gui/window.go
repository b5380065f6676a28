// Package gui hosts arcade games in an ebiten window. Games draw through the
// same core.Canvas calls as in the terminal, in pixel units.
package gui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Default window size in pixels for windowed mode.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Options tweak how a game is hosted in a window.
type Options struct {
	// Windowed opens a window of ScreenW x ScreenH pixels instead of going
	// fullscreen.
	Windowed bool
}

// window implements ebiten.Game around a registry.Game.
type window struct {
	game  registry.Game
	input core.InputFrame
	state core.GameState
	w, h  int
}

// Update advances the game by one tick.
func (win *window) Update() error {
	if pollInput(&win.input) {
		return ebiten.Termination
	}

	win.state = win.game.Step(win.input).State
	win.input.Clear()

	if win.state.Finished {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the game into the window.
func (win *window) Draw(screen *ebiten.Image) {
	win.game.Render(NewCanvas(screen))
}

// Layout keeps one canvas unit per pixel and forwards size changes.
func (win *window) Layout(outsideW, outsideH int) (int, int) {
	if outsideW != win.w || outsideH != win.h {
		win.w, win.h = outsideW, outsideH
		win.game.Resize(outsideW, outsideH)
	}
	return outsideW, outsideH
}

// Run opens a window and plays game until the user quits or the game
// reports Finished. It returns the game's final state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	cfg.Aspect = core.PixelAspect

	if opts.Windowed {
		if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
			cfg.ScreenW, cfg.ScreenH = DefaultWidth, DefaultHeight
		}
		ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	} else {
		ebiten.SetFullscreen(true)
		cfg.ScreenW, cfg.ScreenH = ebiten.ScreenSizeInFullscreen()
		if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
			cfg.ScreenW, cfg.ScreenH = DefaultWidth, DefaultHeight
		}
	}
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TickRate)

	game.Reset(cfg)
	win := &window{
		game:  game,
		input: core.NewInputFrame(),
		state: game.State(),
		w:     cfg.ScreenW,
		h:     cfg.ScreenH,
	}

	log.Debug("opening window", "game", game.ID(), "w", cfg.ScreenW, "h", cfg.ScreenH, "fullscreen", !opts.Windowed)
	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return win.state, fmt.Errorf("gui: %w", err)
	}
	return win.state, nil
}
