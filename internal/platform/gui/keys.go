package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// binding maps a set of keys to one game action.
type binding struct {
	keys   []ebiten.Key
	action core.Action
}

// defaultBindings mirrors the terminal key map: arrows (plus WASD),
// R restarts, P pauses, Esc/Q quits.
var defaultBindings = []binding{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, core.ActionQuit},
}

// collectInput records into frame every action whose key was pressed this
// tick. Reports whether quit was requested.
func collectInput(frame *core.InputFrame, justPressed func(ebiten.Key) bool) (quit bool) {
	for _, b := range defaultBindings {
		for _, k := range b.keys {
			if !justPressed(k) {
				continue
			}
			if b.action == core.ActionQuit {
				quit = true
			} else {
				frame.Set(b.action)
			}
			break
		}
	}
	return quit
}

// pollInput reads the keyboard through inpututil.
func pollInput(frame *core.InputFrame) bool {
	return collectInput(frame, inpututil.IsKeyJustPressed)
}
