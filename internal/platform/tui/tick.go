// Package tui hosts arcade games in the terminal with Bubble Tea: the tick
// loop, key mapping, colour rendering and the menus around a game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one simulation tick of the hosted game.
type TickMsg time.Time

// tickInterval is the wall time of one tick. Non-positive rates run at 60.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
