package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var menuLevels = []string{
	"#####|#@$.#|#####",
	"######|#@ $.#|######",
	"#####|# $.#|#####",
}

func TestSokobanSelectorPlayFromStart(t *testing.T) {
	m := pressKey(NewSokobanLevelModel(menuLevels, 80, 24), tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.(SokobanLevelModel).Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Level != 0 {
		t.Errorf("Level = %d, want 0", sel.Level)
	}
}

func TestSokobanSelectorPickLevel(t *testing.T) {
	var m tea.Model = NewSokobanLevelModel(menuLevels, 80, 24)
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyDown})  // Select Level...
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter}) // open list
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyDown}) // clamped at the last level
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.(SokobanLevelModel).Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Level != 3 {
		t.Errorf("Level = %d, want 3", sel.Level)
	}
}

func TestSokobanSelectorBack(t *testing.T) {
	var m tea.Model = NewSokobanLevelModel(menuLevels, 80, 24)
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEsc}) // leave the list

	sm := m.(SokobanLevelModel)
	if sm.inLevelSelect || sm.WantsBack() {
		t.Fatal("esc in the list should return to the start options")
	}

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	sm = m.(SokobanLevelModel)
	if !sm.WantsBack() {
		t.Error("esc on the start options should go back")
	}
	if sm.Selected() != nil {
		t.Error("backing out should not select")
	}
}

func TestSokobanSelectorShowsInvalidLevels(t *testing.T) {
	m := NewSokobanLevelModel(menuLevels, 80, 24)
	if m.levels[2].err == nil {
		t.Error("level without a player should be flagged")
	}
	if m.levels[0].goals != 1 || m.levels[1].width != 6 {
		t.Errorf("unexpected level info: %+v %+v", m.levels[0], m.levels[1])
	}
}
