package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/storage"
)

type fakePacks struct {
	packs []storage.Pack
	err   error
}

func (f fakePacks) Packs() ([]storage.Pack, error) {
	return f.packs, f.err
}

func pressKey(m tea.Model, msg tea.KeyMsg) tea.Model {
	next, _ := m.Update(msg)
	return next
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPacksSelect(t *testing.T) {
	store := fakePacks{packs: []storage.Pack{
		{Name: "classic", Levels: 4},
		{Name: "micro", Levels: 2},
	}}
	var m tea.Model = NewPacksModel(store, 80, 24)

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	pm := m.(PacksModel)
	if got := pm.Selected(); got != "micro" {
		t.Errorf("Selected() = %q, want micro", got)
	}
	if pm.IsGoingBack() || pm.IsQuitting() {
		t.Error("selection should not set back or quit")
	}
}

func TestPacksBackAndQuit(t *testing.T) {
	m := pressKey(NewPacksModel(fakePacks{}, 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.(PacksModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	m = pressKey(NewPacksModel(fakePacks{}, 80, 24), runes("q"))
	if !m.(PacksModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestPacksEmptySelectDoesNothing(t *testing.T) {
	m := pressKey(NewPacksModel(nil, 80, 24), tea.KeyMsg{Type: tea.KeyEnter})
	pm := m.(PacksModel)
	if pm.Selected() != "" {
		t.Errorf("Selected() = %q, want empty", pm.Selected())
	}
	if pm.View() == "" {
		t.Error("empty browser should still render")
	}
}

func TestPacksLoadError(t *testing.T) {
	m := NewPacksModel(fakePacks{err: errors.New("disk gone")}, 80, 24)
	if m.loadErr == nil {
		t.Fatal("expected load error to be kept")
	}
	if m.View() == "" {
		t.Error("load error should be rendered")
	}
}
