package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/sokoban"
)

// levelListHeight is the number of level rows shown at once.
const levelListHeight = 12

// SokobanSelection holds the user's choice from the Sokoban menu.
type SokobanSelection struct {
	Level int // 0 = start from the first level, otherwise 1-based
}

// levelInfo summarises one level definition for the picker.
type levelInfo struct {
	width, height int
	goals         int
	err           error
}

// SokobanLevelModel lets users start from the first level or pick one.
type SokobanLevelModel struct {
	levels        []levelInfo
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	selection     SokobanSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewSokobanLevelModel creates the selector for the given level definitions.
func NewSokobanLevelModel(defs []string, width, height int) SokobanLevelModel {
	levels := make([]levelInfo, len(defs))
	for i, def := range defs {
		lvl, err := sokoban.ParseLevel(def)
		if err != nil {
			levels[i] = levelInfo{err: err}
			continue
		}
		levels[i] = levelInfo{width: lvl.Width(), height: lvl.Height(), goals: lvl.GoalCount()}
	}

	return SokobanLevelModel{
		levels:   levels,
		width:    width,
		height:   height,
		choosing: true,
	}
}

// Init initializes the model.
func (m SokobanLevelModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SokobanLevelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SokobanLevelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleStartKey(action)
}

func (m SokobanLevelModel) handleStartKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: Play, Select Level
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // From the first level
			m.choosing = false
			m.selection = SokobanSelection{Level: 0}
			return m, tea.Quit
		case 1: // Select Level
			m.inLevelSelect = true
			m.levelCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SokobanLevelModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		if len(m.levels) == 0 {
			return m, nil
		}
		m.choosing = false
		m.selection = SokobanSelection{
			Level: m.levelCursor + 1, // 1-indexed
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the start/level selection.
func (m SokobanLevelModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewStart()
}

func (m SokobanLevelModel) viewStart() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S O K O B A N"), m.width))
	b.WriteString("\n\n")

	options := []string{
		fmt.Sprintf("Play (%d levels)", len(m.levels)),
		"Select Level...",
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SokobanLevelModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	// Scroll so the cursor stays inside the visible window.
	first := max(0, min(m.levelCursor-levelListHeight/2, len(m.levels)-levelListHeight))
	last := min(len(m.levels), first+levelListHeight)

	for i := first; i < last; i++ {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		info := m.levels[i]
		desc := fmt.Sprintf("%dx%d, %d goals", info.width, info.height, info.goals)
		if info.err != nil {
			desc = "invalid: " + info.err.Error()
		}
		b.WriteString(centerText(fmt.Sprintf("%s%3d. %s", cursor, i+1, desc), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SokobanLevelModel) Selected() *SokobanSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SokobanLevelModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SokobanLevelModel) WantsBack() bool {
	return m.back
}

// RunSokobanLevelSelector runs the Sokoban start selection and returns it.
// A nil selection means the user backed out or quit.
func RunSokobanLevelSelector(defs []string, cfg core.RuntimeConfig) (*SokobanSelection, error) {
	model := NewSokobanLevelModel(defs, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SokobanLevelModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
