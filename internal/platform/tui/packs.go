package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// PackLister is the part of the level store the browser needs.
type PackLister interface {
	Packs() ([]storage.Pack, error)
}

// PacksKeyMap defines the key bindings for the level pack browser.
type PacksKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PacksKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PacksKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultPacksKeyMap returns default key bindings.
func DefaultPacksKeyMap() PacksKeyMap {
	return PacksKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play pack"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PacksModel is the Bubble Tea model for the level pack browser.
type PacksModel struct {
	packs     []storage.Pack
	loadErr   error
	table     table.Model
	help      help.Model
	keys      PacksKeyMap
	width     int
	height    int
	selected  string
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewPacksModel creates a new pack browser. A nil store shows an empty list.
func NewPacksModel(store PackLister, width, height int) PacksModel {
	h := help.New()
	h.ShowAll = false

	m := PacksModel{
		keys:   DefaultPacksKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	if store != nil {
		m.packs, m.loadErr = store.Packs()
	}

	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with columns sized to the window.
func (m *PacksModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Pack", Width: 16},
		{Title: "Levels", Width: 7},
		{Title: "Imported", Width: 13},
		{Title: "Source", Width: 20},
	}

	// Give the source column whatever width is left.
	used := 16 + 7 + 13 + 8 // Columns plus cell padding
	if rest := m.width - 6 - used; rest > 20 {
		columns[3].Width = min(rest, 60)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded packs.
func (m *PacksModel) updateTableRows() {
	rows := make([]table.Row, len(m.packs))
	for i, p := range m.packs {
		imported := ""
		if !p.CreatedAt.IsZero() {
			imported = p.CreatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			p.Name,
			fmt.Sprintf("%d", p.Levels),
			imported,
			p.Source,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the browser.
func (m PacksModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m PacksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.packs) > 0 {
				m.selected = m.packs[m.table.Cursor()].Name
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m PacksModel) View() string {
	if m.quitting || m.goingBack || m.selected != "" {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("LEVEL PACKS", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	// Help bar
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m PacksModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not load level packs:\n" + m.loadErr.Error())
	}
	if len(m.packs) == 0 {
		return emptyStyle.Render("No level packs imported yet.\nRun 'arcade levels import <file>' to add one.")
	}

	return m.table.View()
}

// Selected returns the chosen pack name, or "" if none.
func (m PacksModel) Selected() string {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m PacksModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m PacksModel) IsQuitting() bool {
	return m.quitting
}

// PacksResult holds the outcome of the pack browser.
type PacksResult struct {
	Pack   string // Chosen pack, empty unless one was selected
	GoBack bool
}

// RunPacks runs the level pack browser.
func RunPacks(store PackLister, width, height int) (PacksResult, error) {
	model := NewPacksModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PacksResult{}, err
	}

	m, ok := finalModel.(PacksModel)
	if !ok {
		return PacksResult{}, nil
	}

	return PacksResult{Pack: m.Selected(), GoBack: m.IsGoingBack()}, nil
}
