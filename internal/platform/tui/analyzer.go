package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiny-planets/internal/materials"
)

// AnalyzerKeyMap defines the key bindings of the material list.
type AnalyzerKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	MultiSelect key.Binding
	Material    key.Binding
	Dump        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k AnalyzerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.MultiSelect, k.Material, k.Dump, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k AnalyzerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.MultiSelect, k.Material},
		{k.Dump, k.Quit},
	}
}

// DefaultAnalyzerKeyMap returns default key bindings.
func DefaultAnalyzerKeyMap() AnalyzerKeyMap {
	return AnalyzerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select objects"),
		),
		MultiSelect: key.NewBinding(
			key.WithKeys(" ", "ctrl+@"),
			key.WithHelp("space", "add/remove objects"),
		),
		Material: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "select material"),
		),
		Dump: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "hierarchy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// AnalyzerModel shows the materials found by an analysis and keeps the
// object selection in sync with the rows picked.
type AnalyzerModel struct {
	analyzer *materials.Analyzer
	table    table.Model
	help     help.Model
	keys     AnalyzerKeyMap
	width    int
	height   int
	showDump bool
	quitting bool
}

// NewAnalyzerModel creates the view over a completed analysis.
func NewAnalyzerModel(a *materials.Analyzer, width, height int) AnalyzerModel {
	m := AnalyzerModel{
		analyzer: a,
		help:     help.New(),
		keys:     DefaultAnalyzerKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *AnalyzerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: " ", Width: 1},
		{Title: "Material", Width: 20},
		{Title: "Shader", Width: 22},
		{Title: "Path", Width: 30},
		{Title: "Objects", Width: 7},
	}
	// Give the path column whatever the window has left.
	if extra := m.width - 96; extra > 0 {
		columns[3].Width += extra
	}

	height := m.height - 10
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

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

func (m *AnalyzerModel) updateTableRows() {
	src := m.analyzer.Rows()
	rows := make([]table.Row, len(src))
	for i, r := range src {
		mark := " "
		if r.Selected {
			mark = "*"
		}
		rows[i] = table.Row{mark, r.Name, r.Shader, r.Path, fmt.Sprintf("%d", r.Objects)}
	}
	m.table.SetRows(rows)
}

// current returns the entry under the cursor.
func (m AnalyzerModel) current() *materials.Entry {
	entries := m.analyzer.Entries()
	i := m.table.Cursor()
	if i < 0 || i >= len(entries) {
		return nil
	}
	return entries[i]
}

// Init initializes the analyzer view.
func (m AnalyzerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the analyzer view.
func (m AnalyzerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			m.analyzer.SelectObjects(m.current(), false)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.MultiSelect):
			m.analyzer.SelectObjects(m.current(), true)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Material):
			m.analyzer.SelectMaterial(m.current())
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Dump):
			m.showDump = !m.showDump
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the material list or the hierarchy dump.
func (m AnalyzerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("Materials: %d", m.analyzer.Len())))
	if n := len(m.analyzer.Diagnostics()); n > 0 {
		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
		b.WriteString("  ")
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d object(s) with missing materials", n)))
	}
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	if m.showDump {
		b.WriteString(boxStyle.Render(strings.TrimRight(m.analyzer.Dump(), "\n")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(selStyle.Render(m.SelectionText()))
	b.WriteString("\n")
	b.WriteString(selStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// SelectionText describes the current selection in one line.
func (m AnalyzerModel) SelectionText() string {
	if mat := m.analyzer.ActiveMaterial(); mat != nil {
		return "Active: material " + mat.Name + " (" + mat.AssetPath + ")"
	}
	sel := m.analyzer.Selection()
	if len(sel) == 0 {
		return "Selection: none"
	}
	names := make([]string, len(sel))
	for i, o := range sel {
		names[i] = o.Name
	}
	return fmt.Sprintf("Selection (%d): %s", len(sel), strings.Join(names, ", "))
}

// RunAnalyzer runs the analyzer view until the user quits and returns the
// final object selection.
func RunAnalyzer(a *materials.Analyzer, width, height int) ([]*materials.Object, error) {
	p := tea.NewProgram(NewAnalyzerModel(a, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return a.Selection(), nil
}
