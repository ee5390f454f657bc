package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/vovakirdan/tui-mines/internal/ledger"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show difficulty sidebar
	sidebarWidth       = 20 // Width of difficulty sidebar
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Clear    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextKind key.Binding
	PrevKind key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextKind, k.PrevKind, k.Clear, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextKind, k.PrevKind},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev difficulty"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next difficulty"),
		),
		NextKind: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		PrevKind: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear scores"),
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

// ScoreboardModel is the Bubble Tea model for the high-score screen.
type ScoreboardModel struct {
	kinds       []mines.Kind
	kindCursor  int
	ledger      *ledger.Ledger
	history     *storage.History
	entries     []ledger.Entry
	stats       *storage.Stats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show difficulty sidebar
}

// NewScoreboardModel creates a scoreboard opened on kind.
func NewScoreboardModel(l *ledger.Ledger, h *storage.History, kind mines.Kind, width, height int) ScoreboardModel {
	hm := help.New()
	hm.ShowAll = false
	hm.Width = width

	m := ScoreboardModel{
		kinds:       mines.Kinds(),
		ledger:      l,
		history:     h,
		keys:        DefaultScoreboardKeyMap(),
		help:        hm,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, k := range m.kinds {
		if k == kind {
			m.kindCursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

// Kind returns the difficulty currently shown.
func (m ScoreboardModel) Kind() mines.Kind {
	return m.kinds[m.kindCursor]
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 20},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(ledger.MaxEntries+1),
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

// load reads the entries and statistics for the current kind.
func (m *ScoreboardModel) load() {
	m.entries = nil
	if m.ledger != nil {
		m.entries = m.ledger.Load(m.Kind())
	}
	m.stats = m.history.Stats(m.Kind())
	m.updateTableRows()
}

// updateTableRows updates the table with current entries.
func (m *ScoreboardModel) updateTableRows() {
	rows := lo.Map(m.entries, func(e ledger.Entry, i int) table.Row {
		return table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%ds", e.Seconds),
		}
	})
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.NextKind), key.Matches(msg, m.keys.Right):
			m.kindCursor = (m.kindCursor + 1) % len(m.kinds)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevKind), key.Matches(msg, m.keys.Left):
			m.kindCursor = (m.kindCursor - 1 + len(m.kinds)) % len(m.kinds)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			if m.ledger != nil {
				m.ledger.Clear(m.Kind())
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("HIGH SCORES - %s", kindTitle(m.Kind()))
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// kindTitle capitalizes a kind name for headings.
func kindTitle(k mines.Kind) string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// renderWideLayout renders the scoreboard with a difficulty sidebar.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Difficulty\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, k := range m.kinds {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.kindCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + kindTitle(k)))
		sidebar.WriteString("\n")
	}

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	right := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(m.renderTableContent()),
		panelStyle.Render(m.renderStats()),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(sidebar.String()), "  ", right)
}

// renderNarrowLayout renders the scoreboard with difficulty tabs above the
// table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.kinds))
	for i, k := range m.kinds {
		if i == m.kindCursor {
			tabs[i] = activeTabStyle.Render(kindTitle(k))
		} else {
			tabs[i] = tabStyle.Render(" " + kindTitle(k) + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", kindTitle(m.Kind()))
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(m.renderStats())

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No scores recorded yet.\nClear a board to set a high score!")
	}

	lines := lo.Map(m.entries, func(e ledger.Entry, _ int) string { return e.String() })
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.table.View() + "\n\n" + dim.Render(strings.Join(lines, "\n"))
}

// renderStats renders the history panel, if history is kept.
func (m ScoreboardModel) renderStats() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if !m.history.Enabled() {
		return dim.Render("History disabled")
	}
	st := m.stats
	if st == nil || st.Played == 0 {
		return dim.Render("No games played yet")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Played %d  Won %d  Lost %d  (%.0f%%)", st.Played, st.Won, st.Lost, st.WinRate()*100)
	if st.Won > 0 {
		fmt.Fprintf(&b, "\nBest %ds  Average %.1fs", st.BestSeconds, st.AvgSeconds)
	}
	if !st.LastPlayed.IsZero() {
		fmt.Fprintf(&b, "\nLast played %s", st.LastPlayed.Format("Jan 02 15:04"))
	}
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
