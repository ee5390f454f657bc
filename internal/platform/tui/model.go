package tui

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/ledger"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// Deps are the collaborators shared by every screen.
type Deps struct {
	Ledger  *ledger.Ledger
	History *storage.History
	Logger  *log.Logger
}

// GameModel is the Bubble Tea model for one board.
type GameModel struct {
	deps       Deps
	difficulty mines.Difficulty
	session    *mines.Session
	config     core.RuntimeConfig
	screen     *core.Screen
	keyMapper  *KeyMapper
	help       help.Model
	cursorX    int
	cursorY    int
	gen        int  // incremented per game; stale ticks are dropped
	ticking    bool // a tick is scheduled for gen
	recorded   bool // result written to history

	naming    bool // prompting for a high-score name
	nameInput textinput.Model
	nameErr   string

	quitting   bool
	backToMenu bool
	showScores bool // a name was recorded; open the scoreboard
}

// NewGameModel creates a model with a fresh session for d.
func NewGameModel(d mines.Difficulty, deps Deps, cfg core.RuntimeConfig) GameModel {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "YourName"
	ti.CharLimit = 20
	ti.Width = 20

	m := GameModel{
		deps:       deps,
		difficulty: d,
		config:     cfg,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 0)),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		nameInput:  ti,
	}
	m.help.Width = cfg.ScreenW
	m.newSession()
	return m
}

// newSession discards the current board and starts a new one.
func (m *GameModel) newSession() {
	var opts []mines.Option
	if m.config.Seed != 0 {
		// Same seed + game number gives a reproducible sequence of boards.
		opts = append(opts, mines.WithRand(rand.New(rand.NewPCG(m.config.Seed, uint64(m.gen)))))
	}
	m.session = mines.NewSession(m.difficulty, opts...)
	m.gen++
	m.ticking = false
	m.recorded = false
	m.naming = false
	m.nameErr = ""
	m.cursorX = m.difficulty.Width() / 2
	m.cursorY = m.difficulty.Height() / 2
	m.deps.Logger.Debug("new game", "difficulty", m.difficulty.Label(), "gen", m.gen)
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	if m.naming {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input on the board.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dx, dy := action.Delta()
		m.cursorX = core.Clamp(m.cursorX+dx, 0, m.difficulty.Width()-1)
		m.cursorY = core.Clamp(m.cursorY+dy, 0, m.difficulty.Height()-1)

	case core.ActionReveal:
		m.session.Reveal(m.cursorX, m.cursorY)
		return m.afterMove()

	case core.ActionChord:
		m.session.ChordReveal(m.cursorX, m.cursorY)
		return m.afterMove()

	case core.ActionFlag:
		m.session.ToggleFlag(m.cursorX, m.cursorY)

	case core.ActionNewGame:
		m.newSession()

	case core.ActionBack:
		m.backToMenu = true
	}

	return m, nil
}

// afterMove starts the clock after the first reveal and handles the end of
// the game.
func (m GameModel) afterMove() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.session.Started() && !m.ticking && !m.session.Outcome().Terminal() {
		m.ticking = true
		cmd = tickCmd(m.gen, clockInterval)
	}

	if m.session.Outcome().Terminal() && !m.recorded {
		m.recorded = true
		m.deps.History.Record(m.session)
		m.deps.Logger.Info("game over",
			"difficulty", m.difficulty.Label(),
			"outcome", m.session.Outcome(),
			"seconds", m.session.Elapsed())

		if m.session.Outcome() == mines.Won && m.deps.Ledger != nil &&
			m.deps.Ledger.Qualifies(m.difficulty.Kind(), m.session.Elapsed()) {
			m.naming = true
			m.nameInput.SetValue("")
			focus := m.nameInput.Focus()
			return m, tea.Batch(cmd, focus)
		}
	}
	return m, cmd
}

// handleTick advances the clock while the game is running.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}
	if m.session.Outcome().Terminal() {
		m.ticking = false
		return m, nil
	}
	m.session.Tick()
	return m, tickCmd(m.gen, clockInterval)
}

// handleNameKey processes input while asking for a high-score name.
func (m GameModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.naming = false
		m.nameInput.Blur()
		return m, nil

	case tea.KeyEnter:
		_, err := m.deps.Ledger.Record(m.difficulty.Kind(), m.nameInput.Value(), m.session.Elapsed())
		var nameErr *ledger.NameError
		if errors.As(err, &nameErr) {
			m.nameErr = nameErr.Reason
			m.nameInput.SetValue("")
			return m, nil
		}
		m.naming = false
		m.nameInput.Blur()
		m.showScores = true
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// status returns the line under the board.
func (m GameModel) status() (string, core.Color) {
	switch m.session.Outcome() {
	case mines.Won:
		return fmt.Sprintf("You cleared the board in %d seconds!  n: play again", m.session.Elapsed()), core.ColorGreen
	case mines.Lost:
		return "Boom. n: try again  esc: menu", core.ColorBrightRed
	}
	if !m.session.Started() {
		return "The first cell you open is always safe", core.ColorGray
	}
	return "", core.ColorDefault
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := minScreenSize(m.difficulty.Width(), m.difficulty.Height())
	if m.screen.Width() < needW || m.screen.Height() < needH {
		drawTooSmall(m.screen, needW, needH+1)
		return RenderScreen(m.screen)
	}

	if m.naming {
		return lipgloss.Place(m.screen.Width(), m.screen.Height()+1,
			lipgloss.Center, lipgloss.Center, m.nameDialog())
	}

	view := newBoardView(m.screen.Width(), m.screen.Height(), m.difficulty.Width(), m.difficulty.Height())
	status, color := m.status()
	view.draw(m.screen, m.session.Snapshot(), status, color)

	cx, cy := -1, -1
	if !m.session.Outcome().Terminal() {
		cx, cy = view.tile(m.cursorX, m.cursorY)
	}
	board := renderScreen(m.screen, cx, cy)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return board + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// nameDialog renders the high-score name prompt.
func (m GameModel) nameDialog() string {
	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(title.Render("NEW HIGH SCORE"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s in %d seconds\n\n", m.difficulty.Label(), m.session.Elapsed()))
	b.WriteString("Enter your name:\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	if m.nameErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.nameErr))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("enter: save  esc: skip"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)
	return box.Render(b.String())
}

// Session exposes the running session.
func (m GameModel) Session() *mines.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsScoreboard returns true once a high score has been recorded.
func (m GameModel) WantsScoreboard() bool {
	return m.showScores
}

// Naming reports whether the high-score prompt is open.
func (m GameModel) Naming() bool {
	return m.naming
}

var _ tea.Model = GameModel{}
