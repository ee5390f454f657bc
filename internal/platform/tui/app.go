package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// screen identifies which sub-model is active.
type screen int

const (
	screenMenu screen = iota
	screenCustom
	screenGame
	screenScores
)

// AppModel manages the full flow: menu -> game -> scoreboard -> menu.
type AppModel struct {
	deps     Deps
	cfg      config.Config
	config   core.RuntimeConfig
	current  screen
	lastKind mines.Kind
	menu     MenuModel
	custom   CustomModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewAppModel opens on the menu with the configured difficulty selected.
func NewAppModel(deps Deps, cfg config.Config, rc core.RuntimeConfig) AppModel {
	kind, err := cfg.Kind()
	if err != nil {
		kind = mines.KindBeginner
	}
	return AppModel{
		deps:     deps,
		cfg:      cfg,
		config:   rc,
		current:  screenMenu,
		lastKind: kind,
		menu:     NewMenuModel(kind, rc),
	}
}

// NewAppModelPlaying opens directly on a board of d.
func NewAppModelPlaying(deps Deps, cfg config.Config, rc core.RuntimeConfig, d mines.Difficulty) AppModel {
	m := NewAppModel(deps, cfg, rc)
	m.startGame(d)
	return m
}

// NewAppModelScores opens directly on the scoreboard for kind.
func NewAppModelScores(deps Deps, cfg config.Config, rc core.RuntimeConfig, kind mines.Kind) AppModel {
	m := NewAppModel(deps, cfg, rc)
	m.openScores(kind)
	return m
}

// Init initializes the active screen.
func (m AppModel) Init() tea.Cmd {
	switch m.current {
	case screenCustom:
		return m.custom.Init()
	case screenGame:
		return m.game.Init()
	case screenScores:
		return m.scores.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active screen and switches screens.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenCustom:
		return m.updateCustom(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.openScores(m.lastKind)
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		sel := m.menu.Selected()
		if sel.Choice == ChoiceCustom {
			c := m.cfg.Custom
			m.custom = NewCustomModel(c.Width, c.Height, c.Mines, m.config.ScreenW, m.config.ScreenH)
			m.current = screenCustom
			return m, m.custom.Init()
		}
		m.startGame(sel.Difficulty)
		return m, m.game.Init()
	}

	return m, cmd
}

// updateCustom handles updates when the custom form is open.
func (m AppModel) updateCustom(msg tea.Msg) (tea.Model, tea.Cmd) {
	newCustom, cmd := m.custom.Update(msg)
	if customModel, ok := newCustom.(CustomModel); ok {
		m.custom = customModel
	}

	switch {
	case m.custom.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.custom.IsGoingBack():
		m.openMenu()
		return m, m.menu.Init()

	case m.custom.Selected() != nil:
		d := *m.custom.Selected()
		// Remember the values for the next time the form opens.
		m.cfg.Custom = config.CustomConfig{Width: d.Width(), Height: d.Height(), Mines: d.MineCount()}
		m.startGame(d)
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		m.openMenu()
		return m, m.menu.Init()

	case m.game.WantsScoreboard():
		m.openScores(m.lastKind)
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scoresModel, ok := newScores.(ScoreboardModel); ok {
		m.scores = scoresModel
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.scores.IsGoingBack():
		m.openMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *AppModel) openMenu() {
	m.menu = NewMenuModel(m.lastKind, m.config)
	m.current = screenMenu
}

func (m *AppModel) startGame(d mines.Difficulty) {
	m.lastKind = d.Kind()
	m.game = NewGameModel(d, m.deps, m.config)
	m.current = screenGame
}

func (m *AppModel) openScores(kind mines.Kind) {
	m.scores = NewScoreboardModel(m.deps.Ledger, m.deps.History, kind, m.config.ScreenW, m.config.ScreenH)
	m.current = screenScores
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenCustom:
		return m.custom.View()
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Run runs the application until the player quits.
func Run(model AppModel) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
