package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

func sendApp(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func TestAppMenuToGameAndBack(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty = "intermediate"
	m := NewAppModel(testDeps(t), cfg, testRuntime())

	m, _ = sendApp(t, m, enterKey)
	if m.current != screenGame {
		t.Fatalf("screen = %v, want game", m.current)
	}
	if m.game.difficulty != mines.Intermediate {
		t.Errorf("difficulty = %v, want intermediate", m.game.difficulty)
	}

	m, _ = sendApp(t, m, escKey)
	if m.current != screenMenu {
		t.Fatalf("screen = %v, want menu", m.current)
	}
	if m.menu.cursor != 1 {
		t.Errorf("menu cursor = %d, want last played difficulty", m.menu.cursor)
	}
}

func TestAppCustomFlow(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty = "custom"
	cfg.Custom = config.CustomConfig{Width: 10, Height: 8, Mines: 12}
	m := NewAppModel(testDeps(t), cfg, testRuntime())

	m, _ = sendApp(t, m, enterKey)
	if m.current != screenCustom {
		t.Fatalf("screen = %v, want custom form", m.current)
	}

	for range 3 {
		m, _ = sendApp(t, m, enterKey)
	}
	if m.current != screenGame {
		t.Fatalf("screen = %v, want game, form error %q", m.current, m.custom.Error())
	}
	d := m.game.difficulty
	if d.Width() != 10 || d.Height() != 8 || d.MineCount() != 12 {
		t.Errorf("difficulty = %v", d)
	}
	if m.cfg.Custom.Width != 10 {
		t.Errorf("custom values not remembered: %+v", m.cfg.Custom)
	}
}

func TestAppScoresAndQuit(t *testing.T) {
	m := NewAppModel(testDeps(t), config.Default(), testRuntime())

	m, _ = sendApp(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != screenScores {
		t.Fatalf("screen = %v, want scores", m.current)
	}
	if m.scores.Kind() != mines.KindBeginner {
		t.Errorf("scores kind = %v", m.scores.Kind())
	}

	m, _ = sendApp(t, m, escKey)
	if m.current != screenMenu {
		t.Fatalf("screen = %v, want menu", m.current)
	}

	m, cmd := sendApp(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should quit the app")
	}
	if m.View() != "" {
		t.Error("quitting app should render nothing")
	}
}

func TestAppStartScreens(t *testing.T) {
	deps := testDeps(t)
	cfg := config.Default()

	play := NewAppModelPlaying(deps, cfg, testRuntime(), mines.Expert)
	if play.current != screenGame || play.game.difficulty != mines.Expert {
		t.Errorf("playing model starts on %v", play.current)
	}

	scores := NewAppModelScores(deps, cfg, testRuntime(), mines.KindCustom)
	if scores.current != screenScores || scores.scores.Kind() != mines.KindCustom {
		t.Errorf("scores model starts on %v", scores.current)
	}
}

func TestAppResizeReachesScreens(t *testing.T) {
	m := NewAppModelPlaying(testDeps(t), config.Default(), testRuntime(), mines.Beginner)
	m, _ = sendApp(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.config.ScreenW != 120 || m.game.screen.Width() != 120 || m.game.screen.Height() != 39 {
		t.Errorf("resize not applied: app %dx%d, screen %dx%d",
			m.config.ScreenW, m.config.ScreenH, m.game.screen.Width(), m.game.screen.Height())
	}

	m, _ = sendApp(t, m, escKey)
	if m.menu.width != 120 {
		t.Errorf("menu width = %d, want 120", m.menu.width)
	}
}
