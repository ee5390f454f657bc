package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

func sendScores(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestScoreboardShowsEntries(t *testing.T) {
	deps := testDeps(t)
	deps.Ledger.Record(mines.KindBeginner, "Ann", 12)
	deps.Ledger.Record(mines.KindBeginner, "Bo", 9)

	m := NewScoreboardModel(deps.Ledger, deps.History, mines.KindBeginner, 100, 30)
	if len(m.entries) != 2 || m.entries[0].Name != "Bo" {
		t.Fatalf("entries = %+v", m.entries)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Beginner", "Bo beat beginner in 9 seconds.", "No games played yet"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardSwitchKind(t *testing.T) {
	deps := testDeps(t)
	deps.Ledger.Record(mines.KindBeginner, "Ann", 12)

	m := NewScoreboardModel(deps.Ledger, nil, mines.KindBeginner, 60, 30)
	m = sendScores(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Kind() != mines.KindIntermediate || len(m.entries) != 0 {
		t.Errorf("kind = %v entries = %d", m.Kind(), len(m.entries))
	}

	m = sendScores(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = sendScores(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Kind() != mines.KindCustom {
		t.Errorf("kind = %v, want custom after wrapping", m.Kind())
	}

	view := m.View()
	if !strings.Contains(view, "No scores recorded yet.") || !strings.Contains(view, "History disabled") {
		t.Errorf("unexpected narrow view:\n%s", view)
	}
}

func TestScoreboardClear(t *testing.T) {
	deps := testDeps(t)
	deps.Ledger.Record(mines.KindExpert, "Ann", 120)

	m := NewScoreboardModel(deps.Ledger, deps.History, mines.KindExpert, 100, 30)
	m = sendScores(t, m, runeKey('c'))

	if len(m.entries) != 0 {
		t.Errorf("entries = %+v, want none", m.entries)
	}
	if _, err := os.Stat(deps.Ledger.Path(mines.KindExpert)); !os.IsNotExist(err) {
		t.Errorf("score file still present: %v", err)
	}
}

func TestScoreboardStats(t *testing.T) {
	deps := testDeps(t)
	winGame(t, NewGameModel(mines.Beginner, deps, testRuntime()))

	sb := NewScoreboardModel(deps.Ledger, deps.History, mines.KindBeginner, 100, 30)
	if sb.stats == nil || sb.stats.Won != 1 {
		t.Fatalf("stats = %+v", sb.stats)
	}
	if !strings.Contains(sb.View(), "Played 1  Won 1  Lost 0") {
		t.Errorf("view missing stats:\n%s", sb.View())
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, nil, mines.KindBeginner, 100, 30)
	if !sendScores(t, m, escKey).IsGoingBack() {
		t.Error("esc should go back")
	}
	if !sendScores(t, m, runeKey('q')).IsQuitting() {
		t.Error("q should quit")
	}
}
