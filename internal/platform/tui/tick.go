// Package tui provides the Bubble Tea frontend for mines.
// It handles the terminal UI loop, input mapping and screen flow; all game
// rules live in the mines package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clockInterval is how often the game clock advances.
const clockInterval = time.Second

// TickMsg advances the game clock by one second.
// Gen identifies the game the tick was scheduled for, so ticks from a
// previous game are dropped after a restart.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
