// Package tui runs blockfall in a terminal with Bubble Tea: the home menu,
// the game loop, name entry and the leaderboard, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrame caps the time one tick may advance the game, so a stalled
// terminal does not fast-forward gravity and lock delay.
const maxFrame = 100 * time.Millisecond

// TickMsg drives one simulation frame. Gen ties the tick to the game run
// that scheduled it; ticks from an earlier run are dropped so a restart
// never doubles the frame rate.
type TickMsg struct {
	Gen int
	At  time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after a frame at
// the given rate.
func tickCmd(gen, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

// frameDelta returns the time elapsed between two ticks, capped at maxFrame.
func frameDelta(last, now time.Time) time.Duration {
	if last.IsZero() {
		return 0
	}
	dt := now.Sub(last)
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrame)
}
