// Package tui provides the Bubble Tea viewer, the history browser and the
// SSH server for pathlab.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg advances the expansion animation. gen identifies the animation
// run that scheduled it so ticks from a paused or replaced run are dropped.
type tickMsg struct {
	gen int
	at  time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick at the given rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}
