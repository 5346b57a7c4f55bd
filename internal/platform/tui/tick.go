// Package tui provides the Bubble Tea host for the runner: the frame
// ticker, key and mouse mapping, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to step the Director by one frame.
type TickMsg time.Time

// frameInterval is the wall-clock spacing of frames. The simulated duration
// of each frame comes from the Director's FrameClock, not from this value.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

func frameTick(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
