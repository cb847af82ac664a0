// Package tui provides the Bubble Tea host for snake: the frame loop, screen
// styling, the scoreboard and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is one host frame. The session decides whether it runs a tick.
type FrameMsg time.Time

// frameCmd requests the next frame after interval.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
