// Package tui provides the Bubble Tea integration: the terminal frame loop,
// key mapping, screen rendering and the SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one frame of the render loop.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified frames per second.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
