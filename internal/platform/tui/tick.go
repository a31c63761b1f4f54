// Package tui hosts brickbot in a terminal through Bubble Tea. It supplies
// the frame scheduler, the renderer and the input mapping the game core needs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbot/internal/game"
)

// FrameMsg is sent when a requested frame is due.
type FrameMsg struct {
	Handle game.Handle
	owner  *frameScheduler
}

// frameCmd returns a Bubble Tea command that delivers one frame after interval.
func frameCmd(interval time.Duration, owner *frameScheduler, h game.Handle) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FrameMsg{Handle: h, owner: owner}
	})
}

// frameInterval converts a tick rate to a frame duration.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 1
	}
	return time.Second / time.Duration(tickRate)
}
