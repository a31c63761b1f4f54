package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbot/internal/game"
)

// frameScheduler implements game.Scheduler on top of tea.Tick. Requests made
// during Update are queued as commands and handed back through Drain.
// Cancelled handles stay in flight and are ignored when they arrive.
type frameScheduler struct {
	interval  time.Duration
	next      game.Handle
	callbacks map[game.Handle]func()
	queued    []tea.Cmd
}

func newFrameScheduler(tickRate int) *frameScheduler {
	return &frameScheduler{
		interval:  frameInterval(tickRate),
		callbacks: make(map[game.Handle]func()),
	}
}

// RequestFrame implements game.Scheduler.
func (s *frameScheduler) RequestFrame(fn func()) game.Handle {
	s.next++
	h := s.next
	s.callbacks[h] = fn
	s.queued = append(s.queued, frameCmd(s.interval, s, h))
	return h
}

// CancelFrame implements game.Scheduler.
func (s *frameScheduler) CancelFrame(h game.Handle) {
	delete(s.callbacks, h)
}

// Fire runs the callback for a delivered frame. Returns false for frames that
// were cancelled or belong to another scheduler.
func (s *frameScheduler) Fire(msg FrameMsg) bool {
	if msg.owner != s {
		return false
	}
	fn, ok := s.callbacks[msg.Handle]
	if !ok {
		return false
	}
	delete(s.callbacks, msg.Handle)
	fn()
	return true
}

// Drain returns the commands queued since the last call.
func (s *frameScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}
