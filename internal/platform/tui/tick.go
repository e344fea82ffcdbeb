// Package tui provides the Bubble Tea host for Road Jump. It supplies the
// terminal implementations of the run collaborators (spawner, display,
// start menu, scheduler) and maps keys to player input.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// deferredMsg carries a scheduled task back to the UI goroutine.
type deferredMsg struct {
	fn func()
}

// teaScheduler implements run.Scheduler on top of tea.Tick so deferred
// tasks run inside Update, never concurrently with it.
type teaScheduler struct {
	pending []tea.Cmd
}

// After queues fn to be delivered as a deferredMsg after d.
func (s *teaScheduler) After(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return deferredMsg{fn: fn}
	}))
}

// Drain returns the queued commands as one batch.
func (s *teaScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
