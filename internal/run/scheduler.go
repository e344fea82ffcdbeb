package run

import "time"

// ImmediateScheduler runs every task synchronously on the caller's
// goroutine, ignoring the delay. It is the Machine's default.
type ImmediateScheduler struct{}

// After runs fn right away.
func (ImmediateScheduler) After(_ time.Duration, fn func()) {
	fn()
}

// ManualScheduler queues tasks until Flush is called.
type ManualScheduler struct {
	pending []scheduledTask
}

type scheduledTask struct {
	delay time.Duration
	fn    func()
}

// After queues fn.
func (s *ManualScheduler) After(d time.Duration, fn func()) {
	s.pending = append(s.pending, scheduledTask{delay: d, fn: fn})
}

// Pending returns the number of queued tasks.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Delays returns the delays of the queued tasks in scheduling order.
func (s *ManualScheduler) Delays() []time.Duration {
	out := make([]time.Duration, len(s.pending))
	for i, t := range s.pending {
		out[i] = t.delay
	}
	return out
}

// Flush runs all queued tasks in scheduling order. Tasks scheduled while
// flushing are queued for the next Flush.
func (s *ManualScheduler) Flush() {
	tasks := s.pending
	s.pending = nil
	for _, t := range tasks {
		t.fn()
	}
}
