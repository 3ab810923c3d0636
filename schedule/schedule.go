// Package schedule runs a function after a fixed delay and lets a newer
// submission cancel an older one that has not started yet.
package schedule

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrSuperseded is returned by Wait when a newer task replaced this one.
	ErrSuperseded = errors.New("schedule: superseded by a newer task")
	// ErrCancelled is returned by Wait after an explicit Cancel.
	ErrCancelled = errors.New("schedule: cancelled")
)

type state int

const (
	pending state = iota
	running
	finished
	dropped
)

// Task is one scheduled call.
type Task struct {
	s     *Scheduler
	timer *time.Timer
	done  chan struct{}
	state state
	err   error
}

// Done is closed once the task has run or been dropped.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes, is dropped, or ctx ends.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel drops t if it has not started yet. Unlike Scheduler.Cancel it
// never touches a newer task.
func (t *Task) Cancel() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.s.drop(t, ErrCancelled)
}

// Scheduler holds at most one pending task.
type Scheduler struct {
	delay time.Duration

	mu      sync.Mutex
	pending *Task
}

// New returns a Scheduler that delays every task by delay.
func New(delay time.Duration) *Scheduler {
	if delay < 0 {
		delay = 0
	}
	return &Scheduler{delay: delay}
}

// Schedule arms fn to run after the delay. A task that is still waiting
// is dropped with ErrSuperseded. Tasks that already started are left alone.
func (s *Scheduler) Schedule(fn func()) *Task {
	t := &Task{s: s, done: make(chan struct{})}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.drop(s.pending, ErrSuperseded)
	}
	s.pending = t
	t.timer = time.AfterFunc(s.delay, func() { s.run(t, fn) })
	return t
}

// Cancel drops the pending task, if any. It reports whether one was dropped.
func (s *Scheduler) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return false
	}
	return s.drop(s.pending, ErrCancelled)
}

// Pending reports whether a task is waiting for its timer.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// drop must be called with s.mu held.
func (s *Scheduler) drop(t *Task, reason error) bool {
	if s.pending == t {
		s.pending = nil
	}
	if t.state != pending {
		return false
	}
	t.timer.Stop()
	t.state = dropped
	t.err = reason
	close(t.done)
	return true
}

func (s *Scheduler) run(t *Task, fn func()) {
	s.mu.Lock()
	if t.state != pending {
		// Dropped between the timer firing and us taking the lock.
		s.mu.Unlock()
		return
	}
	t.state = running
	if s.pending == t {
		s.pending = nil
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		t.state = finished
		s.mu.Unlock()
		close(t.done)
	}()
	fn()
}
