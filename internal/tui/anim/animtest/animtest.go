// Package animtest provides a manual clock and frame loop for testing code
// built on package anim.
package animtest

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Clock is a manually advanced clock.
type Clock struct {
	now time.Time
}

// NewClock returns a clock fixed at an arbitrary instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

// Now implements anim.Clock.
func (c *Clock) Now() time.Time { return c.now }

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Loop stands in for the bubbletea event loop. Scheduled frames fire at the
// clock time when the returned command runs instead of sleeping.
type Loop struct {
	Clock     *Clock
	Scheduled int

	queue []tea.Cmd
}

// NewLoop returns a loop with a fresh clock.
func NewLoop() *Loop {
	return &Loop{Clock: NewClock()}
}

// Schedule implements anim.Scheduler.
func (l *Loop) Schedule(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	l.Scheduled++
	return func() tea.Msg {
		return fn(l.Clock.Now())
	}
}

// Enqueue adds a command to run on the next Step.
func (l *Loop) Enqueue(cmd tea.Cmd) {
	if cmd != nil {
		l.queue = append(l.queue, cmd)
	}
}

// Pending reports whether commands are waiting to run.
func (l *Loop) Pending() bool { return len(l.queue) > 0 }

// Step advances the clock by d, runs queued commands and feeds each message
// to update. Commands returned by update are queued for the next Step. It
// returns the messages delivered.
func (l *Loop) Step(d time.Duration, update func(tea.Msg) tea.Cmd) []tea.Msg {
	l.Clock.Advance(d)
	queue := l.queue
	l.queue = nil

	var delivered []tea.Msg
	for _, cmd := range queue {
		for _, msg := range Drain(cmd) {
			delivered = append(delivered, msg)
			l.Enqueue(update(msg))
		}
	}
	return delivered
}

// Run steps until no commands are pending or maxSteps is reached, and
// returns the number of steps taken.
func (l *Loop) Run(d time.Duration, maxSteps int, update func(tea.Msg) tea.Cmd) int {
	steps := 0
	for l.Pending() && steps < maxSteps {
		l.Step(d, update)
		steps++
	}
	return steps
}

// Drain runs cmd and flattens batched results into a message list.
func Drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, inner := range batch {
			out = append(out, Drain(inner)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
