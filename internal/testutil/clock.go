package testutil

import (
	"sync"
	"time"

	"github.com/ykvlv/pomodoro-bot/internal/pomodoro"
)

// FakeClock is a manually advanced pomodoro.Clock. Callbacks run on the
// goroutine calling Advance.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*FakeTimer
}

// NewFakeClock returns a clock frozen at now.
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) AfterFunc(d time.Duration, f func()) pomodoro.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &FakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by d, firing due timers in deadline order.
// Timers scheduled by a callback fire too if they fall due within d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.now = next.at
		next.fired = true
		c.mu.Unlock()
		next.f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// Pending counts timers that are neither fired nor stopped.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func (c *FakeClock) nextDue(target time.Time) *FakeTimer {
	var best *FakeTimer
	for _, t := range c.timers {
		if t.fired || t.stopped || t.at.After(target) {
			continue
		}
		if best == nil || t.at.Before(best.at) {
			best = t
		}
	}
	return best
}

// FakeTimer is returned by FakeClock.AfterFunc.
type FakeTimer struct {
	clock   *FakeClock
	at      time.Time
	f       func()
	fired   bool
	stopped bool
}

func (t *FakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
