package pomodoro

import "time"

// PollerState is Idle or Armed.
type PollerState int

const (
	Idle PollerState = iota
	Armed
)

func (s PollerState) String() string {
	if s == Armed {
		return "armed"
	}
	return "idle"
}

// Poller owns the single pending wake of the service. It does no locking of
// its own: every method is called with the owning Service's mutex held.
type Poller struct {
	clock    Clock
	interval time.Duration
	wake     func(gen uint64)

	state PollerState
	timer Timer
	gen   uint64
}

func newPoller(clock Clock, interval time.Duration, wake func(gen uint64)) *Poller {
	return &Poller{clock: clock, interval: interval, wake: wake}
}

// Arm cancels any pending wake and schedules a new one.
func (p *Poller) Arm() {
	p.Cancel()
	p.gen++
	gen := p.gen
	p.timer = p.clock.AfterFunc(p.interval, func() { p.wake(gen) })
	p.state = Armed
}

// Cancel drops the pending wake, if any, and returns to Idle.
func (p *Poller) Cancel() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.state = Idle
}

// claim consumes the wake for gen. It fails when gen was superseded by a
// later Arm or cancelled; a timer that fired while Stop raced it ends here.
func (p *Poller) claim(gen uint64) bool {
	if p.state != Armed || gen != p.gen {
		return false
	}
	p.timer = nil
	p.state = Idle
	return true
}

// State reports whether a wake is pending.
func (p *Poller) State() PollerState {
	return p.state
}
