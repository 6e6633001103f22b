package domain

import "time"

// DefaultMinutes is the session length used when the caller gives none.
const DefaultMinutes = 25

// activeTolerance keeps a record from flapping between active and expired
// within one poll tick.
const activeTolerance = time.Millisecond

// Timer is one user's pomodoro session as persisted in the store.
type Timer struct {
	User          string
	StartedAt     time.Time
	LengthMinutes float64
	NotifyTarget  string // opaque, owned by the chat host
}

// ExpiresAt returns StartedAt + LengthMinutes.
func (t Timer) ExpiresAt() time.Time {
	return t.StartedAt.Add(ToSpan(t.LengthMinutes))
}

// Remaining returns the whole minutes left at now. Negative once expired.
func (t Timer) Remaining(now time.Time) int {
	return MinutesRemaining(t.ExpiresAt().Sub(now))
}

// IsWellFormed reports whether t is present and carries both a start time
// and a non-zero length.
func IsWellFormed(t *Timer) bool {
	return t != nil && !t.StartedAt.IsZero() && t.LengthMinutes != 0
}

// IsActive reports whether t is well formed and not yet due.
func IsActive(t *Timer, now time.Time) bool {
	if !IsWellFormed(t) {
		return false
	}
	return now.Before(t.ExpiresAt().Add(-activeTolerance))
}

// IsExpired reports whether t is well formed and due at now.
// A record within activeTolerance of its deadline is neither active nor expired.
func IsExpired(t *Timer, now time.Time) bool {
	if !IsWellFormed(t) {
		return false
	}
	return !now.Before(t.ExpiresAt())
}
