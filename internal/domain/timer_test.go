package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCodec_RoundTripWholeMinutes(t *testing.T) {
	for _, m := range []int{1, 2, 5, 25, 60, 90, 1440} {
		assert.Equal(t, m, MinutesRemaining(ToSpan(float64(m))), "minutes=%d", m)
	}
}

func TestCodec_RoundsToNearestMinute(t *testing.T) {
	assert.Equal(t, 1, MinutesRemaining(90*time.Second-time.Millisecond))
	assert.Equal(t, 2, MinutesRemaining(90*time.Second))
	assert.Equal(t, 0, MinutesRemaining(20*time.Second))
	assert.Equal(t, -3, MinutesRemaining(-3*time.Minute))
}

func TestCodec_FractionalMinutes(t *testing.T) {
	assert.Equal(t, 30*time.Second, ToSpan(0.5))
	assert.Equal(t, 6*time.Millisecond, ToSpan(0.0001))
}

func TestIsWellFormed(t *testing.T) {
	now := time.Date(2025, time.May, 5, 10, 0, 0, 0, time.UTC)

	assert.False(t, IsWellFormed(nil))
	assert.False(t, IsWellFormed(&Timer{User: "alice", LengthMinutes: 25}))
	assert.False(t, IsWellFormed(&Timer{User: "alice", StartedAt: now}))
	assert.True(t, IsWellFormed(&Timer{User: "alice", StartedAt: now, LengthMinutes: 25}))
}

func TestIsActive_Boundaries(t *testing.T) {
	start := time.Date(2025, time.May, 5, 10, 0, 0, 0, time.UTC)
	tm := &Timer{User: "alice", StartedAt: start, LengthMinutes: 1}
	deadline := start.Add(time.Minute)

	assert.True(t, IsActive(tm, start))
	assert.True(t, IsActive(tm, deadline.Add(-2*time.Millisecond)))
	assert.False(t, IsActive(tm, deadline.Add(-time.Millisecond)))
	assert.False(t, IsActive(tm, deadline))

	assert.False(t, IsExpired(tm, deadline.Add(-time.Millisecond)))
	assert.True(t, IsExpired(tm, deadline))
	assert.True(t, IsExpired(tm, deadline.Add(time.Hour)))
}

func TestMalformedIsNeitherActiveNorExpired(t *testing.T) {
	now := time.Now()
	tm := &Timer{User: "bob", LengthMinutes: 5}

	assert.False(t, IsActive(tm, now))
	assert.False(t, IsExpired(tm, now))
}

func TestTimer_Remaining(t *testing.T) {
	start := time.Date(2025, time.May, 5, 10, 0, 0, 0, time.UTC)
	tm := Timer{StartedAt: start, LengthMinutes: 25}

	assert.Equal(t, 25, tm.Remaining(start))
	assert.Equal(t, 15, tm.Remaining(start.Add(10*time.Minute)))
	assert.Equal(t, -5, tm.Remaining(start.Add(30*time.Minute)))
	assert.Equal(t, start.Add(25*time.Minute), tm.ExpiresAt())
}

func TestToSpan_SaturatesInsteadOfWrapping(t *testing.T) {
	assert.Equal(t, time.Duration(math.MaxInt64), ToSpan(200000000))
	assert.Equal(t, time.Duration(math.MaxInt64), ToSpan(math.Inf(1)))
	assert.Equal(t, time.Duration(math.MinInt64), ToSpan(-200000000))

	start := time.Date(2025, time.May, 5, 10, 0, 0, 0, time.UTC)
	tm := &Timer{User: "alice", StartedAt: start, LengthMinutes: 200000000}
	assert.True(t, IsActive(tm, start.Add(time.Second)))
	assert.False(t, IsExpired(tm, start.Add(time.Second)))
}
