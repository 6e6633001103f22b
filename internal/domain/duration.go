package domain

import (
	"math"
	"time"
)

// MaxMinutes is the longest length a time.Duration can hold.
const MaxMinutes = float64(math.MaxInt64) / float64(time.Minute)

// ToSpan converts a minute count into a time.Duration, saturating at the
// largest representable span in either direction.
func ToSpan(minutes float64) time.Duration {
	switch {
	case minutes >= MaxMinutes:
		return time.Duration(math.MaxInt64)
	case minutes <= -MaxMinutes:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(minutes * float64(time.Minute))
}

// MinutesRemaining converts a span back to minutes, rounded to the nearest
// integer. Negative spans give negative minutes.
func MinutesRemaining(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}
