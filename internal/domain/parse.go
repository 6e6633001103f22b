package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmptyMinutes   = errors.New("empty minutes")
	ErrInvalidMinutes = errors.New("invalid minutes")
	ErrTooManyMinutes = errors.New("too many minutes")
)

// ParseMinutes parses a decimal minute count like "25", "0.5" or "1.25".
func ParseMinutes(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyMinutes
	}
	if !isDecimal(s) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidMinutes, s)
	}
	m, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(m, 0) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidMinutes, s)
	}
	if m >= MaxMinutes {
		return 0, fmt.Errorf("%w: max %.0f", ErrTooManyMinutes, MaxMinutes)
	}
	return m, nil
}

// isDecimal accepts digits with at most one dot.
func isDecimal(s string) bool {
	dots, digits := 0, 0
	for _, r := range s {
		switch {
		case r == '.':
			dots++
		case r >= '0' && r <= '9':
			digits++
		default:
			return false
		}
	}
	return dots <= 1 && digits > 0
}
