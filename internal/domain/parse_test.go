package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	cases := map[string]float64{
		"25":     25,
		" 5 ":    5,
		"0.5":    0.5,
		".5":     0.5,
		"1.":     1,
		"0.0001": 0.0001,
		"0":      0,
	}
	for in, want := range cases {
		got, err := ParseMinutes(in)
		require.NoError(t, err, "input %q", in)
		assert.InDelta(t, want, got, 1e-9, "input %q", in)
	}
}

func TestParseMinutes_Errors(t *testing.T) {
	_, err := ParseMinutes("")
	assert.ErrorIs(t, err, ErrEmptyMinutes)

	for _, in := range []string{"1.2.3", "abc", "-5", "1e3", ".", "5m"} {
		_, err := ParseMinutes(in)
		assert.ErrorIs(t, err, ErrInvalidMinutes, "input %q", in)
	}
}

func TestParseMinutes_TooLarge(t *testing.T) {
	for _, in := range []string{"200000000", "153722868", "99999999999999999999"} {
		_, err := ParseMinutes(in)
		assert.ErrorIs(t, err, ErrTooManyMinutes, "input %q", in)
	}

	got, err := ParseMinutes("153722867")
	require.NoError(t, err)
	assert.Equal(t, 153722867.0, got)
}
