package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessDate(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"Local afternoon", time.Date(2025, 10, 20, 14, 30, 0, 0, JakartaTZ), "2025-10-20"},
		{"UTC evening is next day in store time", time.Date(2025, 10, 20, 18, 0, 0, 0, time.UTC), "2025-10-21"},
		{"UTC just before store midnight", time.Date(2025, 10, 20, 16, 59, 0, 0, time.UTC), "2025-10-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BusinessDate(tt.input))
		})
	}
}

func TestBusinessDayStart(t *testing.T) {
	start := BusinessDayStart("2025-10-20")

	assert.Equal(t, "2025-10-20", BusinessDate(start))

	// A shift opened at 01:00 store time is still 18:00 UTC the previous
	// calendar day; the day window must include it.
	earlyShift := time.Date(2025, 10, 19, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-10-20", BusinessDate(earlyShift))
	assert.False(t, earlyShift.Before(start))
	assert.True(t, earlyShift.Before(start.Add(24*time.Hour)))
}

func TestParseISOTime(t *testing.T) {
	parsed, err := ParseISOTime("2025-10-13T09:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 9, parsed.UTC().Hour())

	parsed, err = ParseISOTime("2025-10-13 09:30:00")
	require.NoError(t, err)
	assert.Equal(t, 30, parsed.Minute())

	_, err = ParseISOTime("")
	assert.Error(t, err)

	_, err = ParseISOTime("not-a-time")
	assert.Error(t, err)
}

func TestMustParseDate(t *testing.T) {
	d := MustParseDate("2025-10-20")
	assert.Equal(t, time.October, d.Month())
	assert.Equal(t, 20, d.Day())
}
