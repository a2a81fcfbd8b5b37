package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Minute, ParseDuration("30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}

func TestTruncateToDate(t *testing.T) {
	stamp := time.Date(2026, 8, 28, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), TruncateToDate(stamp))
}

func TestSameDate(t *testing.T) {
	morning := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 28, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(morning, evening))
	assert.False(t, SameDate(evening, nextDay))
}
