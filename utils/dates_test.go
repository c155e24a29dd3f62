package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2025, 6, 2, 15, 45, 30, 123, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), BeginningOfDay(in))
}

func TestTimeOfDay(t *testing.T) {
	in := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, 9*time.Hour+30*time.Minute, TimeOfDay(in))

	midnight := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Duration(0), TimeOfDay(midnight))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 5, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(start, end))
}
