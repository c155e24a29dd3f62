package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func durationPtr(d time.Duration) *time.Duration { return &d }

func day(yearDay int) time.Time {
	return time.Date(2025, 6, yearDay, 0, 0, 0, 0, time.UTC)
}

func TestResolveUnavailabilityWindow_AllDay(t *testing.T) {
	start, end, ok := ResolveUnavailabilityWindow(
		day(2), nil, true,
		day(2), nil, true,
	)

	require.True(t, ok)
	assert.Equal(t, day(2).Add(BusinessOpen), start)
	assert.Equal(t, day(2).Add(BusinessClose), end)
}

func TestResolveUnavailabilityWindow_ExplicitTimes(t *testing.T) {
	start, end, ok := ResolveUnavailabilityWindow(
		day(2), durationPtr(10*time.Hour), false,
		day(2), durationPtr(14*time.Hour+30*time.Minute), false,
	)

	require.True(t, ok)
	assert.Equal(t, day(2).Add(10*time.Hour), start)
	assert.Equal(t, day(2).Add(14*time.Hour+30*time.Minute), end)
}

func TestResolveUnavailabilityWindow_ClampsToBusinessHours(t *testing.T) {
	start, end, ok := ResolveUnavailabilityWindow(
		day(2), durationPtr(6*time.Hour), false,
		day(2), durationPtr(22*time.Hour), false,
	)

	require.True(t, ok)
	assert.Equal(t, day(2).Add(BusinessOpen), start)
	assert.Equal(t, day(2).Add(BusinessClose), end)
}

func TestResolveUnavailabilityWindow_MissingTimesDefaultToEdges(t *testing.T) {
	// A nil time with allDay unset behaves like an all-day edge.
	start, end, ok := ResolveUnavailabilityWindow(
		day(2), nil, false,
		day(3), nil, false,
	)

	require.True(t, ok)
	assert.Equal(t, day(2).Add(BusinessOpen), start)
	assert.Equal(t, day(3).Add(BusinessClose), end)
}

func TestResolveUnavailabilityWindow_ReversedDates(t *testing.T) {
	_, _, ok := ResolveUnavailabilityWindow(
		day(3), nil, true,
		day(2), nil, true,
	)
	assert.False(t, ok)
}

func TestResolveUnavailabilityWindow_EndNotAfterStart(t *testing.T) {
	_, _, ok := ResolveUnavailabilityWindow(
		day(2), durationPtr(12*time.Hour), false,
		day(2), durationPtr(12*time.Hour), false,
	)
	assert.False(t, ok, "zero-length window")

	_, _, ok = ResolveUnavailabilityWindow(
		day(2), durationPtr(14*time.Hour), false,
		day(2), durationPtr(10*time.Hour), false,
	)
	assert.False(t, ok, "end before start")
}
