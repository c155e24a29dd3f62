// services/unavailability.go
package services

import (
	"time"

	"bookacut-backend/utils"
)

// Shop hours. Unavailability edges are clamped into this window.
const (
	BusinessOpen  = 9 * time.Hour
	BusinessClose = 17 * time.Hour
)

// ResolveUnavailabilityWindow turns the raw admin form inputs into a
// concrete half-open [start, end) interval. An all-day edge resolves to
// business open/close for that date, and explicit times are clamped into
// business hours. ok is false when the dates are reversed or the resolved
// end is not strictly after the resolved start; callers treat that as a
// silent no-op.
func ResolveUnavailabilityWindow(
	startDate time.Time, startTime *time.Duration, startAllDay bool,
	endDate time.Time, endTime *time.Duration, endAllDay bool,
) (start, end time.Time, ok bool) {
	sDate := utils.BeginningOfDay(startDate)
	eDate := utils.BeginningOfDay(endDate)

	if eDate.Before(sDate) {
		return time.Time{}, time.Time{}, false
	}

	sTime := BusinessOpen
	if !startAllDay && startTime != nil {
		sTime = *startTime
	}
	eTime := BusinessClose
	if !endAllDay && endTime != nil {
		eTime = *endTime
	}

	start = sDate.Add(clampToBusinessHours(sTime))
	end = eDate.Add(clampToBusinessHours(eTime))

	if !end.After(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func clampToBusinessHours(d time.Duration) time.Duration {
	if d < BusinessOpen {
		return BusinessOpen
	}
	if d > BusinessClose {
		return BusinessClose
	}
	return d
}
