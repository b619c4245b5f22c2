package domain

import (
	"time"

	"github.com/m04kA/TennisCourt-BookingService/pkg/types"
)

// BookingWindow is the inclusive calendar-date range during which
// reservations are accepted
type BookingWindow struct {
	Start time.Time
	End   time.Time
}

// Contains returns true if the date (time-of-day ignored) falls inside the window
func (w BookingWindow) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(w.Start)) && !d.After(truncateToDay(w.End))
}

// DayHours is the operating interval of the court for one day.
// Slots cover [Open, Close) — a slot starting at Close does not exist.
type DayHours struct {
	Open  types.TimeString
	Close types.TimeString
}

// Schedule holds the weekday-dependent operating hours of the court.
// The two intervals are configuration constants, not computed.
type Schedule struct {
	Weekday DayHours // Monday–Friday
	Weekend DayHours // Saturday, Sunday
}

// HoursFor returns the operating hours for the weekday of the given date
func (s Schedule) HoursFor(date time.Time) DayHours {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return s.Weekend
	default:
		return s.Weekday
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
