// Package time contains time related helpers for day-grained calendar math
package time

import "time"

// DayUTC truncates t to midnight UTC
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// YearBounds returns the first instant of t's calendar year and the first
// instant of the next year, both UTC
func YearBounds(t time.Time) (from, to time.Time) {
	y := t.UTC().Year()
	from = time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(y+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, to
}

// PrevSunday walks t back (at day precision, UTC) to the most recent Sunday.
// A Sunday input is returned unchanged
func PrevSunday(t time.Time) time.Time {
	d := DayUTC(t)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
