// Package calendar handles transaction dates as calendar days.
//
// A transaction date is a due/occurrence day, not an instant. Every day is
// stored as midnight UTC so that comparisons and month filters never shift
// across time zones.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar days.
const DateLayout = "2006-01-02"

// Day normalizes t to midnight UTC of the calendar day it shows in its own
// location. 2024-01-15T23:30:00-03:00 becomes 2024-01-15, not 2024-01-16.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar day from its parts.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day in the local time zone.
func Today() time.Time {
	return Day(time.Now())
}

// Parse accepts YYYY-MM-DD or RFC3339 and returns the calendar day as
// written, ignoring the offset.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Day(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC3339", s)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths moves d by n calendar months keeping its day of month. When the
// target month is shorter, the day is clamped to the month's last day:
// AddMonths(2024-01-31, 1) is 2024-02-29.
func AddMonths(d time.Time, n int) time.Time {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// InMonth reports whether d falls in the given year and month.
func InMonth(d time.Time, year int, month time.Month) bool {
	y, m, _ := d.Date()
	return y == year && m == month
}

// MonthStart returns the first day of the month containing d.
func MonthStart(d time.Time) time.Time {
	y, m, _ := d.Date()
	return Date(y, m, 1)
}

// MonthEnd returns the last day of the month containing d.
func MonthEnd(d time.Time) time.Time {
	y, m, _ := d.Date()
	return Date(y, m, DaysIn(y, m))
}
