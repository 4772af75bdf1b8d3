package models

import "time"

// DateLayout is the calendar-date format used in every persisted file.
const DateLayout = "2006-01-02"

// Date builds a calendar date with no time-of-day component. All dates
// in the log are normalized to midnight UTC so equality and range
// comparisons behave as plain date comparisons.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Today returns the current calendar date, normalized.
func Today() time.Time {
	now := time.Now()
	return Date(now.Year(), now.Month(), now.Day())
}
