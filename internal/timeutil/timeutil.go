// Package timeutil provides utility functions for working with calendar
// dates and the map keys used by the aggregation reports.
package timeutil

import (
	"time"
)

const (
	// DayFormat is the layout for daily aggregation keys (YYYY-MM-DD).
	DayFormat = "2006-01-02"
	// MonthFormat is the layout for zero-padded monthly aggregation keys.
	MonthFormat = "01"
)

// DayKey formats a time value as a daily aggregation key.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// MonthKey formats a time value as a monthly aggregation key.
func MonthKey(t time.Time) string {
	return t.Format(MonthFormat)
}

// ParseDay parses a YYYY-MM-DD value into a date at midnight UTC.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, time.UTC)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// YearStart returns January 1 of the given year at midnight UTC.
func YearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// YearEnd returns December 31 of the given year at the end of the day in UTC.
func YearEnd(year int) time.Time {
	return time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
}

// DaysInYear reports the number of calendar days in the given year.
func DaysInYear(year int) int {
	return int(YearStart(year+1).Sub(YearStart(year)).Hours()) / 24
}
