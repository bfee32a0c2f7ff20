package model

import "time"

const DateLayout = time.DateOnly

// Day returns the calendar date of t (in t's own location) as midnight UTC, so that
// day arithmetic is never affected by daylight saving transitions.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
