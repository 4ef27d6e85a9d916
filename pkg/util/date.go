package util

import "time"

// LongDate formats a date the way it is spoken, e.g. "August 31, 2026".
func LongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// Day formats a date as YYYY-MM-DD.
func Day(t time.Time) string {
	return t.Format("2006-01-02")
}
