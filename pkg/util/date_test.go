package util

import (
    "testing"
    "time"
)

func TestLongDate(t *testing.T) {
    d := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
    if got := LongDate(d); got != "August 31, 2026" {
        t.Fatalf("LongDate = %q", got)
    }
}

func TestDay(t *testing.T) {
    d := time.Date(2026, 8, 1, 23, 59, 0, 0, time.UTC)
    if got := Day(d); got != "2026-08-01" {
        t.Fatalf("Day = %q", got)
    }
}

