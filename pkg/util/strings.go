package util

import (
	"strconv"
	"strings"
)

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// NormalizeTickers trims and upper-cases ticker symbols, drops blanks, and
// caps the result at max entries. Duplicates are preserved on purpose: the
// feed query and the chart legend reflect exactly what the user typed.
func NormalizeTickers(raw []string, max int) []string {
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		out = append(out, t)
		if len(out) == max {
			break
		}
	}
	return out
}

// ContainsFold reports whether needle occurs in haystack, case-insensitive.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToUpper(haystack), strings.ToUpper(needle))
}
