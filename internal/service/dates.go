package service

import (
	"strings"
	"time"
)

// normalizeDate accepts YYYY-MM-DD or RFC 3339 and returns YYYY-MM-DD.
func normalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Format(time.DateOnly), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(time.DateOnly), nil
	}
	return "", ErrInvalidDate
}

// validatePeriod checks a 1-based (month, year) pair.
func validatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 1 {
		return ErrInvalidPeriod
	}
	return nil
}

// inPeriod reports whether an ISO date falls in the given month.
func inPeriod(date string, month, year int) bool {
	d, err := normalizeDate(date)
	if err != nil {
		return false
	}
	t, _ := time.Parse(time.DateOnly, d)
	return int(t.Month()) == month && t.Year() == year
}
