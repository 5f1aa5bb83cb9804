// Package cycle defines the semester maintenance cycle: two fixed six-month
// periods per year starting on January 1 and July 1.
package cycle

import (
	"errors"
	"time"
)

// Semester is 1 (January-June) or 2 (July-December).
type Semester int

const (
	First  Semester = 1
	Second Semester = 2
)

var ErrInvalidSemester = errors.New("invalid semester: must be 1 or 2")

// Validate reports whether s is one of the two semesters.
func (s Semester) Validate() error {
	if s != First && s != Second {
		return ErrInvalidSemester
	}
	return nil
}

// Months returns the first and last month of the semester, both inclusive.
func (s Semester) Months() (time.Month, time.Month) {
	if s == Second {
		return time.July, time.December
	}
	return time.January, time.June
}

// Contains reports whether the 1-based month falls inside the semester.
func (s Semester) Contains(month int) bool {
	first, last := s.Months()
	return month >= int(first) && month <= int(last)
}

// Of returns the semester a calendar month belongs to.
func Of(month time.Month) Semester {
	if month >= time.July {
		return Second
	}
	return First
}

// CurrentCycleStart returns midnight of the semester boundary that opened the
// cycle containing now, in now's location.
func CurrentCycleStart(now time.Time) time.Time {
	first, _ := Of(now.Month()).Months()
	return time.Date(now.Year(), first, 1, 0, 0, 0, 0, now.Location())
}

// ShouldReset reports whether completion flags must be cleared: either no
// reset has ever happened or the last one predates the current cycle.
// Missed boundaries collapse into a single reset.
func ShouldReset(now time.Time, lastReset *time.Time) bool {
	if lastReset == nil {
		return true
	}
	return lastReset.Before(CurrentCycleStart(now))
}
