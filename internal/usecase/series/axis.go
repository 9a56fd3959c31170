package series

import (
	"time"

	"github.com/pbad/lifehub-engine/internal/domain"
)

// Day normalizes a timestamp to its calendar day (midnight UTC).
// Every date compared or iterated by the engine goes through this first,
// so record timestamps with time-of-day components bucket correctly.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// GenerateAxis returns the inclusive, gap-free, ascending sequence of
// calendar days from start to end, one entry per day.
// Returns ErrInvalidRange when end precedes start.
func GenerateAxis(start, end time.Time) ([]time.Time, error) {
	first := Day(start)
	last := Day(end)

	if last.Before(first) {
		return nil, domain.ErrInvalidRange
	}

	axis := make([]time.Time, 0, DaysBetween(first, last)+1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		axis = append(axis, d)
	}

	return axis, nil
}
