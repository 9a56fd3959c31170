package period

import (
	"fmt"
	"strings"
	"time"

	"github.com/pbad/lifehub-engine/internal/domain"
	"github.com/pbad/lifehub-engine/internal/usecase/series"
)

// Period is a symbolic date-range keyword supplied by the request layer.
type Period string

const (
	PeriodToday   Period = "TODAY"
	PeriodWeek    Period = "WEEK"
	PeriodMonth   Period = "MONTH"
	PeriodQuarter Period = "QUARTER"
	PeriodYear    Period = "YEAR"
	PeriodAll     Period = "ALL"
	PeriodCustom  Period = "CUSTOM"
)

// dateLayout is the wire format the request layer uses for explicit bounds.
const dateLayout = "2006-01-02"

// Query is a raw period request: a keyword and/or explicit yyyy-MM-dd bounds.
type Query struct {
	Period    Period
	StartDate string
	EndDate   string
}

// Bounds is a resolved, concrete, inclusive day range.
// Resolve always concretizes the ALL period against the caller-supplied
// earliest record date, so no unbounded range ever leaves this package.
type Bounds struct {
	Start time.Time
	End   time.Time
}

// Resolve turns a period request into concrete inclusive day bounds.
//
// Symbolic periods end at today: TODAY is [today,today], WEEK the last 7
// days, MONTH 30, QUARTER 90, YEAR 365. ALL starts at earliest (or at
// today when earliest is nil, yielding a zero-width range). Explicit
// bounds, when both are present, take precedence over the keyword; an
// empty keyword defaults to WEEK. CUSTOM without both bounds fails with
// ErrMissingDateRange; inverted bounds fail with ErrInvalidRange.
//
// today is an explicit argument so resolution stays a deterministic
// function of its inputs.
func Resolve(q Query, today time.Time, earliest *time.Time) (Bounds, error) {
	end := series.Day(today)

	if q.StartDate != "" && q.EndDate != "" {
		return resolveExplicit(q.StartDate, q.EndDate)
	}

	p := Period(strings.ToUpper(string(q.Period)))
	switch p {
	case PeriodCustom:
		return Bounds{}, domain.ErrMissingDateRange
	case PeriodToday:
		return Bounds{Start: end, End: end}, nil
	case PeriodMonth:
		return Bounds{Start: end.AddDate(0, 0, -29), End: end}, nil
	case PeriodQuarter:
		return Bounds{Start: end.AddDate(0, 0, -89), End: end}, nil
	case PeriodYear:
		return Bounds{Start: end.AddDate(0, 0, -364), End: end}, nil
	case PeriodAll:
		if earliest == nil {
			return Bounds{Start: end, End: end}, nil
		}
		start := series.Day(*earliest)
		if start.After(end) {
			start = end
		}
		return Bounds{Start: start, End: end}, nil
	case PeriodWeek, Period(""):
		// WEEK is also the default when no keyword is given
		return Bounds{Start: end.AddDate(0, 0, -6), End: end}, nil
	default:
		return Bounds{Start: end.AddDate(0, 0, -6), End: end}, nil
	}
}

func resolveExplicit(startStr, endStr string) (Bounds, error) {
	start, err := time.ParseInLocation(dateLayout, strings.TrimSpace(startStr), time.UTC)
	if err != nil {
		return Bounds{}, fmt.Errorf("parse start date %q: %w", startStr, err)
	}
	end, err := time.ParseInLocation(dateLayout, strings.TrimSpace(endStr), time.UTC)
	if err != nil {
		return Bounds{}, fmt.Errorf("parse end date %q: %w", endStr, err)
	}
	if end.Before(start) {
		return Bounds{}, domain.ErrInvalidRange
	}
	return Bounds{Start: series.Day(start), End: series.Day(end)}, nil
}

// Contains reports whether d falls inside the bounds, inclusive.
func (b Bounds) Contains(d time.Time) bool {
	day := series.Day(d)
	return !day.Before(b.Start) && !day.After(b.End)
}

// Days returns the number of calendar days the bounds cover, inclusive.
func (b Bounds) Days() int {
	return series.DaysBetween(b.Start, b.End) + 1
}
