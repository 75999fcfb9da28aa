// Package reporting contains the pure sales aggregation engine: period
// resolution, bucket grids, order filtering, monetary aggregation and
// ranking. Everything here is side-effect free and operates on data the
// application layer has already loaded.
package reporting

import (
	"strings"
	"time"
)

// Period is the closed set of reporting windows a caller may request.
type Period int

const (
	// PeriodAllTime covers the full order history.
	PeriodAllTime Period = iota
	// PeriodDay covers the current calendar day (UTC).
	PeriodDay
	// PeriodWeek covers the current ISO week, Monday through Sunday.
	PeriodWeek
	// PeriodMonth covers the current calendar month.
	PeriodMonth
	// PeriodYear covers the current calendar year.
	PeriodYear
)

// ParsePeriod resolves a client-supplied token to a Period. An empty token
// resolves to PeriodAllTime. Unknown tokens also resolve to PeriodAllTime
// but report ok=false so callers can log or substitute a fallback.
func ParsePeriod(token string) (Period, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "day":
		return PeriodDay, true
	case "week":
		return PeriodWeek, true
	case "month":
		return PeriodMonth, true
	case "year":
		return PeriodYear, true
	case "", "all":
		return PeriodAllTime, true
	default:
		return PeriodAllTime, false
	}
}

// String returns the canonical token for the period.
func (p Period) String() string {
	switch p {
	case PeriodDay:
		return "day"
	case PeriodWeek:
		return "week"
	case PeriodMonth:
		return "month"
	case PeriodYear:
		return "year"
	default:
		return "all"
	}
}

// Bounded reports whether the period maps to a finite time window.
func (p Period) Bounded() bool {
	return p != PeriodAllTime
}

// TimeRange is an elapsed window. A zero Start or End means unbounded on
// that side, so the zero TimeRange matches everything.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range. Both ends are
// inclusive: the upper bound is always "now" or a caller-chosen closing
// instant, never a future grid edge.
func (r TimeRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// Range returns the elapsed window for the period as of now, in UTC.
// Calendar periods start at their natural boundary (midnight, Monday,
// first of month, January 1st) and end at now; PeriodAllTime returns the
// unbounded zero range.
func (p Period) Range(now time.Time) TimeRange {
	now = now.UTC()
	var start time.Time
	switch p {
	case PeriodDay:
		start = midnight(now)
	case PeriodWeek:
		start = startOfWeek(now)
	case PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	case PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return TimeRange{}
	}
	return TimeRange{Start: start, End: now}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns the Monday 00:00 UTC of the week containing t.
func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return midnight(t.AddDate(0, 0, -daysSinceMonday))
}
