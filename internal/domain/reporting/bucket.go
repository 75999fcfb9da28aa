package reporting

import (
	"fmt"
	"strconv"
	"time"
)

// Bucket is one slot of a chart grid: a half-open interval [Start, End)
// with a display label.
type Bucket struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether t falls inside the bucket interval.
func (b Bucket) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// Buckets returns the chart grid for the period as of now, in UTC.
//
// The grid shape is intentionally asymmetric and matches what the
// dashboards render:
//   - day:   always 24 hourly buckets covering the full calendar day,
//     including hours that have not happened yet
//   - week:  always 7 daily buckets Monday through Sunday, including
//     future days
//   - month: daily buckets from the 1st through today only
//   - year:  monthly buckets from January through the current month only
//
// PeriodAllTime has no grid and returns nil.
func (p Period) Buckets(now time.Time) []Bucket {
	now = now.UTC()
	switch p {
	case PeriodDay:
		day := midnight(now)
		buckets := make([]Bucket, 0, 24)
		for h := 0; h < 24; h++ {
			start := day.Add(time.Duration(h) * time.Hour)
			buckets = append(buckets, Bucket{
				Start: start,
				End:   start.Add(time.Hour),
				Label: fmt.Sprintf("%02d:00", h),
			})
		}
		return buckets
	case PeriodWeek:
		monday := startOfWeek(now)
		buckets := make([]Bucket, 0, 7)
		for d := 0; d < 7; d++ {
			start := monday.AddDate(0, 0, d)
			buckets = append(buckets, Bucket{
				Start: start,
				End:   start.AddDate(0, 0, 1),
				Label: start.Format("Mon"),
			})
		}
		return buckets
	case PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		buckets := make([]Bucket, 0, now.Day())
		for d := 0; d < now.Day(); d++ {
			start := first.AddDate(0, 0, d)
			buckets = append(buckets, Bucket{
				Start: start,
				End:   start.AddDate(0, 0, 1),
				Label: strconv.Itoa(d + 1),
			})
		}
		return buckets
	case PeriodYear:
		buckets := make([]Bucket, 0, int(now.Month()))
		for m := time.January; m <= now.Month(); m++ {
			start := time.Date(now.Year(), m, 1, 0, 0, 0, 0, time.UTC)
			buckets = append(buckets, Bucket{
				Start: start,
				End:   start.AddDate(0, 1, 0),
				Label: start.Format("Jan"),
			})
		}
		return buckets
	default:
		return nil
	}
}

// DailyBuckets returns one bucket per calendar day from from through to,
// both inclusive, labelled with the ISO date. Used by the report trend,
// which is always daily regardless of the dashboard grid shape.
func DailyBuckets(from, to time.Time) []Bucket {
	from = midnight(from.UTC())
	to = midnight(to.UTC())
	if to.Before(from) {
		return nil
	}
	var buckets []Bucket
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		buckets = append(buckets, Bucket{
			Start: day,
			End:   day.AddDate(0, 0, 1),
			Label: day.Format("2006-01-02"),
		})
	}
	return buckets
}
