// Package period resolves named relative windows (month, quarter, YTD,
// last-N-months, all-time) into half-open date intervals and produces the
// labeled month/quarter buckets used by the trend builders.
//
// Everything operates on UTC calendar dates at midnight so that boundary
// assessments never flip between adjacent periods.
package period

import (
	"fmt"
	"time"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
)

// Window names a relative date range resolved against a reference "now".
type Window string

// Supported windows.
const (
	Month   Window = "month"
	Quarter Window = "quarter"
	YTD     Window = "ytd"
	AllTime Window = "all"
)

// monthsPerQuarter is the size of a calendar quarter block.
const monthsPerQuarter = 3

// quarterlyBucketCount spans last year plus this year.
const quarterlyBucketCount = 8

// Range is a half-open interval [From, To). A zero From means "since forever".
type Range struct {
	From time.Time
	To   time.Time
}

// Contains reports whether a calendar date falls inside the range.
func (r Range) Contains(d time.Time) bool {
	return !d.Before(r.From) && d.Before(r.To)
}

// Bucket is a labeled range used by time-series builders.
type Bucket struct {
	Label string
	Range
}

// Resolve returns the half-open interval for a named window relative to now.
// Unknown windows resolve to all-time.
func Resolve(now time.Time, w Window) Range {
	n := now.UTC()
	switch w {
	case Month:
		return Range{From: monthStart(n), To: n}
	case Quarter:
		qm := time.Month(int(n.Month()-1)/monthsPerQuarter*monthsPerQuarter + 1)
		return Range{From: time.Date(n.Year(), qm, 1, 0, 0, 0, 0, time.UTC), To: n}
	case YTD:
		return Range{From: time.Date(n.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), To: n}
	default:
		return Range{From: time.Time{}, To: n}
	}
}

// LastNMonths returns the interval from the first day of the month n months
// before the current month up to now.
func LastNMonths(now time.Time, n int) Range {
	u := now.UTC()
	return Range{From: monthStart(u).AddDate(0, -n, 0), To: u}
}

// PrevMonth returns the full previous calendar month relative to now. It is
// the "previous" period of every trend comparison.
func PrevMonth(now time.Time) Range {
	cur := monthStart(now.UTC())
	return Range{From: cur.AddDate(0, -1, 0), To: cur}
}

// MonthBuckets returns n trailing calendar months, oldest first, the last
// bucket being the current month. Bucket ranges cover the full month.
func MonthBuckets(now time.Time, n int) []Bucket {
	cur := monthStart(now.UTC())
	buckets := make([]Bucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		from := cur.AddDate(0, -i, 0)
		buckets = append(buckets, Bucket{
			Label: from.Format("Jan 2006"),
			Range: Range{From: from, To: from.AddDate(0, 1, 0)},
		})
	}
	return buckets
}

// QuarterBuckets returns the eight quarters spanning the previous and current
// year, oldest first.
func QuarterBuckets(now time.Time) []Bucket {
	year := now.UTC().Year() - 1
	buckets := make([]Bucket, 0, quarterlyBucketCount)
	for i := 0; i < quarterlyBucketCount; i++ {
		q := i % 4
		y := year + i/4
		from := time.Date(y, time.Month(q*monthsPerQuarter+1), 1, 0, 0, 0, 0, time.UTC)
		buckets = append(buckets, Bucket{
			Label: fmt.Sprintf("Q%d %d", q+1, y),
			Range: Range{From: from, To: from.AddDate(0, monthsPerQuarter, 0)},
		})
	}
	return buckets
}

// Filter returns the assessments whose date falls inside the range, preserving
// input order.
func Filter(assessments []model.Assessment, r Range) []model.Assessment {
	out := make([]model.Assessment, 0, len(assessments))
	for _, a := range assessments {
		if r.Contains(a.Date) {
			out = append(out, a)
		}
	}
	return out
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
