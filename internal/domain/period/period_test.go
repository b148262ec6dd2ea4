package period_test

import (
	"testing"
	"time"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/period"
	. "github.com/smartystreets/goconvey/convey"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	now := time.Date(2026, time.August, 14, 15, 30, 0, 0, time.UTC)

	Convey("Given a reference now of 2026-08-14", t, func() {
		Convey("When resolving the month window", func() {
			r := period.Resolve(now, period.Month)
			So(r.From, ShouldEqual, date(2026, time.August, 1))
			So(r.To, ShouldEqual, now)
		})

		Convey("When resolving the quarter window", func() {
			r := period.Resolve(now, period.Quarter)

			Convey("Then August falls in Q3 starting July 1", func() {
				So(r.From, ShouldEqual, date(2026, time.July, 1))
			})
		})

		Convey("When resolving the YTD window", func() {
			r := period.Resolve(now, period.YTD)
			So(r.From, ShouldEqual, date(2026, time.January, 1))
		})

		Convey("When resolving the all-time window", func() {
			r := period.Resolve(now, period.AllTime)
			So(r.From.IsZero(), ShouldBeTrue)
			So(r.Contains(date(1999, time.March, 3)), ShouldBeTrue)
		})

		Convey("When resolving last-6-months", func() {
			r := period.LastNMonths(now, 6)
			So(r.From, ShouldEqual, date(2026, time.February, 1))
		})

		Convey("Then the interval is half-open on both window edges", func() {
			r := period.Resolve(now, period.Month)
			So(r.Contains(date(2026, time.August, 1)), ShouldBeTrue)
			So(r.Contains(date(2026, time.July, 31)), ShouldBeFalse)
			So(r.Contains(now), ShouldBeFalse)
		})
	})
}

func TestPrevMonth(t *testing.T) {
	Convey("Given a now in January", t, func() {
		now := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
		r := period.PrevMonth(now)

		Convey("Then the previous month crosses the year boundary", func() {
			So(r.From, ShouldEqual, date(2025, time.December, 1))
			So(r.To, ShouldEqual, date(2026, time.January, 1))
		})
	})
}

func TestBuckets(t *testing.T) {
	now := time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC)

	Convey("Given 12 trailing month buckets", t, func() {
		buckets := period.MonthBuckets(now, 12)

		Convey("Then exactly 12 come back, oldest first", func() {
			So(len(buckets), ShouldEqual, 12)
			So(buckets[0].Label, ShouldEqual, "Sep 2025")
			So(buckets[11].Label, ShouldEqual, "Aug 2026")
		})

		Convey("Then adjacent buckets tile without gap or overlap", func() {
			for i := 1; i < len(buckets); i++ {
				So(buckets[i].From, ShouldEqual, buckets[i-1].To)
			}
		})
	})

	Convey("Given the quarterly buckets", t, func() {
		buckets := period.QuarterBuckets(now)

		Convey("Then the 8 quarters span last year and this year", func() {
			So(len(buckets), ShouldEqual, 8)
			So(buckets[0].Label, ShouldEqual, "Q1 2025")
			So(buckets[3].Label, ShouldEqual, "Q4 2025")
			So(buckets[4].Label, ShouldEqual, "Q1 2026")
			So(buckets[7].Label, ShouldEqual, "Q4 2026")
		})

		Convey("Then each quarter covers three months", func() {
			So(buckets[0].From, ShouldEqual, date(2025, time.January, 1))
			So(buckets[0].To, ShouldEqual, date(2025, time.April, 1))
		})
	})
}
