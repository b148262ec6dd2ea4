package trend_test

import (
	"testing"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/trend"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given a current and previous monthly average", t, func() {
		Convey("When the delta clears the dead-band", func() {
			tr := trend.Classify(4.15, 4.0)

			Convey("Then the trend is up with a one-decimal percentage", func() {
				So(tr.Direction, ShouldEqual, trend.Up)
				So(tr.Percentage, ShouldEqual, 3.8)
			})
		})

		Convey("When the delta sits inside the dead-band", func() {
			tr := trend.Classify(4.05, 4.0)

			Convey("Then noise reads as stable", func() {
				So(tr.Direction, ShouldEqual, trend.Stable)
			})
		})

		Convey("When the average drops past the dead-band", func() {
			tr := trend.Classify(3.5, 4.0)
			So(tr.Direction, ShouldEqual, trend.Down)
			So(tr.Percentage, ShouldEqual, -12.5)
		})

		Convey("When there is no previous data", func() {
			tr := trend.Classify(4.2, 0)

			Convey("Then the percentage is 0 even though the direction is up", func() {
				So(tr.Direction, ShouldEqual, trend.Up)
				So(tr.Percentage, ShouldEqual, 0)
			})
		})

		Convey("When both periods are empty", func() {
			tr := trend.Classify(0, 0)
			So(tr.Direction, ShouldEqual, trend.Stable)
			So(tr.Percentage, ShouldEqual, 0)
		})

		Convey("When the scenario is two months of real movement", func() {
			// Current month averaged 4.0, previous month 3.5.
			tr := trend.Classify(4.0, 3.5)
			So(tr.Direction, ShouldEqual, trend.Up)
			So(tr.Percentage, ShouldEqual, 14.3)
		})
	})
}
