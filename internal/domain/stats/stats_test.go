package stats_test

import (
	"testing"
	"time"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/period"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/stats"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/taxonomy"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/trend"
	. "github.com/smartystreets/goconvey/convey"
)

var now = time.Date(2026, time.August, 14, 10, 0, 0, 0, time.UTC)

// assessment builds a fully rated assessment with every parameter at the same
// rating, dated at UTC midnight.
func assessment(trainerID, assessorID string, date time.Time, rating int) model.Assessment {
	ratings := make(map[string]int)
	for _, id := range taxonomy.ParameterIDs() {
		ratings[id] = rating
	}
	return model.Assessment{
		TrainerID:  trainerID,
		AssessorID: assessorID,
		Date:       model.DateOnly(date),
		Ratings:    ratings,
	}
}

func TestTrainer(t *testing.T) {
	Convey("Given a trainer with two months of history", t, func() {
		// July: a 3 and a 4 (mean 3.5). August: a 3 and a 5 (mean 4.0).
		history := []model.Assessment{
			assessment("trainer-001", "manager-001", time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC), 3),
			assessment("trainer-001", "manager-002", time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC), 4),
			assessment("trainer-001", "manager-001", time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), 3),
			assessment("trainer-001", "manager-002", time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), 5),
		}

		Convey("When folding into a statistics record", func() {
			st := stats.Trainer("trainer-001", "Ada Trainer", "Onboarding", history, now, period.Resolve(now, period.AllTime))

			Convey("Then each window carries its average and its count", func() {
				So(st.Month, ShouldResemble, stats.WindowAverage{Average: 4.0, Count: 2})
				So(st.Quarter, ShouldResemble, stats.WindowAverage{Average: 3.75, Count: 4})
				So(st.YearToDate, ShouldResemble, stats.WindowAverage{Average: 3.75, Count: 4})
				So(st.AllTime, ShouldResemble, stats.WindowAverage{Average: 3.75, Count: 4})
			})

			Convey("Then the total reflects the requested range", func() {
				So(st.TotalAssessments, ShouldEqual, 4)
			})

			Convey("Then the month-over-month trend is up 14.3%", func() {
				So(st.Trend.Direction, ShouldEqual, trend.Up)
				So(st.Trend.Percentage, ShouldEqual, 14.3)
			})

			Convey("Then identity fields pass through", func() {
				So(st.TrainerID, ShouldEqual, "trainer-001")
				So(st.TrainerName, ShouldEqual, "Ada Trainer")
				So(st.Team, ShouldEqual, "Onboarding")
			})
		})

		Convey("When the requested range is only the current month", func() {
			st := stats.Trainer("trainer-001", "Ada Trainer", "Onboarding", history, now, period.Resolve(now, period.Month))

			Convey("Then the total narrows but the windows do not", func() {
				So(st.TotalAssessments, ShouldEqual, 2)
				So(st.AllTime.Count, ShouldEqual, 4)
			})
		})

		Convey("When recomputing from the same inputs", func() {
			a := stats.Trainer("trainer-001", "Ada Trainer", "Onboarding", history, now, period.Resolve(now, period.AllTime))
			b := stats.Trainer("trainer-001", "Ada Trainer", "Onboarding", history, now, period.Resolve(now, period.AllTime))
			So(a, ShouldResemble, b)
		})
	})

	Convey("Given a trainer with no assessments", t, func() {
		st := stats.Trainer("trainer-009", "New Hire", "", nil, now, period.Resolve(now, period.AllTime))

		Convey("Then every window reads zero with count zero", func() {
			So(st.AllTime, ShouldResemble, stats.WindowAverage{})
			So(st.Trend.Direction, ShouldEqual, trend.Stable)
		})
	})
}

func TestManager(t *testing.T) {
	Convey("Given a manager who assessed this month and in January", t, func() {
		authored := []model.Assessment{
			assessment("trainer-001", "manager-001", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), 5),
			assessment("trainer-002", "manager-001", time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC), 3),
			assessment("trainer-001", "manager-001", time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), 4),
		}

		Convey("When folding into an activity record", func() {
			act := stats.Manager("manager-001", "Grace Manager", "Delivery", authored, now, 30)

			Convey("Then each window count is independent", func() {
				So(act.MonthCount, ShouldEqual, 2)
				So(act.QuarterCount, ShouldEqual, 2)
				So(act.YearCount, ShouldEqual, 3)
				So(act.TotalCount, ShouldEqual, 3)
			})

			Convey("Then the generosity average covers all authored assessments", func() {
				So(act.AverageRatingGiven, ShouldEqual, 4.0)
			})

			Convey("Then distinct trainers are counted once", func() {
				So(act.UniqueTrainers, ShouldEqual, 2)
			})

			Convey("Then a recent assessment keeps the manager active", func() {
				So(act.Status, ShouldEqual, stats.Active)
				So(act.LastAssessment, ShouldNotBeNil)
				So(*act.LastAssessment, ShouldEqual, model.DateOnly(time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)))
			})
		})

		Convey("When the last assessment is older than the active window", func() {
			stale := authored[:1]
			act := stats.Manager("manager-001", "Grace Manager", "Delivery", stale, now, 30)
			So(act.Status, ShouldEqual, stats.Inactive)
		})

		Convey("When the manager never assessed anyone", func() {
			act := stats.Manager("manager-002", "Quiet Manager", "", nil, now, 30)

			Convey("Then the record is zeroed and inactive", func() {
				So(act.Status, ShouldEqual, stats.Inactive)
				So(act.LastAssessment, ShouldBeNil)
				So(act.AverageRatingGiven, ShouldEqual, 0)
			})
		})
	})
}

func TestMonthlySeries(t *testing.T) {
	Convey("Given an empty assessment set", t, func() {
		series := stats.MonthlySeries(nil, now, 12)

		Convey("Then the series is still 12 zero-filled buckets", func() {
			So(len(series), ShouldEqual, 12)
			for _, m := range series {
				So(m.AssessmentCount, ShouldEqual, 0)
				So(m.AverageRating, ShouldEqual, 0)
				So(len(m.CategoryAverages), ShouldEqual, 5)
			}
		})
	})

	Convey("Given assessments concentrated in one month", t, func() {
		set := []model.Assessment{
			assessment("trainer-001", "manager-001", time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), 4),
			assessment("trainer-002", "manager-001", time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC), 2),
			assessment("trainer-001", "manager-002", time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC), 3),
		}

		Convey("When building the 12-month series", func() {
			series := stats.MonthlySeries(set, now, 12)
			last := series[len(series)-1]

			Convey("Then the current month bucket carries the data", func() {
				So(last.Month, ShouldEqual, "Aug 2026")
				So(last.AssessmentCount, ShouldEqual, 3)
				So(last.TrainersAssessed, ShouldEqual, 2)
				So(last.AverageRating, ShouldEqual, 3.0)
			})

			Convey("Then every category matches the uniform ratings", func() {
				for _, c := range last.CategoryAverages {
					So(c.Average, ShouldEqual, 3.0)
				}
			})

			Convey("Then the other buckets stay empty", func() {
				So(series[0].AssessmentCount, ShouldEqual, 0)
			})
		})
	})
}

func TestQuarterlySeries(t *testing.T) {
	Convey("Given assessments in Q3 of the current year", t, func() {
		set := []model.Assessment{
			assessment("trainer-001", "manager-001", time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC), 4),
			assessment("trainer-001", "manager-001", time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC), 5),
		}

		Convey("When building the quarterly series", func() {
			series := stats.QuarterlySeries(set, now)

			Convey("Then eight quarters come back with Q3 2026 populated", func() {
				So(len(series), ShouldEqual, 8)
				q3 := series[6]
				So(q3.Quarter, ShouldEqual, "Q3 2026")
				So(q3.AssessmentCount, ShouldEqual, 2)
				So(q3.TrainersAssessed, ShouldEqual, 1)
				So(q3.AverageRating, ShouldEqual, 4.5)
			})

			Convey("Then last year's quarters stay empty", func() {
				So(series[0].AssessmentCount, ShouldEqual, 0)
			})
		})
	})
}
