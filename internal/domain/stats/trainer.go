// Package stats folds windowed assessment sets into trainer-, manager-, and
// platform-level statistic records. Everything here is a pure function of the
// assessment slice plus a reference "now"; there is no cached aggregate state,
// so recomputation is the only source of truth.
package stats

import (
	"math"
	"time"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/period"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/scoring"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/trend"
)

// WindowAverage pairs an average with the number of assessments behind it.
// An average of 0 with Count 0 means "no data", not a real low score; the
// count travels with every average so callers never have to guess.
type WindowAverage struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// TrainerStatistics is the derived per-trainer record consumed by dashboards
// and exporters. It is recomputed on demand and never persisted.
type TrainerStatistics struct {
	TrainerID        string        `json:"trainer_id"`
	TrainerName      string        `json:"trainer_name"`
	Team             string        `json:"team"`
	Month            WindowAverage `json:"month"`
	Quarter          WindowAverage `json:"quarter"`
	YearToDate       WindowAverage `json:"ytd"`
	AllTime          WindowAverage `json:"all_time"`
	TotalAssessments int           `json:"total_assessments"`
	Trend            trend.Trend   `json:"trend"`
}

// Trainer folds one trainer's assessment history into a statistics record.
// assessments must all belong to trainerID. The four window averages each
// re-filter the same list independently, so a single assessment can count
// toward all of them at once. requested is the caller-selected date filter and
// drives only TotalAssessments.
//
// The trend signal is always month-over-month for this trainer, regardless of
// which window the caller is otherwise looking at.
func Trainer(trainerID, name, team string, assessments []model.Assessment, now time.Time, requested period.Range) TrainerStatistics {
	curMonth := period.Resolve(now, period.Month)
	curAvg, _ := meanInRange(assessments, curMonth)
	prevAvg, _ := meanInRange(assessments, period.PrevMonth(now))

	total := 0
	for _, a := range assessments {
		if requested.Contains(a.Date) {
			total++
		}
	}

	return TrainerStatistics{
		TrainerID:        trainerID,
		TrainerName:      name,
		Team:             team,
		Month:            windowAverage(assessments, curMonth),
		Quarter:          windowAverage(assessments, period.Resolve(now, period.Quarter)),
		YearToDate:       windowAverage(assessments, period.Resolve(now, period.YTD)),
		AllTime:          windowAverage(assessments, period.Resolve(now, period.AllTime)),
		TotalAssessments: total,
		Trend:            trend.Classify(curAvg, prevAvg),
	}
}

// meanInRange returns the unrounded mean of per-assessment averages inside r
// plus the contributing count. Zero assessments yield (0, 0).
func meanInRange(assessments []model.Assessment, r period.Range) (float64, int) {
	sum, count := 0.0, 0
	for _, a := range assessments {
		if r.Contains(a.Date) {
			sum += scoring.Average(a)
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return sum / float64(count), count
}

func windowAverage(assessments []model.Assessment, r period.Range) WindowAverage {
	avg, count := meanInRange(assessments, r)
	return WindowAverage{Average: Round2(avg), Count: count}
}

// Round2 rounds an average to two decimals. Every user-facing average in the
// engine goes through this so dashboards and exports agree digit for digit.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
