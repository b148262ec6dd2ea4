package stats

import (
	"time"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/period"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/scoring"
)

// ActivityStatus marks whether a manager has assessed recently.
type ActivityStatus string

// Activity statuses.
const (
	Active   ActivityStatus = "active"
	Inactive ActivityStatus = "inactive"
)

// DefaultActiveWindowDays is the trailing window that keeps a manager "active".
const DefaultActiveWindowDays = 30

// ManagerActivity is the derived per-manager record: how much and how
// generously a manager assesses, keyed by assessor id.
type ManagerActivity struct {
	ManagerID          string         `json:"manager_id"`
	ManagerName        string         `json:"manager_name"`
	Team               string         `json:"team"`
	MonthCount         int            `json:"month_count"`
	QuarterCount       int            `json:"quarter_count"`
	YearCount          int            `json:"year_count"`
	TotalCount         int            `json:"total_count"`
	AverageRatingGiven float64        `json:"average_rating_given"`
	UniqueTrainers     int            `json:"unique_trainers"`
	LastAssessment     *time.Time     `json:"last_assessment,omitempty"`
	Status             ActivityStatus `json:"status"`
}

// Manager folds the assessments authored by one manager into an activity
// record. assessments must all carry managerID as assessor. AverageRatingGiven
// is the mean of the assessment averages the manager authored, not of the
// ratings the trainers received elsewhere.
func Manager(managerID, name, team string, assessments []model.Assessment, now time.Time, activeDays int) ManagerActivity {
	if activeDays <= 0 {
		activeDays = DefaultActiveWindowDays
	}

	act := ManagerActivity{
		ManagerID:   managerID,
		ManagerName: name,
		Team:        team,
		TotalCount:  len(assessments),
		Status:      Inactive,
	}

	month := period.Resolve(now, period.Month)
	quarter := period.Resolve(now, period.Quarter)
	year := period.Resolve(now, period.YTD)

	trainers := make(map[string]struct{})
	sum := 0.0
	var last time.Time
	for _, a := range assessments {
		if month.Contains(a.Date) {
			act.MonthCount++
		}
		if quarter.Contains(a.Date) {
			act.QuarterCount++
		}
		if year.Contains(a.Date) {
			act.YearCount++
		}
		trainers[a.TrainerID] = struct{}{}
		sum += scoring.Average(a)
		if a.Date.After(last) {
			last = a.Date
		}
	}

	act.UniqueTrainers = len(trainers)
	if len(assessments) > 0 {
		act.AverageRatingGiven = Round2(sum / float64(len(assessments)))
		act.LastAssessment = &last
		cutoff := model.DateOnly(now).AddDate(0, 0, -activeDays)
		if !last.Before(cutoff) {
			act.Status = Active
		}
	}
	return act
}
