// Package model contains domain models passed between layers.
package model

import "time"

// Assessment is the atomic fact of the system: one manager rating one trainer
// across the full parameter taxonomy on a given calendar date.
//
// Ratings and Comments are keyed by parameter id. A rating of 0 means unset;
// persisted assessments always carry a 1-5 rating for every parameter (the
// validator rejects anything else), but aggregate-reading code still treats 0
// defensively as "not counted".
type Assessment struct {
	ID              string            // unique id, assigned at submission
	TrainerID       string            // trainer being assessed
	AssessorID      string            // manager who authored the assessment
	Date            time.Time         // calendar date of the session, UTC midnight
	CreatedAt       time.Time         // submission timestamp
	Ratings         map[string]int    // parameter id -> rating in [1,5], 0 = unset
	Comments        map[string]string // parameter id -> per-parameter comment
	OverallComments string            // mandatory whole-assessment comment
}

// Rating returns the rating for a parameter id, 0 when unset.
func (a Assessment) Rating(paramID string) int {
	return a.Ratings[paramID]
}

// Comment returns the comment for a parameter id, empty when unset.
func (a Assessment) Comment(paramID string) string {
	return a.Comments[paramID]
}

// DateOnly normalizes a timestamp to a UTC calendar date at midnight.
// All assessment_date comparisons in the engine operate on this form so that
// boundary assessments never flip between adjacent periods across timezones.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
