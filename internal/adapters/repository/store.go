// Package repository defines the assessment store interface and errors.
//
// Aggregation code performs one bulk List per request and computes everything
// from the returned slice (fetch-then-compute), never N+1 per-trainer queries.
package repository

import (
	"context"
	"time"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
)

// Filter narrows a List call. Zero-value fields are ignored; From/To form a
// half-open interval [From, To) over assessment_date.
type Filter struct {
	From       time.Time
	To         time.Time
	TrainerID  string
	AssessorID string
}

// Match reports whether an assessment satisfies the filter.
func (f Filter) Match(a model.Assessment) bool {
	if f.TrainerID != "" && a.TrainerID != f.TrainerID {
		return false
	}
	if f.AssessorID != "" && a.AssessorID != f.AssessorID {
		return false
	}
	if !f.From.IsZero() && a.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !a.Date.Before(f.To) {
		return false
	}
	return true
}

// Store provides read/write access to persisted assessments.
type Store interface {
	// Create persists a new assessment. Returns ErrDuplicateID when the id is
	// already taken.
	Create(ctx context.Context, a model.Assessment) error

	// List returns assessments matching the filter, ordered by date then
	// creation time. A store read failure propagates as an error; the engine
	// never aggregates over partial data.
	List(ctx context.Context, f Filter) ([]model.Assessment, error)

	// Count returns the total number of persisted assessments.
	Count(ctx context.Context) (int, error)
}
