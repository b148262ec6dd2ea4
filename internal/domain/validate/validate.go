// Package validate enforces the rating/comment contract on a candidate
// assessment before it is persisted.
//
// The rules are asymmetric on purpose: low ratings (1-3) demand a written
// justification of at least 20 characters, while high ratings (4-5) may stay
// uncommented. The 1-3 vs 4-5 boundary is part of the contract and must not
// drift.
package validate

import (
	"strings"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/taxonomy"
)

// Contract thresholds. Exact values; off-by-one changes the contract.
const (
	MinRating       = 1
	MaxRating       = 5
	LowRatingMax    = 3    // ratings 1..3 require a comment
	MinCommentChars = 20   // inclusive lower bound for required comments
	MaxCommentChars = 500  // inclusive upper bound for any parameter comment
	MaxOverallChars = 2000 // inclusive upper bound for the overall comment
	MinOverallChars = 20   // inclusive lower bound for the overall comment
)

// Error messages keyed into Result.FieldErrors.
const (
	msgRatingRequired  = "rating required"
	msgCommentRequired = "comment required, min 20 chars for ratings 1-3"
	msgCommentTooLong  = "comment must not exceed 500 characters"
	msgOverallRequired = "overall comments required, min 20 chars"
	msgOverallTooLong  = "overall comments must not exceed 2000 characters"
	msgTrainerRequired = "trainer is required"
	msgDateRequired    = "assessment date is required"
)

// Result is the outcome of validating a candidate assessment. Contract
// violations are values, never errors: the caller renders FieldErrors inline.
type Result struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// Assessment checks a candidate against the full contract. The input is never
// mutated. Field errors are keyed by parameter id for rating problems and by
// the "{param}_comments" pair name for comment problems.
func Assessment(a model.Assessment) Result {
	errs := make(map[string]string)

	if strings.TrimSpace(a.TrainerID) == "" {
		errs["trainer_id"] = msgTrainerRequired
	}
	if a.Date.IsZero() {
		errs["assessment_date"] = msgDateRequired
	}

	for _, paramID := range taxonomy.ParameterIDs() {
		rating := a.Rating(paramID)
		comment := a.Comment(paramID)

		if rating < MinRating || rating > MaxRating {
			errs[paramID] = msgRatingRequired
		} else if rating <= LowRatingMax && len(strings.TrimSpace(comment)) < MinCommentChars {
			errs[taxonomy.CommentField(paramID)] = msgCommentRequired
		}

		// Length cap applies to every parameter comment regardless of rating.
		if len(comment) > MaxCommentChars {
			errs[taxonomy.CommentField(paramID)] = msgCommentTooLong
		}
	}

	overall := strings.TrimSpace(a.OverallComments)
	if len(overall) < MinOverallChars {
		errs["overall_comments"] = msgOverallRequired
	} else if len(overall) > MaxOverallChars {
		errs["overall_comments"] = msgOverallTooLong
	}

	if len(errs) == 0 {
		return Result{Valid: true}
	}
	return Result{Valid: false, FieldErrors: errs}
}
