// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/model"
)

// dateLayout is the wire format for assessment_date.
const dateLayout = "2006-01-02"

// requestValidator checks DTO scalar fields before the domain contract runs.
var requestValidator = validator.New()

// assessmentRequest mirrors the submission payload for POST /assessments.
// Ratings and comments are keyed by parameter id; the domain validator owns
// the rating/comment contract, this struct only gates the scalar envelope.
type assessmentRequest struct {
	AssessmentID    string            `json:"assessment_id" validate:"omitempty,max=64"`
	TrainerID       string            `json:"trainer_id" validate:"required"`
	AssessorID      string            `json:"assessor_id" validate:"required"`
	AssessmentDate  string            `json:"assessment_date" validate:"required,datetime=2006-01-02"`
	Ratings         map[string]int    `json:"ratings"`
	Comments        map[string]string `json:"comments"`
	OverallComments string            `json:"overall_comments"`
}

func (r assessmentRequest) toModel() model.Assessment {
	date, _ := time.Parse(dateLayout, r.AssessmentDate)
	return model.Assessment{
		ID:              r.AssessmentID,
		TrainerID:       r.TrainerID,
		AssessorID:      r.AssessorID,
		Date:            model.DateOnly(date),
		Ratings:         r.Ratings,
		Comments:        r.Comments,
		OverallComments: r.OverallComments,
	}
}

type submitResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

type validationResponse struct {
	Code        string            `json:"code"`
	FieldErrors map[string]string `json:"field_errors"`
}

// AssessmentsHandler handles assessment submissions.
type AssessmentsHandler struct {
	deps Dependencies
}

// NewAssessmentsHandler creates a new assessments handler.
func NewAssessmentsHandler(deps Dependencies) *AssessmentsHandler {
	return &AssessmentsHandler{deps: deps}
}

// HandlePostAssessment handles POST /assessments requests.
func (h *AssessmentsHandler) HandlePostAssessment(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_assessment"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req assessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := requestValidator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	id, duplicate, vr, err := h.deps.SubmitAssessment(r.Context(), req.toModel())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	if !vr.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Code:        "validation_failed",
			FieldErrors: vr.FieldErrors,
		})
		return
	}
	if duplicate {
		writeJSON(w, http.StatusOK, submitResponse{ID: id, Status: "duplicate", Duplicate: true})
		return
	}
	writeJSON(w, http.StatusCreated, submitResponse{ID: id, Status: "created"})
}
