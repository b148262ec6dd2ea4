// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"time"
)

// ReportsHandler handles itemized report requests.
type ReportsHandler struct {
	deps Dependencies
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(deps Dependencies) *ReportsHandler {
	return &ReportsHandler{deps: deps}
}

// HandleItemized handles GET /reports/itemized?from=&to= requests. Both bounds
// are optional calendar dates; to is exclusive.
func (h *ReportsHandler) HandleItemized(w http.ResponseWriter, r *http.Request) {
	const op = "api.reports_itemized"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	from, err := dateParam(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	to, err := dateParam(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	out, err := h.deps.ItemizedReport(r.Context(), from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func dateParam(r *http.Request, name string) (*time.Time, error) {
	q := r.URL.Query().Get(name)
	if q == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, q)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
