// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
)

// TrendsHandler handles monthly and quarterly trend requests.
type TrendsHandler struct {
	deps          Dependencies
	defaultMonths int
	maxMonths     int
}

// NewTrendsHandler creates a new trends handler.
func NewTrendsHandler(deps Dependencies, defaultMonths, maxMonths int) *TrendsHandler {
	return &TrendsHandler{deps: deps, defaultMonths: defaultMonths, maxMonths: maxMonths}
}

// HandleMonthly handles GET /trends/monthly?months=N requests.
func (h *TrendsHandler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	const op = "api.trends_monthly"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	months := h.defaultMonths
	if q := r.URL.Query().Get("months"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if n > h.maxMonths {
			writeError(w, http.StatusBadRequest, "months_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		months = n
	}
	out, err := h.deps.MonthlyTrend(r.Context(), months)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleQuarterly handles GET /trends/quarterly requests.
func (h *TrendsHandler) HandleQuarterly(w http.ResponseWriter, r *http.Request) {
	const op = "api.trends_quarterly"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	out, err := h.deps.QuarterlyTrend(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}
