// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/forgesutra-ctrl/Training-Assessment-Platform-sub000/internal/domain/period"
)

// TrainersHandler handles trainer statistics requests.
type TrainersHandler struct {
	deps Dependencies
}

// NewTrainersHandler creates a new trainers handler.
func NewTrainersHandler(deps Dependencies) *TrainersHandler {
	return &TrainersHandler{deps: deps}
}

// HandleListStats handles GET /trainers/stats?window=&months= requests.
func (h *TrainersHandler) HandleListStats(w http.ResponseWriter, r *http.Request) {
	const op = "api.trainers_stats"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	win, months, err := windowParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	out, err := h.deps.AllTrainerStatistics(r.Context(), win, months)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleTrainerStats handles GET /trainers/{id}/stats requests.
func (h *TrainersHandler) HandleTrainerStats(w http.ResponseWriter, r *http.Request) {
	const op = "api.trainer_stats"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	trainerID, ok := trainerStatsPath(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	win, months, err := windowParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	out, err := h.deps.TrainerStatistics(r.Context(), trainerID, win, months)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// trainerStatsPath extracts the trainer id from /trainers/{id}/stats.
func trainerStatsPath(path string) (string, bool) {
	rest := strings.TrimPrefix(path, "/trainers/")
	id, found := strings.CutSuffix(rest, "/stats")
	if !found || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// windowParams parses the shared window/months query parameters. The window
// defaults to all-time; months takes precedence and selects last-N-months.
func windowParams(r *http.Request) (period.Window, int, error) {
	win := period.AllTime
	switch q := r.URL.Query().Get("window"); q {
	case "", string(period.AllTime):
	case string(period.Month):
		win = period.Month
	case string(period.Quarter):
		win = period.Quarter
	case string(period.YTD):
		win = period.YTD
	default:
		return "", 0, ErrBadRequest
	}
	months := 0
	if q := r.URL.Query().Get("months"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			return "", 0, ErrBadRequest
		}
		months = n
	}
	return win, months, nil
}
