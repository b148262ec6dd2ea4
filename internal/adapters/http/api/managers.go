// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// ManagersHandler handles manager activity requests.
type ManagersHandler struct {
	deps Dependencies
}

// NewManagersHandler creates a new managers handler.
func NewManagersHandler(deps Dependencies) *ManagersHandler {
	return &ManagersHandler{deps: deps}
}

// HandleActivity handles GET /managers/activity requests.
func (h *ManagersHandler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	const op = "api.managers_activity"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	out, err := h.deps.ManagersActivity(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}
