// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wekesa/attache/internal/domain/model"
)

// DivisionsHandler handles division-wide task assignment.
type DivisionsHandler struct {
	deps Dependencies
}

// NewDivisionsHandler creates a new divisions handler.
func NewDivisionsHandler(deps Dependencies) *DivisionsHandler {
	return &DivisionsHandler{deps: deps}
}

// HandleDivisionTasks handles POST /divisions/{division}/tasks requests.
// The task goes to every attachee currently in the division; the
// response reports how many received it.
func (h *DivisionsHandler) HandleDivisionTasks(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_division_task"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/divisions/")
	name, rest, found := strings.Cut(path, "/")
	if !found || rest != "tasks" || name == "" {
		http.NotFound(w, r)
		return
	}

	d, err := model.ParseDivision(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_division", Wrap(op, err))
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrMissingField))
		return
	}

	assigned := h.deps.AssignTaskToDivision(r.Context(), d, req.Description, req.Deadline, req.Priority)
	writeJSON(w, http.StatusOK, assignedResponse{Assigned: assigned})
}
