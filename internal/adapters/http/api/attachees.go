// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/wekesa/attache/internal/domain/model"
)

// AttacheesHandler handles the attachee collection and per-attachee
// sub-resources (tasks, task completion, feedback).
type AttacheesHandler struct {
	deps Dependencies
}

// NewAttacheesHandler creates a new attachees handler.
func NewAttacheesHandler(deps Dependencies) *AttacheesHandler {
	return &AttacheesHandler{deps: deps}
}

// HandleCollection handles /attachees:
//
//	POST /attachees               -> create an attachee
//	GET  /attachees[?division=D]  -> list summaries, optionally filtered
func (h *AttacheesHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)
	case http.MethodGet:
		h.handleList(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *AttacheesHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_attachee"
	var req attacheeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	summary, err := h.deps.AddAttachee(r.Context(), req.Name, req.Email, req.Division)
	if err != nil {
		if errors.Is(err, model.ErrInvalidDivision) {
			writeError(w, http.StatusBadRequest, "invalid_division", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, summary)
}

func (h *AttacheesHandler) handleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_attachees"
	divisionParam := r.URL.Query().Get("division")
	if divisionParam == "" {
		writeJSON(w, http.StatusOK, h.deps.ListSummaries(r.Context()))
		return
	}

	d, err := model.ParseDivision(divisionParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_division", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.ListByDivision(r.Context(), d))
}

// HandleResource handles per-attachee routes under /attachees/{email}:
//
//	DELETE /attachees/{email}                        -> remove (no-op when absent)
//	POST   /attachees/{email}/tasks                  -> assign a task
//	POST   /attachees/{email}/tasks/{id}/complete    -> complete a task
//	POST   /attachees/{email}/feedback               -> record feedback
//
// The best-effort mutations answer 204 whether or not the identity
// matched anything; missing identities are no-ops by design.
func (h *AttacheesHandler) HandleResource(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/attachees/")
	if path == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	segments := strings.Split(path, "/")
	email := segments[0]

	switch {
	case len(segments) == 1 && r.Method == http.MethodDelete:
		h.deps.RemoveAttachee(r.Context(), email)
		w.WriteHeader(http.StatusNoContent)

	case len(segments) == 2 && segments[1] == "tasks" && r.Method == http.MethodPost:
		h.handleAssignTask(w, r, email)

	case len(segments) == 4 && segments[1] == "tasks" && segments[3] == "complete" && r.Method == http.MethodPost:
		h.handleCompleteTask(w, r, email, segments[2])

	case len(segments) == 2 && segments[1] == "feedback" && r.Method == http.MethodPost:
		h.handleFeedback(w, r, email)

	default:
		http.NotFound(w, r)
	}
}

func (h *AttacheesHandler) handleAssignTask(w http.ResponseWriter, r *http.Request, email string) {
	const op = "api.post_task"
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrMissingField))
		return
	}

	h.deps.AssignTask(r.Context(), email, req.Description, req.Deadline, req.Priority)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AttacheesHandler) handleCompleteTask(w http.ResponseWriter, r *http.Request, email, taskIDSegment string) {
	const op = "api.complete_task"
	taskID, err := strconv.Atoi(taskIDSegment)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	var req completeTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	h.deps.CompleteTask(r.Context(), email, taskID, req.CompletionDate)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AttacheesHandler) handleFeedback(w http.ResponseWriter, r *http.Request, email string) {
	const op = "api.post_feedback"
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	h.deps.AddFeedback(r.Context(), email, req.Comment, req.Score, req.Reviewer)
	w.WriteHeader(http.StatusNoContent)
}
