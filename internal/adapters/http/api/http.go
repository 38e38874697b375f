// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wekesa/attache/internal/domain/model"
	"github.com/wekesa/attache/internal/domain/report"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// AddAttachee constructs a record and appends it to the roster.
	// An unknown division fails with model.ErrInvalidDivision.
	AddAttachee(ctx context.Context, name, email, division string) (model.Summary, error)

	// RemoveAttachee removes by email; no-op when absent.
	RemoveAttachee(ctx context.Context, email string) int

	// Read operations expose roster summaries.
	ListSummaries(ctx context.Context) []model.Summary
	ListByDivision(ctx context.Context, d model.Division) []model.Summary

	// Best-effort mutations; false means the identity matched nothing.
	AssignTask(ctx context.Context, email, description, deadline string, priority int) bool
	AssignTaskToDivision(ctx context.Context, d model.Division, description, deadline string, priority int) int
	CompleteTask(ctx context.Context, email string, taskID int, completionDate string) bool
	AddFeedback(ctx context.Context, email, comment string, score int, reviewer string) bool

	// GenerateReport folds the roster into the performance report.
	GenerateReport(ctx context.Context) report.Report
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	attacheesHandler *AttacheesHandler
	divisionsHandler *DivisionsHandler
	reportHandler    *ReportHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		attacheesHandler: NewAttacheesHandler(deps),
		divisionsHandler: NewDivisionsHandler(deps),
		reportHandler:    NewReportHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/report", MetricsMiddleware(s.reportHandler.HandleGetReport, "report"))
	mux.HandleFunc("/attachees", MetricsMiddleware(s.attacheesHandler.HandleCollection, "attachees"))
	mux.HandleFunc("/attachees/", MetricsMiddleware(s.attacheesHandler.HandleResource, "attachee"))
	mux.HandleFunc("/divisions/", MetricsMiddleware(s.divisionsHandler.HandleDivisionTasks, "division_tasks"))
}

// attacheeRequest mirrors the OpenAPI schema for POST /attachees.
type attacheeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Division string `json:"division"`
}

func (a attacheeRequest) validate() error {
	switch {
	case strings.TrimSpace(a.Name) == "":
		return NewKind("api.post_attachee", ErrMissingField)
	case strings.TrimSpace(a.Email) == "":
		return NewKind("api.post_attachee", ErrMissingField)
	}
	return nil
}

// taskRequest mirrors the schema for task assignment endpoints.
type taskRequest struct {
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	// Priority is conventionally 1-5; the core does not clamp it.
	Priority int `json:"priority"`
}

// completeTaskRequest carries the caller-supplied completion date.
type completeTaskRequest struct {
	CompletionDate string `json:"completion_date"`
}

// feedbackRequest mirrors the schema for POST /attachees/{email}/feedback.
type feedbackRequest struct {
	Comment string `json:"comment"`
	// Score is conventionally 0-100; the core does not clamp it.
	Score    int    `json:"score"`
	Reviewer string `json:"reviewer"`
}

type assignedResponse struct {
	Assigned int `json:"assigned"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
