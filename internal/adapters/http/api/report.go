// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// ReportHandler handles performance report requests.
type ReportHandler struct {
	deps Dependencies
}

// NewReportHandler creates a new report handler.
func NewReportHandler(deps Dependencies) *ReportHandler {
	return &ReportHandler{deps: deps}
}

// HandleGetReport handles GET /report requests. The body maps every
// recognized division to its summary list (empty lists included) plus
// the overall statistics.
func (h *ReportHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.GenerateReport(r.Context()))
}
