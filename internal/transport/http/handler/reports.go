package handler

import (
	"net/http"

	"github.com/maverick1978/3dlabmod1/internal/application/report"
)

// ReportHandler handles the aggregate reporting endpoints.
type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler { return &ReportHandler{svc: svc} }

func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Summary(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *ReportHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.AdminStats(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Dashboard bundles the admin stats with the general summary in one call
// for the landing screen.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.AdminStats(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stats":   stats,
		"summary": summary,
	})
}
