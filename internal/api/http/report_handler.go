package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/service"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	reports, err := h.reports.ListReports(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if reports == nil {
		reports = []domain.WalkReport{}
	}
	writeJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	reportID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.reports.DeleteReport(r.Context(), actor, reportID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ReportHandler) DeleteAllReports(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	deleted, err := h.reports.DeleteAllReports(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
