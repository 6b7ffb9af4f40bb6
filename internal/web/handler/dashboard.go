package handler

import (
	"net/http"

	"github.com/asvnatz/strafenkasse/internal/services/report"
	"github.com/asvnatz/strafenkasse/internal/web/templates"
)

// DashboardHandler renders the landing dashboard
type DashboardHandler struct {
	reportService *report.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(reportService *report.Service) *DashboardHandler {
	return &DashboardHandler{
		reportService: reportService,
	}
}

// Dashboard renders the dashboard page
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		flashError(w, r, err, "/")
		return
	}

	renderPage(w, "dashboard", templates.DashboardData{
		PageData: pageData(r, "Dashboard"),
		Report:   rep,
	})
}
