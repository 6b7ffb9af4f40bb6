package handler

import (
	"net/http"
	"time"

	"github.com/asvnatz/strafenkasse/internal/dependencies/clock"
	"github.com/asvnatz/strafenkasse/internal/services/report"
	"github.com/asvnatz/strafenkasse/internal/web/templates"
)

// defaultStatisticsWindow is how far back the statistics page looks when no
// window is chosen.
const defaultStatisticsWindow = 90

// StatisticsHandler renders the windowed statistics page
type StatisticsHandler struct {
	reportService *report.Service
	clock         clock.Clock
}

// NewStatisticsHandler creates a new StatisticsHandler
func NewStatisticsHandler(reportService *report.Service, clock clock.Clock) *StatisticsHandler {
	return &StatisticsHandler{
		reportService: reportService,
		clock:         clock,
	}
}

// Show renders statistics for the requested window, defaulting to the last
// 90 days.
func (h *StatisticsHandler) Show(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	from := now.AddDate(0, 0, -defaultStatisticsWindow)
	to := now

	query := r.URL.Query()
	if parsed, err := time.Parse(dateParamLayout, query.Get("date_from")); err == nil {
		from = parsed
	}
	if parsed, err := time.Parse(dateParamLayout, query.Get("date_to")); err == nil {
		to = parsed
	}

	rep, err := h.reportService.Statistics(r.Context(), from, to)
	if err != nil {
		flashError(w, r, err, "/dashboard")
		return
	}

	renderPage(w, "statistics", templates.StatisticsData{
		PageData: pageData(r, "Statistiken"),
		Report:   rep,
	})
}
