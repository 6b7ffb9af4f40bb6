package handler

import (
	"fmt"
	"net/http"

	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/services/export"
	"github.com/asvnatz/strafenkasse/internal/services/ledger"
	"github.com/asvnatz/strafenkasse/internal/web/templates"
)

const exportPreviewLimit = 20

// ExportHandler handles the treasurer's CSV export page and download
type ExportHandler struct {
	exportService *export.Service
	ledgerService *ledger.Service
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *export.Service, ledgerService *ledger.Service) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		ledgerService: ledgerService,
	}
}

// Page renders the export preview page
func (h *ExportHandler) Page(w http.ResponseWriter, r *http.Request) {
	if sessionRole(r) != model.RoleTreasurer {
		flashError(w, r, model.ErrPermissionDenied, "/dashboard")
		return
	}

	entries, err := h.ledgerService.Penalties(r.Context(), model.PenaltyFilter{})
	if err != nil {
		flashError(w, r, err, "/dashboard")
		return
	}

	preview := entries
	if len(preview) > exportPreviewLimit {
		preview = preview[:exportPreviewLimit]
	}

	renderPage(w, "export", templates.ExportData{
		PageData:   pageData(r, "Export"),
		EntryCount: len(entries),
		Preview:    preview,
	})
}

// Download streams the full ledger as a CSV attachment
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	role := sessionRole(r)
	if role != model.RoleTreasurer {
		flashError(w, r, model.ErrPermissionDenied, "/dashboard")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.exportService.Filename()))

	if err := h.exportService.WriteCSV(r.Context(), role, w); err != nil {
		// Headers may already be sent, the body just ends short.
		return
	}
}
