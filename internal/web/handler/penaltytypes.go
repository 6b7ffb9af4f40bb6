package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/services/ledger"
	"github.com/asvnatz/strafenkasse/internal/web/middleware"
	"github.com/asvnatz/strafenkasse/internal/web/templates"
)

// PenaltyTypesHandler handles the treasurer's penalty catalogue page
type PenaltyTypesHandler struct {
	ledgerService *ledger.Service
}

// NewPenaltyTypesHandler creates a new PenaltyTypesHandler
func NewPenaltyTypesHandler(ledgerService *ledger.Service) *PenaltyTypesHandler {
	return &PenaltyTypesHandler{
		ledgerService: ledgerService,
	}
}

// List renders the catalogue page
func (h *PenaltyTypesHandler) List(w http.ResponseWriter, r *http.Request) {
	if sessionRole(r) != model.RoleTreasurer {
		flashError(w, r, model.ErrPermissionDenied, "/dashboard")
		return
	}

	types, err := h.ledgerService.PenaltyTypes(r.Context())
	if err != nil {
		flashError(w, r, err, "/dashboard")
		return
	}

	renderPage(w, "penaltytypes", templates.PenaltyTypesData{
		PageData: pageData(r, "Vergehen verwalten"),
		Types:    types,
	})
}

// Create adds a catalogue entry
func (h *PenaltyTypesHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Ungültige Anfrage", http.StatusBadRequest)
		return
	}

	amount, err := parseAmount(r.PostFormValue("amount"))
	if err != nil {
		flashError(w, r, model.ErrInvalidAmount, "/penalty-types")
		return
	}

	_, err = h.ledgerService.AddPenaltyType(r.Context(), sessionRole(r),
		r.PostFormValue("name"), amount, strings.TrimSpace(r.PostFormValue("description")))
	if err != nil {
		flashError(w, r, err, "/penalty-types")
		return
	}

	middleware.SetFlash(w, "success", "Vergehen hinzugefügt!")
	http.Redirect(w, r, "/penalty-types", http.StatusSeeOther)
}

// Update edits a catalogue entry in place
func (h *PenaltyTypesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Ungültige Anfrage", http.StatusBadRequest)
		return
	}

	amount, err := parseAmount(r.PostFormValue("amount"))
	if err != nil {
		flashError(w, r, model.ErrInvalidAmount, "/penalty-types")
		return
	}

	err = h.ledgerService.UpdatePenaltyType(r.Context(), sessionRole(r), model.PenaltyType{
		ID:          id,
		Name:        r.PostFormValue("name"),
		Amount:      amount,
		Description: strings.TrimSpace(r.PostFormValue("description")),
	})
	if err != nil {
		flashError(w, r, err, "/penalty-types")
		return
	}

	middleware.SetFlash(w, "success", "Vergehen aktualisiert!")
	http.Redirect(w, r, "/penalty-types", http.StatusSeeOther)
}

// parseAmount accepts both "2.50" and the German "2,50".
func parseAmount(value string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(value), ",", "."), 64)
}
