package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/asvnatz/strafenkasse/internal/dependencies/clock"
	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/services/ledger"
	"github.com/asvnatz/strafenkasse/internal/web/middleware"
	"github.com/asvnatz/strafenkasse/internal/web/templates"
)

const dateParamLayout = "2006-01-02"

// PenaltiesHandler handles the ledger listing, recording and deletion
type PenaltiesHandler struct {
	ledgerService *ledger.Service
	clock         clock.Clock
}

// NewPenaltiesHandler creates a new PenaltiesHandler
func NewPenaltiesHandler(ledgerService *ledger.Service, clock clock.Clock) *PenaltiesHandler {
	return &PenaltiesHandler{
		ledgerService: ledgerService,
		clock:         clock,
	}
}

// List renders the filtered ledger page
func (h *PenaltiesHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r.URL.Query())

	entries, err := h.ledgerService.Penalties(r.Context(), filter)
	if err != nil {
		flashError(w, r, err, "/dashboard")
		return
	}
	players, err := h.ledgerService.Players(r.Context())
	if err != nil {
		flashError(w, r, err, "/dashboard")
		return
	}
	types, err := h.ledgerService.PenaltyTypes(r.Context())
	if err != nil {
		flashError(w, r, err, "/dashboard")
		return
	}

	var total float64
	for _, e := range entries {
		total += e.Total
	}

	renderPage(w, "penalties", templates.PenaltiesData{
		PageData: pageData(r, "Strafen"),
		Entries:  entries,
		Players:  players,
		Types:    types,
		Filter:   filter,
		Total:    total,
		Today:    h.clock.Now(),
	})
}

// Create records a new ledger entry from the add form
func (h *PenaltiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Ungültige Anfrage", http.StatusBadRequest)
		return
	}

	date, err := time.Parse(dateParamLayout, r.PostFormValue("date"))
	if err != nil {
		middleware.SetFlash(w, "error", "Ungültiges Datum!")
		http.Redirect(w, r, "/penalties", http.StatusSeeOther)
		return
	}
	playerID, _ := strconv.ParseInt(r.PostFormValue("player_id"), 10, 64)
	typeID, _ := strconv.ParseInt(r.PostFormValue("penalty_type_id"), 10, 64)
	quantity, _ := strconv.Atoi(r.PostFormValue("quantity"))

	_, err = h.ledgerService.RecordPenalty(r.Context(), sessionRole(r), date, playerID, typeID, quantity, r.PostFormValue("notes"))
	if err != nil {
		flashError(w, r, err, "/penalties")
		return
	}

	middleware.SetFlash(w, "success", "Strafe erfolgreich hinzugefügt!")
	http.Redirect(w, r, "/penalties", http.StatusSeeOther)
}

// Delete removes a ledger entry
func (h *PenaltiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.ledgerService.DeletePenalty(r.Context(), sessionRole(r), id); err != nil {
		flashError(w, r, err, "/penalties")
		return
	}

	middleware.SetFlash(w, "success", "Strafe gelöscht!")
	http.Redirect(w, r, "/penalties", http.StatusSeeOther)
}

// parseFilter reads the listing filter from query parameters, ignoring
// values that do not parse.
func parseFilter(query url.Values) model.PenaltyFilter {
	var filter model.PenaltyFilter
	if id, err := strconv.ParseInt(query.Get("player_id"), 10, 64); err == nil && id > 0 {
		filter.PlayerID = id
	}
	if from, err := time.Parse(dateParamLayout, query.Get("date_from")); err == nil {
		filter.DateFrom = &from
	}
	if to, err := time.Parse(dateParamLayout, query.Get("date_to")); err == nil {
		filter.DateTo = &to
	}
	return filter
}
