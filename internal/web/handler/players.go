package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/services/ledger"
	"github.com/asvnatz/strafenkasse/internal/web/middleware"
	"github.com/asvnatz/strafenkasse/internal/web/templates"
)

// PlayersHandler handles the treasurer's player management page
type PlayersHandler struct {
	ledgerService *ledger.Service
}

// NewPlayersHandler creates a new PlayersHandler
func NewPlayersHandler(ledgerService *ledger.Service) *PlayersHandler {
	return &PlayersHandler{
		ledgerService: ledgerService,
	}
}

// List renders the player management page
func (h *PlayersHandler) List(w http.ResponseWriter, r *http.Request) {
	if sessionRole(r) != model.RoleTreasurer {
		flashError(w, r, model.ErrPermissionDenied, "/dashboard")
		return
	}

	players, err := h.ledgerService.Players(r.Context())
	if err != nil {
		flashError(w, r, err, "/dashboard")
		return
	}

	renderPage(w, "players", templates.PlayersData{
		PageData: pageData(r, "Spieler verwalten"),
		Players:  players,
	})
}

// Create adds a player
func (h *PlayersHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Ungültige Anfrage", http.StatusBadRequest)
		return
	}

	if _, err := h.ledgerService.AddPlayer(r.Context(), sessionRole(r), r.PostFormValue("name")); err != nil {
		flashError(w, r, err, "/players")
		return
	}

	middleware.SetFlash(w, "success", "Spieler hinzugefügt!")
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

// Delete removes a player together with their ledger entries
func (h *PlayersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.ledgerService.RemovePlayer(r.Context(), sessionRole(r), id); err != nil {
		flashError(w, r, err, "/players")
		return
	}

	middleware.SetFlash(w, "success", "Spieler gelöscht!")
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}
