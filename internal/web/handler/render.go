package handler

import (
	"errors"
	"net/http"

	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/web/middleware"
	"github.com/asvnatz/strafenkasse/internal/web/templates"
)

// renderPage writes the named template with an HTML content type.
func renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, name, data); err != nil {
		http.Error(w, "Interner Fehler", http.StatusInternalServerError)
	}
}

// pageData assembles the shared view model from the request context.
func pageData(r *http.Request, title string) templates.PageData {
	return templates.PageData{
		Title:   title,
		Session: middleware.GetSession(r.Context()),
		Flash:   middleware.GetFlash(r.Context()),
	}
}

// flashError maps a service error onto the user-facing German notices and
// redirects back to target.
func flashError(w http.ResponseWriter, r *http.Request, err error, target string) {
	middleware.SetFlash(w, "error", errorMessage(err))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrPermissionDenied):
		return "Keine Berechtigung."
	case errors.Is(err, model.ErrAlreadyExists):
		return "Eintrag existiert bereits!"
	case errors.Is(err, model.ErrEmptyName):
		return "Name darf nicht leer sein!"
	case errors.Is(err, model.ErrInvalidQuantity):
		return "Ungültige Anzahl!"
	case errors.Is(err, model.ErrInvalidAmount):
		return "Ungültiger Betrag!"
	case errors.Is(err, model.ErrInvalidCode):
		return "❌ Ungültiger Zugangscode!"
	case errors.Is(err, model.ErrPlayerNotFound):
		return "Spieler nicht gefunden!"
	case errors.Is(err, model.ErrPenaltyTypeNotFound):
		return "Vergehen nicht gefunden!"
	case errors.Is(err, model.ErrPenaltyNotFound):
		return "Strafe nicht gefunden!"
	default:
		return "Datenbankfehler!"
	}
}

// sessionRole returns the role of the current session, defaulting to the
// read-only player role.
func sessionRole(r *http.Request) model.Role {
	if session := middleware.GetSession(r.Context()); session != nil {
		return session.Role
	}
	return model.RolePlayer
}
