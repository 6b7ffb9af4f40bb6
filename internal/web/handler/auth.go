package handler

import (
	"net/http"

	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/services/auth"
	"github.com/asvnatz/strafenkasse/internal/web/middleware"
	"github.com/asvnatz/strafenkasse/internal/web/templates"
)

// AuthHandler handles the login page and session actions
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		// Already logged in
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	renderPage(w, "login", templates.LoginData{
		PageData: pageData(r, "Anmelden"),
	})
}

// Login handles the role selection form. Players need no credential, the
// treasurer must present the access code.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Ungültige Anfrage", http.StatusBadRequest)
		return
	}

	var (
		session *model.Session
		err     error
	)
	switch model.Role(r.PostFormValue("role")) {
	case model.RolePlayer:
		session, err = h.authService.LoginPlayer(r.Context())
	case model.RoleTreasurer:
		session, err = h.authService.LoginTreasurer(r.Context(), r.PostFormValue("code"))
	default:
		middleware.SetFlash(w, "error", "⚠️ Bitte wählen Sie einen Zugriffstyp!")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		flashError(w, r, err, "/")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if session.IsTreasurer() {
		middleware.SetFlash(w, "success", "✅ Erfolgreich als Kassier angemeldet!")
	} else {
		middleware.SetFlash(w, "success", "✅ Erfolgreich als Spieler angemeldet!")
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout deletes the session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		_ = h.authService.Logout(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
