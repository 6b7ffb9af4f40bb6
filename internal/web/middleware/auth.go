package middleware

import (
	"context"
	"net/http"

	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/services/auth"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session"

// GetSession retrieves the authenticated session from the request context.
// Returns nil if the request carries no valid session.
func GetSession(ctx context.Context) *model.Session {
	session, _ := ctx.Value(sessionContextKey).(*model.Session)
	return session
}

// Auth returns middleware that requires a valid session and redirects to the
// login page otherwise.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessionFromRequest(r, authService)
			if session == nil {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves the session when present but lets unauthenticated
// requests through.
func OptionalAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessionFromRequest(r, authService)
			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromRequest(r *http.Request, authService *auth.Service) *model.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	session, err := authService.GetSession(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return session
}
