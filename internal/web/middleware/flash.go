package middleware

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/asvnatz/strafenkasse/internal/web/templates"
)

const (
	flashCookieName = "flash"
	flashContextKey = contextKey("flash")
)

// GetFlash retrieves the flash message from the request context.
// Returns nil if no flash message is set.
func GetFlash(ctx context.Context) *templates.FlashMessage {
	flash, _ := ctx.Value(flashContextKey).(*templates.FlashMessage)
	return flash
}

// SetFlash sets a flash message to be displayed on the next request.
func SetFlash(w http.ResponseWriter, flashType, message string) {
	// Encode as type:message; the message is escaped so umlauts survive
	// the cookie value restrictions.
	value := flashType + ":" + url.QueryEscape(message)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash returns middleware that reads and clears flash messages.
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flash *templates.FlashMessage

			cookie, err := r.Cookie(flashCookieName)
			if err == nil && cookie.Value != "" {
				flash = parseFlash(cookie.Value)

				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					Expires:  time.Unix(0, 0),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flash)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseFlash(value string) *templates.FlashMessage {
	for i := 0; i < len(value); i++ {
		if value[i] == ':' {
			message, err := url.QueryUnescape(value[i+1:])
			if err != nil {
				message = value[i+1:]
			}
			return &templates.FlashMessage{
				Type:    value[:i],
				Message: message,
			}
		}
	}
	// No separator, treat the whole value as an info message
	return &templates.FlashMessage{
		Type:    "info",
		Message: value,
	}
}
