package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recovery creates panic recovery middleware. A panicking handler is logged
// with its stack and answered with an HTML error page.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)

					panicPage(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func panicPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="de">
<head><title>Fehler</title></head>
<body>
<h1>Interner Fehler</h1>
<p>Datenbankfehler oder unerwarteter Fehler. Bitte später erneut versuchen.</p>
<p><a href="/">Zurück zur Startseite</a></p>
</body>
</html>`))
}
