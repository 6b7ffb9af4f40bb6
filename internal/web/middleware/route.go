package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// routeTemplate returns the mux route pattern for the request, falling back
// to the raw path for unrouted requests.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return r.URL.Path
}
