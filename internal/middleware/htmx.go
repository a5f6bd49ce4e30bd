package middleware

import (
	"net/http"
)

const (
	headerHXRequest = "HX-Request"
	headerHXBoosted = "HX-Boosted"
	headerHXTarget  = "HX-Target"
)

// HTMX flags htmx requests in the context. Partial responses depend on the
// flag, so Vary includes HX-Request for shared caches.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", headerHXRequest)
		// boosted navigations expect a full page
		is := r.Header.Get(headerHXRequest) == "true" && r.Header.Get(headerHXBoosted) != "true"
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), is)))
	})
}

// HXTarget returns the id of the element htmx will swap, without a leading '#'.
func HXTarget(r *http.Request) string {
	t := r.Header.Get(headerHXTarget)
	if len(t) > 0 && t[0] == '#' {
		return t[1:]
	}
	return t
}
