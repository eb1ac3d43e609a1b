package session

import (
	"log/slog"
	"net/http"
)

// Middleware loads the session for every request and attaches it to the
// request context. An unreadable cookie is logged and treated as no session.
func Middleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			s, err := store.Load(r)
			if err != nil {
				slog.Warn("Session load error", "error", err)
			}
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), s)))
		}
		return http.HandlerFunc(hfn)
	}
}
