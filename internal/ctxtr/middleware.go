package ctxtr

import (
	"net/http"

	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

// Middleware stores the resolved caller id in the request context.
func Middleware(resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := resolver.ResolveUser(r)
			if err != nil {
				slogx.Warn(r.Context(), "resolve user", slogx.Err(err))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
