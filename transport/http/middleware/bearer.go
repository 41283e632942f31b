package middleware

import (
	"net/http"
	"strings"

	"frontdesk/infras/hotelapi"
	"frontdesk/shared/constant"
)

// BearerToken forwards the caller's bearer token to the hotel backend. Authentication
// happens there; a missing token is left for the backend to answer with 401.
func (a *appMiddleware) BearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constant.RequestHeaderAuthorization)

		token, found := strings.CutPrefix(header, constant.BearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			next.ServeHTTP(w, r)

			return
		}

		ctx := hotelapi.WithBearerToken(r.Context(), strings.TrimSpace(token))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
