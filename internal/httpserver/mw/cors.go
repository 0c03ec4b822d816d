package mw

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/samber/lo"
)

// DefaultCORSHeaders are the request headers a preflight may ask for unless
// more are configured.
var DefaultCORSHeaders = []string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-Id"}

// CORS allows browsers on origins to call the API with credentials.
// An origin of "*" accepts any site and echoes the caller's origin back,
// since browsers refuse a literal "*" on credentialed responses.
// extraHeaders widen DefaultCORSHeaders.
func CORS(origins, extraHeaders []string) func(http.Handler) http.Handler {
	opts := []handlers.CORSOption{
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders(lo.Uniq(append(append([]string{}, DefaultCORSHeaders...), extraHeaders...))),
		handlers.ExposedHeaders([]string{"X-Request-Id"}),
		handlers.AllowCredentials(),
	}

	if len(origins) == 0 || lo.Contains(origins, "*") {
		opts = append(opts, handlers.AllowedOriginValidator(func(string) bool { return true }))
		cors := handlers.CORS(opts...)
		return func(next http.Handler) http.Handler {
			h := cors(next)
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add("Vary", "Origin")
				h.ServeHTTP(w, r)
			})
		}
	}

	return handlers.CORS(append(opts, handlers.AllowedOrigins(origins))...)
}
