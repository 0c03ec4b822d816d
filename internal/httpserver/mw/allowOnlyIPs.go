package mw

import (
	"net/http"

	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/utils"
)

const forbiddenBody = `{"error":"forbidden"}` + "\n"

// AllowOnlyCIDRS guards operational routes (/readyz, /metrics) so only
// callers inside allowed reach them. Nothing is filtered when allowed holds no
// usable entry.
func AllowOnlyCIDRS(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	matcher := utils.NewIPMatcher(allowed)
	if matcher.IsEmpty() {
		return func(next http.Handler) http.Handler { return next }
	}

	log.Debug("CIDR filter enabled",
		logger.Strings("allowed", allowed),
		logger.Bool("trust_proxy", trustProxy))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, trustProxy)
			if matcher.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			log.Debug("request rejected by CIDR filter",
				logger.String("ip", ip),
				logger.String("path", r.URL.Path))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(forbiddenBody))
		})
	}
}
