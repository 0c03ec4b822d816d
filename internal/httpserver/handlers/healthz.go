package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
)

type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
}

type healthzResponse struct {
	Status        string    `json:"status"`
	Store         string    `json:"store"`
	UptimeSeconds float64   `json:"uptime_seconds"`
	Build         buildInfo `json:"build"`
}

// Healthz is the liveness probe. It reports the configured store backend but
// never calls it; /readyz does that.
func Healthz(d deps.Deps) http.HandlerFunc {
	build := buildInfo{
		Version:   d.Version,
		Commit:    d.Commit,
		BuildDate: d.BuildDate,
		GoVersion: d.GoVersion,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthzResponse{
			Status:        "ok",
			Store:         d.StoreBackend,
			UptimeSeconds: time.Since(d.StartTime).Seconds(),
			Build:         build,
		})
	}
}
