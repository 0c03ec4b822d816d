package deps

import (
	"time"

	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/portfolio"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	Service      *portfolio.Service // request pipeline shared by every handler
	StoreBackend string             // "redis" | "memory", reported by /healthz
	APIMessage   string             // body of GET /api/
	MaxBodyBytes int64              // upper bound on JSON request bodies
	AllowedCIDRS []string           // IPs allowed to reach readyz/metrics
	TrustProxy   bool               // true if running behind a trusted reverse proxy
}
