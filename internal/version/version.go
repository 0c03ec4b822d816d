// Package version holds build metadata, overridden at link time with
// -ldflags "-X github.com/MrSnakeDoc/folio/internal/version.Version=...".
package version

import (
	"runtime"
	"time"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = time.Now().UTC().Format(time.RFC3339)
	GoVersion = runtime.Version()
)
