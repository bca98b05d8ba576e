package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/silverdr/inspect/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/silverdr/inspect/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/silverdr/inspect/internal/version.Date={{.Date}}
)
