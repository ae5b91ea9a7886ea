package config

// Build information, set through -ldflags
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

