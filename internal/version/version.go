package version

// Build metadata, injected via -ldflags at release time. BuildVersion stays
// "dev" for local builds, which also keeps crash reporting disabled unless a
// DSN is injected alongside it.
var (
	BuildVersion = "dev"
	BuildCommit  = "none"
	BuildDate    = "unknown"
	SentryDSN    = ""
)
