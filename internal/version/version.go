package version

import "fmt"

var (
	// Version is the release of the tool. It can be overridden via ldflags.
	Version = "0.1.0"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the release string.
func Short() string {
	return Version
}

// Full returns a human-readable build string with commit and build time.
func Full() string {
	return fmt.Sprintf("bump-version %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
