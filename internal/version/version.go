// Package version exposes build metadata reported by the /version endpoint.
package version

// Version is the release version of the binary.
var Version = "0.0.0"

// GitCommit is the git commit hash, injected at build time via ldflags.
var GitCommit = "unknown"

// BuildDate is the build timestamp, injected at build time via ldflags.
var BuildDate = "unknown"
