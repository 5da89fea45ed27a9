// Package version exposes build metadata injected through -ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the application version, set via ldflags during build.
	Version = "dev"
	// GitCommit is the git commit hash, set via ldflags during build.
	GitCommit = "unknown"
	// BuildDate is the build timestamp, set via ldflags during build.
	BuildDate = "unknown"
)

// Info contains version and build metadata.
type Info struct {
	Version    string `json:"version" example:"1.2.0" doc:"Release version"`
	GitCommit  string `json:"git_commit" example:"3f2a9c1" doc:"Source revision"`
	BuildDate  string `json:"build_date" example:"2026-01-27T10:30:00Z" doc:"Build timestamp"`
	GoVersion  string `json:"go_version" example:"go1.24.11" doc:"Go toolchain"`
	Platform   string `json:"platform" example:"linux/arm64" doc:"OS and architecture"`
	APIVersion int    `json:"api_version" example:"5" doc:"Node topic API version"`
}

// Get returns version and build information. apiVersion is the node topic
// API version reported alongside the build.
func Get(apiVersion int) Info {
	return Info{
		Version:    Version,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		APIVersion: apiVersion,
	}
}

// String returns a one-line version banner.
func String() string {
	if GitCommit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, built %s)", Version, GitCommit, BuildDate)
}
