// Package version records the build version of bootstrap-orchestrator.
package version

// Version is the current release version.
const Version = "0.1.0"
