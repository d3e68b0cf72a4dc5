// Package constraint provides a generic finite-domain constraint
// satisfaction problem (CSP) engine.
//
// Version: 0.1.0
//
// A Problem is built by registering variables, each carrying an opaque
// client payload and a finite ordered domain of candidate values, and by
// binding constraints to ordered subsets of those variables. A Solver then
// enumerates every complete assignment that satisfies all constraints
// simultaneously using depth-first backtracking with forward checking.
package constraint

// Version represents the current version of the constraint engine.
const Version = "0.1.0"

// VersionInfo provides detailed version information.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetVersionInfo returns detailed version information.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GoVersion: "1.25+",
	}
}
