// ============================================================================
// euler - Werkbank fuer komplexe Zahlen
// ============================================================================
//
// Package:     version
// Description: Central version management for the euler binaries
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package version

import "runtime"

// Version constants
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Mathx = "0.3.0"
	Demo  = "1.0.0"
	Form  = "1.0.0"
)

// Build metadata, overridden via -ldflags "-X"
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "mathx":
		return Mathx
	case "demo":
		return Demo
	case "form", "tui":
		return Form
	default:
		return Platform
	}
}

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	OS        string
	Arch      string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Platform,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
