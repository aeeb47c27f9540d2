// ============================================================================
// pascal - Exact decimal calculator
// ============================================================================
//
// Package:     version
// Description: Central version management for the calculator binaries
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the calculator components
const (
	// Language version of the expression grammar
	Language = "1.0.0"

	// Component versions
	Parser    = "1.0.0"
	Evaluator = "1.0.0"
	REPL      = "1.0.0"
	TUI       = "1.0.0"
)

// Build metadata, set via -ldflags "-X github.com/msto63/pascal/pkg/core/version.Version=..."
var (
	Version   = "1.0.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info bundles version information for display
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	Language  string
	GoVersion string
	Platform  string
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		Language:  Language,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("pascal %s (commit %s, built %s, %s, %s)",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "evaluator":
		return Evaluator
	case "repl":
		return REPL
	case "tui":
		return TUI
	default:
		return Language
	}
}
