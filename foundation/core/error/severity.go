// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels for errors and the default severity per code.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Severity mapping for calculator codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is used for user mistakes that are reported and recovered from
	SeverityLow Severity = iota
	// SeverityMedium is the default for errors without a more specific classification
	SeverityMedium
	// SeverityHigh is used for failures that stop a command, such as a broken config
	SeverityHigh
	// SeverityCritical is reserved for internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode returns the default severity for a given error code
func GetSeverityFromCode(code Code) Severity {
	if code.IsCalculation() || code == CodeInvalidInput || code == CodeNotFound {
		return SeverityLow
	}
	switch code {
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
