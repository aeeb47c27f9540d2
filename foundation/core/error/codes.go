// File: codes.go
// Title: Error Codes
// Description: Defines the error code taxonomy used across the calculator.
//              Codes classify failures from the lexer, parser and evaluator
//              as well as the supporting configuration and CLI layers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Calculator error taxonomy

package error

// Code represents a structured error code
type Code string

// Generic error codes
const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"
)

// Calculation error codes. Each code corresponds to exactly one failure
// kind of the tokenize, parse and evaluate pipeline.
const (
	CodeIllegalCharacter  Code = "ILLEGAL_CHARACTER"
	CodeSyntaxError       Code = "SYNTAX_ERROR"
	CodeUnexpectedEOF     Code = "UNEXPECTED_EOF"
	CodeUndefinedVariable Code = "UNDEFINED_VARIABLE"
	CodeAlreadyDefined    Code = "ALREADY_DEFINED"
	CodeMathError         Code = "MATH_ERROR"
	CodeTypeMismatch      Code = "TYPE_MISMATCH"
)

// Configuration error codes
const (
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

var knownCodes = map[Code]string{
	CodeUnknown:           "generic",
	CodeInternal:          "generic",
	CodeInvalidInput:      "generic",
	CodeNotFound:          "generic",
	CodeIllegalCharacter:  "lexer",
	CodeSyntaxError:       "parser",
	CodeUnexpectedEOF:     "parser",
	CodeUndefinedVariable: "evaluator",
	CodeAlreadyDefined:    "evaluator",
	CodeMathError:         "evaluator",
	CodeTypeMismatch:      "evaluator",
	CodeConfigError:       "config",
	CodeInvalidConfig:     "config",
}

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is one of the known codes
func (c Code) IsValid() bool {
	_, ok := knownCodes[c]
	return ok
}

// Category returns the pipeline stage or layer the code belongs to.
// Unknown codes report "unknown".
func (c Code) Category() string {
	if cat, ok := knownCodes[c]; ok {
		return cat
	}
	return "unknown"
}

// IsCalculation reports whether the code is raised while tokenizing,
// parsing or evaluating an input line.
func (c Code) IsCalculation() bool {
	switch c.Category() {
	case "lexer", "parser", "evaluator":
		return true
	}
	return false
}
