// Package error provides structured error handling for the calculator.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors carry a Code that classifies the failure, a Severity,
//              free-form details such as the input offset, and an optional
//              cause. HasCode and GetCode walk wrapped chains so callers can
//              classify an error regardless of how often it was wrapped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Calculator error taxonomy
//
// Usage:
//
//	err := mdwerror.New("Illegal character, '$'").
//		WithCode(mdwerror.CodeIllegalCharacter).
//		WithDetail("offset", 4)
//
//	if mdwerror.HasCode(err, mdwerror.CodeIllegalCharacter) {
//		// report to the user and continue
//	}
package error
