// Package log provides structured logging for the calculator.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, field based logging with JSON, console and logfmt
//              output. Components derive their logger from a shared parent
//              with WithField("component", ...) so every entry names its
//              origin.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial logging package
//
// Usage:
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatLogfmt,
//	}).WithField("component", "calc-parser")
//
//	logger.Debug("parse failed", mdwlog.Fields{"offset": 4})
package log
