// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the exact decimal number used by the
//              calculator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Decimal with scale tracking

// Package mathx provides exact decimal arithmetic.
//
// A Decimal is a rational number that is always representable as a finite
// decimal fraction, together with the number of digits shown after the
// point. Literals keep their written scale, addition and subtraction use
// the larger scale, multiplication adds scales. Quotients without a finite
// expansion are rounded half-even to 28 significant digits.
//
//	a := mathx.MustNewDecimal("10.0")
//	r, _ := a.Mod(mathx.NewDecimalFromInt(6))
//	fmt.Println(r) // 4.0
//
// Errors are *error.Error values with CodeMathError (division by zero,
// invalid powers) or CodeInvalidInput (malformed literals).
package mathx
