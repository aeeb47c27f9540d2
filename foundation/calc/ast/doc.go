// File: doc.go
// Title: Calculator AST Package Documentation
// Description: Expression tree produced by the parser and consumed by the
//              evaluator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial node set

/*
Package ast defines the expression tree of the calculator.

The node set is closed: NumberLiteral, Unary, Binary, Assignment and
ValueAccess are the only types implementing Node. Unary and Binary carry an
Operator that selects the concrete operation, so

	4*5/2%3

is represented as

	NewBinary(OpModulo,
		NewBinary(OpDivide,
			NewBinary(OpMultiply, four, five),
			two),
		three)

where four is Number(mathx.NewDecimalFromInt(4)) and so on.

Every node prints a fully parenthesised form that tokenizes and parses
back into an equal tree.
*/
package ast
