// File: doc.go
// Title: Calculator Evaluator Package Documentation
// Description: Tree-walking evaluator, runtime values and the symbol table
//              of the calculator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial evaluator implementation

/*
Package evaluator computes the value of calculator expression trees.

Values are exact decimals, the boolean constants True and False, or Void,
the result of an assignment. Arithmetic, unary minus and the logical
operators use the scalar projection of booleans (true is 1, false is 0), so
"(1 < 2) + 1" is 2. Comparisons are stricter: both operands must have the
same variant, and comparing a number with a boolean fails with
TYPE_MISMATCH.

&& and || always evaluate both operands.

Variables live in a SymbolTable. A name is bound once; binding it again
fails with ALREADY_DEFINED and leaves the first value in place:

	table := evaluator.NewSymbolTable()
	node, _ := parser.ParseString("var rate = 0.19")
	_, err := evaluator.Evaluate(node, table)

Failures carry codes from the error package: UNDEFINED_VARIABLE,
ALREADY_DEFINED, MATH_ERROR and TYPE_MISMATCH.
*/
package evaluator
