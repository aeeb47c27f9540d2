// File: doc.go
// Title: Calculator Package Documentation
// Description: Session engine of the pascal calculator. Connects the
//              parser and evaluator packages to a per-session symbol table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial calculator implementation

/*
Package calc evaluates calculator input lines.

Package: calc
Title: Exact Decimal Expression Calculator
Description: Runs the full pipeline for one line of input: the lexer
             produces tokens on demand, the parser builds an expression
             tree and the evaluator computes it against the session's
             symbol table.

Key Features:
  • Exact decimal arithmetic that keeps the written scale (1.50 + 1 is 2.50)
  • Comparisons and logical operators over numbers and booleans
  • Single assignment variables (var x = 2)
  • Coded errors for every stage of the pipeline
  • Structured debug logging per session

# Language

	1 + 2 * 3                 # 7
	10.0 % 6                  # 4.0
	2 ^ -1                    # 0.5
	!0 && (20+5 <= 80*15)     # true
	var rate = 0.19           # binds rate, prints nothing
	100 * (1 + rate)          # 119.00

Operators from lowest to highest precedence:

	&& ||                     logical, both sides always evaluated
	!                         logical not
	< > <= >= == !=           comparison
	+ -                       additive
	* / %                     multiplicative, % truncates toward zero
	+x -x                     sign
	^                         power, right associative

# Usage

	session := calc.NewSession(calc.Options{})
	value, err := session.Eval("var x = 4")
	value, err = session.Eval("x ^ 0.5")
	fmt.Println(value) // 2

A name can be bound only once per session. Session.Reset discards every
binding.
*/
package calc
