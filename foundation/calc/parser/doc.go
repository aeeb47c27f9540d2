// File: doc.go
// Title: Calculator Parser Package Documentation
// Description: Lexical analyzer and recursive descent parser for calculator
//              input lines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

/*
Package parser turns calculator input into expression trees.

The package has two stages:

  • Tokenize returns a Lexer, a lazy TokenReader over one input line
  • Parser pulls tokens from any TokenReader and builds an ast.Node

Lexing is lazy. An illegal character is reported only when the parser
reaches it, so a syntax error earlier in the line wins.

Numbers keep the digits they were written with: ".70" becomes 0.70 and "12."
becomes 12.0. Identifiers start with an ASCII letter and continue with
letters, digits and underscores. The only keyword is "var".

Errors carry codes from the error package: ILLEGAL_CHARACTER from the lexer,
SYNTAX_ERROR and UNEXPECTED_EOF from the parser.

Basic usage:

	node, err := parser.ParseString("var x = (1 + 2) * 3")
	if err != nil {
		return err
	}
	fmt.Println(node) // var x = ((1 + 2) * 3)
*/
package parser
