// File: printer.go
// Title: AST Printing, Comparison and Traversal
// Description: String forms of all nodes, structural equality and a
//              depth-first traversal helper.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Printer, Equal and Inspect

package ast

import (
	"strings"
)

// String prints the literal with its scale preserved
func (n *NumberLiteral) String() string {
	return n.Value.String()
}

// String prints "(<op><operand>)"
func (n *Unary) String() string {
	return "(" + n.Op.Symbol() + operandString(n.Operand) + ")"
}

// String prints "(<left> <op> <right>)"
func (n *Binary) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(operandString(n.Left))
	b.WriteString(" ")
	b.WriteString(n.Op.Symbol())
	b.WriteString(" ")
	b.WriteString(operandString(n.Right))
	b.WriteString(")")
	return b.String()
}

// String prints "var <name> = <value>"
func (n *Assignment) String() string {
	return "var " + n.Name + " = " + operandString(n.Value)
}

// String prints the variable name
func (n *ValueAccess) String() string {
	return n.Name
}

func operandString(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}

// Equal reports whether a and b are structurally equal. Positions are
// ignored and number literals compare by numeric value.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *NumberLiteral:
		y, ok := b.(*NumberLiteral)
		return ok && x.Value.Equal(y.Value)
	case *Unary:
		y, ok := b.(*Unary)
		return ok && x.Op == y.Op && Equal(x.Operand, y.Operand)
	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Assignment:
		y, ok := b.(*Assignment)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)
	case *ValueAccess:
		y, ok := b.(*ValueAccess)
		return ok && x.Name == y.Name
	}
	return false
}

// Inspect traverses the tree rooted at node depth-first, parents before
// children. Children are skipped when fn returns false.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Unary:
		Inspect(n.Operand, fn)
	case *Binary:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *Assignment:
		Inspect(n.Value, fn)
	}
}

// Count returns the number of nodes in the tree rooted at node
func Count(node Node) int {
	count := 0
	Inspect(node, func(Node) bool {
		count++
		return true
	})
	return count
}
