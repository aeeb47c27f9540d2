// File: nodes.go
// Title: Calculator AST Node Definitions
// Description: Defines the closed set of expression nodes produced by the
//              parser: number literals, unary and binary operations, variable
//              assignment and variable access.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial node set

package ast

import (
	"github.com/msto63/pascal/foundation/utils/mathx"
)

// Node is implemented by exactly the node types of this package
type Node interface {
	// String returns the fully parenthesised source form of the node
	String() string

	// Position returns the offset of the token that introduced the node:
	// the operator for Unary and Binary, the keyword for Assignment
	Position() Position

	node()
}

// Position is a byte offset in the input line, -1 when unknown
type Position struct {
	Offset int
}

// Operator identifies the operation of a Unary or Binary node
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpPower
	OpAnd
	OpOr
	OpLessThan
	OpGreaterThan
	OpLessOrEqual
	OpGreaterOrEqual
	OpEqual
	OpNotEqual

	// unary operators
	OpPlus
	OpMinus
	OpNot
)

var operatorInfo = [...]struct {
	name   string
	symbol string
}{
	OpAdd:            {"Add", "+"},
	OpSubtract:       {"Subtract", "-"},
	OpMultiply:       {"Multiply", "*"},
	OpDivide:         {"Divide", "/"},
	OpModulo:         {"Modulo", "%"},
	OpPower:          {"Power", "^"},
	OpAnd:            {"And", "&&"},
	OpOr:             {"Or", "||"},
	OpLessThan:       {"LessThan", "<"},
	OpGreaterThan:    {"GreaterThan", ">"},
	OpLessOrEqual:    {"LessOrEqual", "<="},
	OpGreaterOrEqual: {"GreaterOrEqual", ">="},
	OpEqual:          {"Equal", "=="},
	OpNotEqual:       {"NotEqual", "!="},
	OpPlus:           {"UnaryPlus", "+"},
	OpMinus:          {"UnaryMinus", "-"},
	OpNot:            {"Not", "!"},
}

// String returns the operator's node name, e.g. "Modulo"
func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorInfo) {
		return "Unknown"
	}
	return operatorInfo[op].name
}

// Symbol returns the source symbol of the operator
func (op Operator) Symbol() string {
	if op < 0 || int(op) >= len(operatorInfo) {
		return "?"
	}
	return operatorInfo[op].symbol
}

// IsUnary reports whether op belongs on a Unary node
func (op Operator) IsUnary() bool {
	return op == OpPlus || op == OpMinus || op == OpNot
}

// IsArithmetic reports whether op is one of + - * / % ^
func (op Operator) IsArithmetic() bool {
	return op >= OpAdd && op <= OpPower
}

// IsComparison reports whether op is an ordering or equality test
func (op Operator) IsComparison() bool {
	return op >= OpLessThan && op <= OpNotEqual
}

// IsLogical reports whether op is && or ||
func (op Operator) IsLogical() bool {
	return op == OpAnd || op == OpOr
}

// NumberLiteral is a decimal constant
type NumberLiteral struct {
	Value mathx.Decimal
	Pos   Position
}

// Unary applies Op to a single operand
type Unary struct {
	Op      Operator
	Operand Node
	Pos     Position
}

// Binary applies Op to two operands
type Binary struct {
	Op    Operator
	Left  Node
	Right Node
	Pos   Position
}

// Assignment binds Name to the result of Value
type Assignment struct {
	Name  string
	Value Node
	Pos   Position
}

// ValueAccess reads the variable Name
type ValueAccess struct {
	Name string
	Pos  Position
}

func (n *NumberLiteral) Position() Position { return n.Pos }
func (n *Unary) Position() Position         { return n.Pos }
func (n *Binary) Position() Position        { return n.Pos }
func (n *Assignment) Position() Position    { return n.Pos }
func (n *ValueAccess) Position() Position   { return n.Pos }

func (*NumberLiteral) node() {}
func (*Unary) node()         {}
func (*Binary) node()        {}
func (*Assignment) node()    {}
func (*ValueAccess) node()   {}

// Number returns a literal node
func Number(value mathx.Decimal) *NumberLiteral {
	return &NumberLiteral{Value: value}
}

// NewUnary returns a unary node; op must satisfy IsUnary
func NewUnary(op Operator, operand Node) *Unary {
	return &Unary{Op: op, Operand: operand}
}

// NewBinary returns a binary node; op must not satisfy IsUnary
func NewBinary(op Operator, left, right Node) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

// Assign returns an assignment node
func Assign(name string, value Node) *Assignment {
	return &Assignment{Name: name, Value: value}
}

// Access returns a variable access node
func Access(name string) *ValueAccess {
	return &ValueAccess{Name: name}
}
