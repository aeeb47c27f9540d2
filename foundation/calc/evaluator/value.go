// File: value.go
// Title: Evaluation Results
// Description: Defines the runtime values produced by the evaluator: exact
//              decimal numbers, the two boolean constants and Void, the
//              result of an assignment.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial value model

package evaluator

import (
	"github.com/msto63/pascal/foundation/utils/mathx"
)

// Kind identifies the runtime variant of a Value
type Kind int

const (
	KindVoid Kind = iota
	KindNumber
	KindTrue
	KindFalse
)

// String returns the kind name used in error messages
func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindNumber:
		return "number"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	default:
		return "unknown"
	}
}

// Value is the result of evaluating a node. Values are small and are
// passed by value; True and False compare equal to every other copy of
// themselves.
type Value struct {
	kind   Kind
	number mathx.Decimal
}

var (
	// Void is returned by assignments
	Void = Value{kind: KindVoid}

	// True is the boolean true
	True = Value{kind: KindTrue}

	// False is the boolean false
	False = Value{kind: KindFalse}
)

// NumberValue wraps a decimal
func NumberValue(d mathx.Decimal) Value {
	return Value{kind: KindNumber, number: d}
}

// Bool returns True or False
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Kind returns the runtime variant
func (v Value) Kind() Kind {
	return v.kind
}

// IsVoid reports whether v is the no-result value
func (v Value) IsVoid() bool {
	return v.kind == KindVoid
}

// IsNumber reports whether v holds a decimal
func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

// IsBool reports whether v is True or False
func (v Value) IsBool() bool {
	return v.kind == KindTrue || v.kind == KindFalse
}

// Scalar returns the numeric projection of v: the number itself, 1 for
// True and 0 for False. Void has no projection.
func (v Value) Scalar() (mathx.Decimal, bool) {
	switch v.kind {
	case KindNumber:
		return v.number, true
	case KindTrue:
		return mathx.One(), true
	case KindFalse:
		return mathx.Zero(), true
	default:
		return mathx.Decimal{}, false
	}
}

// Truthy reports whether the scalar projection of v is non-zero
func (v Value) Truthy() bool {
	d, ok := v.Scalar()
	return ok && !d.IsZero()
}

// Equal reports whether v and other have the same variant and, for
// numbers, the same numeric value
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindNumber {
		return v.number.Equal(other.number)
	}
	return true
}

// String returns the display form: the decimal with its scale, "true",
// "false", or "" for Void
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return v.number.String()
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	default:
		return ""
	}
}
