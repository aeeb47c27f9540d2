// File: evaluator.go
// Title: Calculator Tree-Walking Evaluator
// Description: Evaluates expression trees against a symbol table using
//              exact decimal arithmetic. Every node type and operator is
//              handled by an exhaustive switch.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial evaluator

package evaluator

import (
	"fmt"

	mdwast "github.com/msto63/pascal/foundation/calc/ast"
	mdwerror "github.com/msto63/pascal/foundation/core/error"
	mdwlog "github.com/msto63/pascal/foundation/core/log"
	"github.com/msto63/pascal/foundation/utils/mathx"
)

// DefaultMaxExponent bounds integer power exponents when Options leaves
// MaxExponent unset
const DefaultMaxExponent int64 = 10000

// DefaultMaxPowerDigits bounds the estimated digit count of an exact power
const DefaultMaxPowerDigits = mathx.DefaultMaxPowerDigits

// Evaluator walks expression trees. It holds configuration only, so one
// Evaluator can serve any number of symbol tables.
type Evaluator struct {
	logger *mdwlog.Logger
	limits mathx.PowLimits
}

// Options configures evaluator behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxExponent    int64
	MaxPowerDigits int64
}

// New creates an evaluator with the given options
func New(opts Options) *Evaluator {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxExponent <= 0 {
		opts.MaxExponent = DefaultMaxExponent
	}
	if opts.MaxPowerDigits <= 0 {
		opts.MaxPowerDigits = DefaultMaxPowerDigits
	}
	return &Evaluator{
		logger: opts.Logger.WithField("component", "calc-evaluator"),
		limits: mathx.PowLimits{
			MaxExponent: opts.MaxExponent,
			MaxDigits:   opts.MaxPowerDigits,
		},
	}
}

// Evaluate evaluates node with a default evaluator
func Evaluate(node mdwast.Node, table *SymbolTable) (Value, error) {
	return New(Options{}).Evaluate(node, table)
}

// Evaluate returns the value of node. Assignments bind into table and
// return Void; a nil node also yields Void. Bindings made before a
// failure are kept.
func (e *Evaluator) Evaluate(node mdwast.Node, table *SymbolTable) (Value, error) {
	if node == nil {
		return Void, nil
	}
	if table == nil {
		return Void, mdwerror.New("symbol table is required").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("evaluate")
	}

	v, err := e.eval(node, table)
	if err != nil {
		e.logger.Debug("evaluation failed", mdwlog.Fields{
			"error":      err.Error(),
			"error_code": mdwerror.GetCode(err).String(),
		})
		return Void, err
	}

	e.logger.Trace("evaluation completed", mdwlog.Fields{"result": v.String()})
	return v, nil
}

func (e *Evaluator) eval(node mdwast.Node, table *SymbolTable) (Value, error) {
	switch n := node.(type) {
	case *mdwast.NumberLiteral:
		return NumberValue(n.Value), nil

	case *mdwast.ValueAccess:
		v, ok := table.Lookup(n.Name)
		if !ok {
			return Void, withOffset(mdwerror.New(fmt.Sprintf("'%s' is not defined", n.Name)).
				WithCode(mdwerror.CodeUndefinedVariable).
				WithDetail("name", n.Name), n.Pos)
		}
		return v, nil

	case *mdwast.Assignment:
		v, err := e.eval(n.Value, table)
		if err != nil {
			return Void, err
		}
		if v.IsVoid() {
			return Void, typeMismatch(n.Name, v, v, n.Pos)
		}
		if err := table.Define(n.Name, v); err != nil {
			if mdwErr, ok := err.(*mdwerror.Error); ok {
				return Void, withOffset(mdwErr, n.Pos)
			}
			return Void, err
		}
		return Void, nil

	case *mdwast.Unary:
		operand, err := e.eval(n.Operand, table)
		if err != nil {
			return Void, err
		}
		return e.unary(n, operand)

	case *mdwast.Binary:
		left, err := e.eval(n.Left, table)
		if err != nil {
			return Void, err
		}
		right, err := e.eval(n.Right, table)
		if err != nil {
			return Void, err
		}
		return e.binary(n, left, right)

	default:
		return Void, mdwerror.New(fmt.Sprintf("unsupported node %T", node)).
			WithCode(mdwerror.CodeInternal).
			WithOperation("evaluate")
	}
}

func (e *Evaluator) unary(n *mdwast.Unary, operand Value) (Value, error) {
	d, ok := operand.Scalar()
	if !ok {
		return Void, typeMismatch(n.Op.String(), operand, operand, n.Pos)
	}

	switch n.Op {
	case mdwast.OpPlus:
		return operand, nil
	case mdwast.OpMinus:
		return NumberValue(d.Neg()), nil
	case mdwast.OpNot:
		return Bool(d.IsZero()), nil
	default:
		return Void, unknownOperator(n.Op)
	}
}

func (e *Evaluator) binary(n *mdwast.Binary, left, right Value) (Value, error) {
	if n.Op.IsComparison() {
		return e.compare(n, left, right)
	}
	if !n.Op.IsArithmetic() && !n.Op.IsLogical() {
		return Void, unknownOperator(n.Op)
	}

	a, okA := left.Scalar()
	b, okB := right.Scalar()
	if !okA || !okB {
		return Void, typeMismatch(n.Op.String(), left, right, n.Pos)
	}

	var (
		result mathx.Decimal
		err    error
	)
	switch n.Op {
	case mdwast.OpAnd:
		return Bool(!a.IsZero() && !b.IsZero()), nil
	case mdwast.OpOr:
		return Bool(!a.IsZero() || !b.IsZero()), nil
	case mdwast.OpAdd:
		result = a.Add(b)
	case mdwast.OpSubtract:
		result = a.Subtract(b)
	case mdwast.OpMultiply:
		result = a.Multiply(b)
	case mdwast.OpDivide:
		result, err = a.Divide(b)
	case mdwast.OpModulo:
		result, err = a.Mod(b)
	case mdwast.OpPower:
		result, err = a.PowDecimal(b, e.limits)
	}
	if err != nil {
		return Void, mathError(err, n)
	}
	return NumberValue(result), nil
}

// compare requires both operands to share a variant. Booleans of the same
// variant are equal.
func (e *Evaluator) compare(n *mdwast.Binary, left, right Value) (Value, error) {
	if left.kind != right.kind || left.IsVoid() {
		return Void, typeMismatch(n.Op.String(), left, right, n.Pos)
	}

	c := 0
	if left.IsNumber() {
		c = left.number.Compare(right.number)
	}

	switch n.Op {
	case mdwast.OpLessThan:
		return Bool(c < 0), nil
	case mdwast.OpGreaterThan:
		return Bool(c > 0), nil
	case mdwast.OpLessOrEqual:
		return Bool(c <= 0), nil
	case mdwast.OpGreaterOrEqual:
		return Bool(c >= 0), nil
	case mdwast.OpEqual:
		return Bool(c == 0), nil
	case mdwast.OpNotEqual:
		return Bool(c != 0), nil
	default:
		return Void, unknownOperator(n.Op)
	}
}

func mathError(cause error, n *mdwast.Binary) error {
	return withOffset(mdwerror.Wrap(cause, "Runtime math error").
		WithCode(mdwerror.CodeMathError).
		WithDetail("operator", n.Op.Symbol()), n.Pos)
}

func typeMismatch(operation string, left, right Value, pos mdwast.Position) error {
	return withOffset(mdwerror.New(fmt.Sprintf("Unsupported operation between %s and %s", left.kind, right.kind)).
		WithCode(mdwerror.CodeTypeMismatch).
		WithOperation(operation), pos)
}

func unknownOperator(op mdwast.Operator) error {
	return mdwerror.New(fmt.Sprintf("unsupported operator %s", op)).
		WithCode(mdwerror.CodeInternal).
		WithOperation("evaluate")
}

func withOffset(err *mdwerror.Error, pos mdwast.Position) *mdwerror.Error {
	if pos.Offset >= 0 {
		err.WithDetail("offset", pos.Offset)
	}
	return err
}
