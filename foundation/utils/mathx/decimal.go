// File: decimal.go
// Title: Exact Decimal Arithmetic
// Description: Implements an exact decimal number on math/big.Rat that also
//              remembers its display scale (digits after the point). Scales
//              propagate through arithmetic so "1.50 + 1" prints as "2.50"
//              and "10.0 % 6" prints as "4.0".
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Decimal with scale tracking, modulo and powers
// - 2026-10-19 v0.1.1: Bound the result size of exact powers

package mathx

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/pascal/foundation/core/error"
)

// DivisionPrecision is the number of significant digits kept when a
// quotient has no finite decimal expansion.
const DivisionPrecision = 28

// floatPowDigits is the number of significant digits kept from a binary
// floating point power.
const floatPowDigits = 15

// DefaultMaxPowerDigits bounds the estimated size of an exact power when
// PowLimits leaves MaxDigits unset
const DefaultMaxPowerDigits int64 = 100000

// bitsPerDigitMilli is log2(10) scaled by 1000
const bitsPerDigitMilli = 3322

// PowLimits bounds exact integer powers. MaxExponent limits |exponent|,
// zero means no limit. MaxDigits limits the estimated digit count of the
// result's numerator plus denominator and of its display scale.
type PowLimits struct {
	MaxExponent int64
	MaxDigits   int64
}

var (
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// Decimal is an exact decimal number. The zero value is 0.
type Decimal struct {
	value *big.Rat
	scale int
}

// NewDecimal parses a plain decimal literal such as "12", "-0.70" or "3.".
// Exponents and fractions are rejected.
func NewDecimal(s string) (Decimal, error) {
	text := strings.TrimSpace(s)
	body := strings.TrimLeft(text, "+-")
	if len(text)-len(body) > 1 {
		return Decimal{}, invalidLiteral(s)
	}

	intPart, fracPart, hasPoint := strings.Cut(body, ".")
	if intPart == "" && fracPart == "" {
		return Decimal{}, invalidLiteral(s)
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return Decimal{}, invalidLiteral(s)
	}

	scale := 0
	if hasPoint {
		scale = len(fracPart)
	}
	num, _ := new(big.Int).SetString("0"+intPart+fracPart, 10)
	if strings.HasPrefix(text, "-") {
		num.Neg(num)
	}
	den := new(big.Int).Exp(bigTen, big.NewInt(int64(scale)), nil)
	return Decimal{value: new(big.Rat).SetFrac(num, den), scale: scale}, nil
}

// MustNewDecimal parses a literal and panics on error
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates an integer decimal
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// Zero returns 0
func Zero() Decimal {
	return NewDecimalFromInt(0)
}

// One returns 1
func One() Decimal {
	return NewDecimalFromInt(1)
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Scale returns the number of digits shown after the decimal point
func (d Decimal) Scale() int {
	return d.scale
}

// Add returns d + other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{
		value: new(big.Rat).Add(d.rat(), other.rat()),
		scale: max(d.scale, other.scale),
	}
}

// Subtract returns d - other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{
		value: new(big.Rat).Sub(d.rat(), other.rat()),
		scale: max(d.scale, other.scale),
	}
}

// Multiply returns d * other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{
		value: new(big.Rat).Mul(d.rat(), other.rat()),
		scale: d.scale + other.scale,
	}
}

// Divide returns d / other. Exact quotients keep the scale d.scale-other.scale
// or the smallest scale that represents them; other quotients are rounded
// half-even to DivisionPrecision significant digits.
func (d Decimal) Divide(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, divisionByZero("divide")
	}

	q := new(big.Rat).Quo(d.rat(), other.rat())
	if minScale, ok := terminatingScale(q.Denom()); ok {
		return Decimal{value: q, scale: max(0, d.scale-other.scale, minScale)}, nil
	}
	return roundSignificant(q, DivisionPrecision), nil
}

// Mod returns the truncated remainder d - other*trunc(d/other).
// The result has the sign of d.
func (d Decimal) Mod(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, divisionByZero("modulo")
	}

	q := new(big.Rat).Quo(d.rat(), other.rat())
	trunc := new(big.Int).Quo(q.Num(), q.Denom())
	prod := new(big.Rat).Mul(other.rat(), new(big.Rat).SetInt(trunc))
	return Decimal{
		value: new(big.Rat).Sub(d.rat(), prod),
		scale: max(d.scale, other.scale),
	}, nil
}

// Neg returns -d
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Rat).Neg(d.rat()), scale: d.scale}
}

// Abs returns |d|
func (d Decimal) Abs() Decimal {
	return Decimal{value: new(big.Rat).Abs(d.rat()), scale: d.scale}
}

// Pow raises d to an integer power. Negative exponents divide one by
// d^|exp| and fail for a zero base.
func (d Decimal) Pow(exp int64) (Decimal, error) {
	if exp == 0 {
		return One(), nil
	}

	n := exp
	if n < 0 {
		n = -n
	}
	e := big.NewInt(n)
	num := new(big.Int).Exp(d.rat().Num(), e, nil)
	den := new(big.Int).Exp(d.rat().Denom(), e, nil)
	p := Decimal{value: new(big.Rat).SetFrac(num, den), scale: d.scale * int(n)}

	if exp > 0 {
		return p, nil
	}
	if d.IsZero() {
		return Decimal{}, mdwerror.New("zero cannot be raised to a negative power").
			WithCode(mdwerror.CodeMathError).
			WithOperation("power")
	}
	return One().Divide(p)
}

// PowDecimal raises a non-negative d to an arbitrary decimal exponent.
// Integer exponents are exact and must stay within limits; other
// exponents are computed in floating point and kept to 15 significant
// digits.
func (d Decimal) PowDecimal(exp Decimal, limits PowLimits) (Decimal, error) {
	if d.IsNegative() {
		return Decimal{}, mdwerror.New("negative base").
			WithCode(mdwerror.CodeMathError).
			WithOperation("power").
			WithDetail("base", d.String())
	}

	if exp.IsInteger() {
		num := exp.rat().Num()
		if !num.IsInt64() || (limits.MaxExponent > 0 && num.CmpAbs(big.NewInt(limits.MaxExponent)) > 0) {
			return Decimal{}, mdwerror.New("exponent too large").
				WithCode(mdwerror.CodeMathError).
				WithOperation("power").
				WithDetail("max_exponent", limits.MaxExponent)
		}
		n := num.Int64()
		if err := d.checkPowerSize(n, limits.MaxDigits); err != nil {
			return Decimal{}, err
		}
		return d.Pow(n)
	}

	if d.IsZero() {
		if exp.IsNegative() {
			return Decimal{}, mdwerror.New("zero cannot be raised to a negative power").
				WithCode(mdwerror.CodeMathError).
				WithOperation("power")
		}
		return Zero(), nil
	}

	f := math.Pow(d.Float64(), exp.Float64())
	if math.IsInf(f, 0) || math.IsNaN(f) || f == 0 {
		return Decimal{}, mdwerror.New("power result out of range").
			WithCode(mdwerror.CodeMathError).
			WithOperation("power")
	}
	return NewDecimalFromFloat(f, floatPowDigits), nil
}

// checkPowerSize rejects d^n when the estimated size of the result exceeds
// maxDigits decimal digits
func (d Decimal) checkPowerSize(n, maxDigits int64) error {
	if maxDigits <= 0 {
		maxDigits = DefaultMaxPowerDigits
	}
	maxDigits = min(maxDigits, math.MaxInt64/bitsPerDigitMilli)
	if n == math.MinInt64 {
		return powerTooLarge(maxDigits)
	}
	if n < 0 {
		n = -n
	}
	if n <= 1 {
		return nil
	}

	maxBits := maxDigits * bitsPerDigitMilli / 1000
	bits := int64(d.rat().Num().BitLen() + d.rat().Denom().BitLen())
	if bits > maxBits/n || int64(d.scale) > maxDigits/n {
		return powerTooLarge(maxDigits)
	}
	return nil
}

func powerTooLarge(maxDigits int64) error {
	return mdwerror.New("power result too large").
		WithCode(mdwerror.CodeMathError).
		WithOperation("power").
		WithDetail("max_digits", maxDigits)
}

// NewDecimalFromFloat converts f keeping at most digits significant digits
func NewDecimalFromFloat(f float64, digits int) Decimal {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', digits, 64))
	if !ok {
		return Zero()
	}
	minScale, _ := terminatingScale(r.Denom())
	return Decimal{value: r, scale: minScale}
}

// IsZero reports whether d == 0
func (d Decimal) IsZero() bool {
	return d.rat().Sign() == 0
}

// IsNegative reports whether d < 0
func (d Decimal) IsNegative() bool {
	return d.rat().Sign() < 0
}

// IsInteger reports whether d has no fractional part
func (d Decimal) IsInteger() bool {
	return d.rat().IsInt()
}

// Sign returns -1, 0 or 1
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// Compare returns -1, 0 or 1 comparing the numeric values
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal reports numeric equality; scale is ignored so 2.0 equals 2
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// LessThan reports d < other
func (d Decimal) LessThan(other Decimal) bool {
	return d.Compare(other) < 0
}

// GreaterThan reports d > other
func (d Decimal) GreaterThan(other Decimal) bool {
	return d.Compare(other) > 0
}

// Float64 returns the nearest float64
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// Int64 returns the value as int64 if it is an integer that fits
func (d Decimal) Int64() (int64, bool) {
	r := d.rat()
	if !r.IsInt() || !r.Num().IsInt64() {
		return 0, false
	}
	return r.Num().Int64(), true
}

// String formats d with exactly Scale() digits after the point
func (d Decimal) String() string {
	r := d.rat()
	scale := d.scale
	if minScale, ok := terminatingScale(r.Denom()); ok && minScale > scale {
		scale = minScale
	}
	return r.FloatString(scale)
}

// terminatingScale returns the smallest number of fractional digits that
// represents 1/den exactly, and false if den has a prime factor other
// than 2 and 5.
func terminatingScale(den *big.Int) (int, bool) {
	rest := new(big.Int).Set(den)
	twos := stripFactor(rest, bigTwo)
	fives := stripFactor(rest, bigFive)
	if rest.Cmp(bigOne) != 0 {
		return 0, false
	}
	return max(twos, fives), true
}

func stripFactor(n, f *big.Int) int {
	count := 0
	q, m := new(big.Int), new(big.Int)
	for {
		q.QuoRem(n, f, m)
		if m.Sign() != 0 {
			return count
		}
		n.Set(q)
		count++
	}
}

// roundSignificant rounds q half-even to digits significant digits.
// The scale never drops below zero, so large integers stay exact.
func roundSignificant(q *big.Rat, digits int) Decimal {
	abs := new(big.Rat).Abs(q)
	// exponent of the leading digit: 10^e <= abs < 10^(e+1)
	intPart := new(big.Int).Quo(abs.Num(), abs.Denom())
	e := 0
	if intPart.Sign() > 0 {
		e = len(intPart.String()) - 1
	} else {
		probe := new(big.Rat).Set(abs)
		ten := new(big.Rat).SetInt(bigTen)
		for probe.Cmp(new(big.Rat).SetInt(bigOne)) < 0 {
			probe.Mul(probe, ten)
			e--
		}
	}

	scale := max(0, digits-1-e)
	return Decimal{value: roundHalfEven(q, scale), scale: scale}
}

// roundHalfEven rounds q to scale fractional digits
func roundHalfEven(q *big.Rat, scale int) *big.Rat {
	pow := new(big.Int).Exp(bigTen, big.NewInt(int64(scale)), nil)
	shifted := new(big.Rat).Mul(q, new(big.Rat).SetInt(pow))

	num, den := shifted.Num(), shifted.Denom()
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))

	// compare 2*|rem| with den to decide the rounding direction
	twice := new(big.Int).Mul(new(big.Int).Abs(rem), bigTwo)
	switch c := twice.Cmp(den); {
	case c > 0, c == 0 && quo.Bit(0) == 1:
		if num.Sign() < 0 {
			quo.Sub(quo, bigOne)
		} else {
			quo.Add(quo, bigOne)
		}
	}
	return new(big.Rat).SetFrac(quo, pow)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func invalidLiteral(s string) error {
	return mdwerror.Newf("invalid decimal literal %q", s).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("parse decimal")
}

func divisionByZero(op string) error {
	return mdwerror.New("division by zero").
		WithCode(mdwerror.CodeMathError).
		WithOperation(op)
}
