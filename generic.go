// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements operations generic over the decimal classes, and mixed
// operations between decimal values and native integers.

package decfast

import (
	"github.com/db47h/decfast/uint128"
	"golang.org/x/exp/constraints"
)

// Decimal is the set of decimal value types.
type Decimal interface {
	Decimal32 | Decimal64 | Decimal128

	IsInf() bool
	IsNaN() bool
	IsSignalingNaN() bool
	IsFinite() bool
	IsNormal() bool
	IsZero() bool
	Signbit() bool
	Sign() int
	String() string
	Text(format byte, prec int) string
}

func unpack[D Decimal](x D) (num, *class) {
	switch v := any(x).(type) {
	case Decimal32:
		return v.num(), d32
	case Decimal64:
		return v.num(), d64
	case Decimal128:
		return v.num(), d128
	}
	panic("unreachable")
}

func pack[D Decimal](x num) D {
	var z D
	switch p := any(&z).(type) {
	case *Decimal32:
		*p = pack32(x)
	case *Decimal64:
		*p = pack64(x)
	case *Decimal128:
		*p = pack128(x)
	}
	return z
}

func classOf[D Decimal]() *class {
	var z D
	_, c := unpack(z)
	return c
}

func binaryOp[D Decimal](x, y D, mode RoundingMode, op func(c *class, x, y num, mode RoundingMode) num) D {
	xn, c := unpack(x)
	yn, _ := unpack(y)
	return pack[D](op(c, xn, yn, mode))
}

// New returns the value of class D nearest to (-1)**neg * sig * 10**exp,
// rounded with DefaultRoundingMode.
func New[D Decimal](sig uint128.Uint128, exp int, neg bool) D {
	return NewMode[D](sig, exp, neg, DefaultRoundingMode)
}

// NewMode is like New with an explicit rounding mode.
func NewMode[D Decimal](sig uint128.Uint128, exp int, neg bool, mode RoundingMode) D {
	return pack[D](classOf[D]().make(sig, exp, neg, false, mode))
}

// Unpack returns the significand, unbiased exponent and sign of x. It is the
// generic form of the Triple methods.
func Unpack[D Decimal](x D) (sig uint128.Uint128, exp int, neg bool) {
	switch v := any(x).(type) {
	case Decimal32:
		s, e, n := v.Triple()
		return uint128.From64(uint64(s)), e, n
	case Decimal64:
		s, e, n := v.Triple()
		return uint128.From64(s), e, n
	case Decimal128:
		return v.Triple()
	}
	panic("unreachable")
}

// Quantum returns the coefficient and exponent of x with trailing zeros
// removed. exp is the quantum exponent of x. The result is (0, 0) for zeros
// and non-finite values.
func Quantum[D Decimal](x D) (sig uint128.Uint128, exp int) {
	n, _ := unpack(x)
	if n.form != finite {
		return uint128.Zero, 0
	}
	return n.quantum()
}

// Inf returns +Inf if neg is false, -Inf otherwise.
func Inf[D Decimal](neg bool) D { return pack[D](infOf(neg)) }

// NaN returns a quiet NaN.
func NaN[D Decimal]() D { return pack[D](qNaN) }

// SignalingNaN returns a signaling NaN.
func SignalingNaN[D Decimal]() D { return pack[D](num{form: snan}) }

// Parse converts s to the value of class D nearest to its value.
func Parse[D Decimal](s string) (D, error) {
	x, err := classOf[D]().parse(s, DefaultRoundingMode)
	return pack[D](x), err
}

// ParseMode is like Parse with an explicit rounding mode.
func ParseMode[D Decimal](s string, mode RoundingMode) (D, error) {
	x, err := classOf[D]().parse(s, mode)
	return pack[D](x), err
}

// FromFloat64 returns the value of class D nearest to the shortest decimal
// representation of f.
func FromFloat64[D Decimal](f float64) D { return pack[D](classOf[D]().fromFloat(f, 64)) }

// Float64 returns the float64 value nearest to x.
func Float64[D Decimal](x D) float64 {
	n, c := unpack(x)
	return toFloat(c, n, 64)
}

// Float32 returns the float32 value nearest to x.
func Float32[D Decimal](x D) float32 {
	n, c := unpack(x)
	return float32(toFloat(c, n, 32))
}

// Add returns x + y.
func Add[D Decimal](x, y D) D { return binaryOp(x, y, DefaultRoundingMode, (*class).add) }

// AddMode returns x + y rounded with mode.
func AddMode[D Decimal](x, y D, mode RoundingMode) D { return binaryOp(x, y, mode, (*class).add) }

// Sub returns x - y.
func Sub[D Decimal](x, y D) D { return binaryOp(x, y, DefaultRoundingMode, (*class).sub) }

// SubMode returns x - y rounded with mode.
func SubMode[D Decimal](x, y D, mode RoundingMode) D { return binaryOp(x, y, mode, (*class).sub) }

// Mul returns x * y.
func Mul[D Decimal](x, y D) D { return binaryOp(x, y, DefaultRoundingMode, (*class).mul) }

// MulMode returns x * y rounded with mode.
func MulMode[D Decimal](x, y D, mode RoundingMode) D { return binaryOp(x, y, mode, (*class).mul) }

// Quo returns x / y.
func Quo[D Decimal](x, y D) D { return binaryOp(x, y, DefaultRoundingMode, (*class).quo) }

// QuoMode returns x / y rounded with mode.
func QuoMode[D Decimal](x, y D, mode RoundingMode) D { return binaryOp(x, y, mode, (*class).quo) }

// Rem returns the remainder of x / y with the quotient truncated toward zero.
func Rem[D Decimal](x, y D) D { return binaryOp(x, y, DefaultRoundingMode, (*class).rem) }

// RemMode is like Rem with intermediate results rounded with mode.
func RemMode[D Decimal](x, y D, mode RoundingMode) D { return binaryOp(x, y, mode, (*class).rem) }

// Neg returns x with its sign negated.
func Neg[D Decimal](x D) D {
	n, _ := unpack(x)
	return pack[D](n.negate())
}

// Abs returns |x|.
func Abs[D Decimal](x D) D {
	n, _ := unpack(x)
	n.neg = false
	return pack[D](n)
}

// RoundToIntegral returns x rounded to an integer value with mode.
func RoundToIntegral[D Decimal](x D, mode RoundingMode) D {
	n, c := unpack(x)
	return pack[D](c.integral(n, mode))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[D Decimal](x D) D { return RoundToIntegral(x, ToNegativeInf) }

// Ceil returns the least integer value greater than or equal to x.
func Ceil[D Decimal](x D) D { return RoundToIntegral(x, ToPositiveInf) }

// Trunc returns the integer value of x.
func Trunc[D Decimal](x D) D { return RoundToIntegral(x, ToZero) }

// Compare compares x and y like the Compare methods.
func Compare[D Decimal](x, y D) int {
	xn, _ := unpack(x)
	yn, _ := unpack(y)
	return compare(xn, yn)
}

// Equal reports whether x == y.
func Equal[D Decimal](x, y D) bool {
	xn, _ := unpack(x)
	yn, _ := unpack(y)
	return !xn.isNaN() && !yn.isNaN() && cmp(xn, yn) == 0
}

// Less reports whether x < y.
func Less[D Decimal](x, y D) bool {
	xn, _ := unpack(x)
	yn, _ := unpack(y)
	return !xn.isNaN() && !yn.isNaN() && cmp(xn, yn) < 0
}

// integer operands

// intMag returns |v| and the sign of v.
func intMag[T constraints.Integer](v T) (uint128.Uint128, bool) {
	if v < 0 {
		return uint128.From(v).Neg(), true
	}
	return uint128.From(v), false
}

func intNum[T constraints.Integer](c *class, v T) num {
	m, neg := intMag(v)
	return c.make(m, 0, neg, false, DefaultRoundingMode)
}

// FromInt returns the value of class D nearest to v.
func FromInt[D Decimal, T constraints.Integer](v T) D {
	return pack[D](intNum(classOf[D](), v))
}

// FromUint128 returns the value of class D nearest to v.
func FromUint128[D Decimal](v uint128.Uint128) D {
	return pack[D](classOf[D]().make(v, 0, false, false, DefaultRoundingMode))
}

// FromInt128 returns the value of class D nearest to v.
func FromInt128[D Decimal](v uint128.Int128) D {
	return pack[D](classOf[D]().make(v.Abs(), 0, v.Sign() < 0, false, DefaultRoundingMode))
}

func binaryInt[D Decimal, T constraints.Integer](x D, v T, op func(c *class, x, y num, mode RoundingMode) num) D {
	xn, c := unpack(x)
	return pack[D](op(c, xn, intNum(c, v), DefaultRoundingMode))
}

// AddInt returns x + v.
func AddInt[D Decimal, T constraints.Integer](x D, v T) D { return binaryInt(x, v, (*class).add) }

// SubInt returns x - v.
func SubInt[D Decimal, T constraints.Integer](x D, v T) D { return binaryInt(x, v, (*class).sub) }

// MulInt returns x * v.
func MulInt[D Decimal, T constraints.Integer](x D, v T) D { return binaryInt(x, v, (*class).mul) }

// QuoInt returns x / v.
func QuoInt[D Decimal, T constraints.Integer](x D, v T) D { return binaryInt(x, v, (*class).quo) }

// RemInt returns the remainder of x / v.
func RemInt[D Decimal, T constraints.Integer](x D, v T) D { return binaryInt(x, v, (*class).rem) }

// CmpInt compares x and v exactly, without rounding v to the precision of D.
// NaNs are less than any integer.
func CmpInt[D Decimal, T constraints.Integer](x D, v T) int {
	xn, c := unpack(x)
	if xn.isNaN() {
		return -1
	}
	m, neg := intMag(v)
	return c.cmpInt(xn, m, neg)
}

// EqualInt reports whether x == v. It returns false if x is NaN.
func EqualInt[D Decimal, T constraints.Integer](x D, v T) bool {
	return !x.IsNaN() && CmpInt(x, v) == 0
}

// LessInt reports whether x < v. It returns false if x is NaN.
func LessInt[D Decimal, T constraints.Integer](x D, v T) bool {
	return !x.IsNaN() && CmpInt(x, v) < 0
}

// GreaterInt reports whether x > v. It returns false if x is NaN.
func GreaterInt[D Decimal, T constraints.Integer](x D, v T) bool {
	return !x.IsNaN() && CmpInt(x, v) > 0
}

// ToInt returns the integer value of x truncated toward zero. It returns 0
// and an error of class InvalidError if x is NaN, or of class RangeError if
// x is infinite or its integer part does not fit in T.
func ToInt[T constraints.Integer, D Decimal](x D) (T, error) {
	n, c := unpack(x)
	switch n.form {
	case nan, snan:
		return 0, InvalidError.New("%v to integer", x)
	case inf:
		return 0, RangeError.New("%v to integer", x)
	case zero:
		return 0, nil
	}
	t := c.integral(n, ToZero)
	if t.form == zero {
		return 0, nil
	}

	// t = sig * 10**exp; compute the magnitude in a Uint128 if it fits.
	var m uint128.Uint128
	if t.exp >= 0 {
		if c.prec+t.exp > len(pow10x)-1 {
			return 0, RangeError.New("%v overflows %T", x, T(0))
		}
		m = t.sig.Mul(pow10x[t.exp])
		if m.Quo(pow10x[t.exp]) != t.sig {
			return 0, RangeError.New("%v overflows %T", x, T(0))
		}
	} else {
		m = t.sig.Quo(pow10x[-t.exp])
	}

	bits, signed := intBits[T]()
	if signed {
		limit := uint128.One.Lsh(bits - 1) // |MinInt|
		if !t.neg && m.GreaterEqual(limit) || t.neg && m.Greater(limit) {
			return 0, RangeError.New("%v overflows %T", x, T(0))
		}
		if t.neg {
			return uint128.Cast[T](m.Neg()), nil
		}
		return uint128.Cast[T](m), nil
	}
	if t.neg || m.BitLen() > int(bits) {
		return 0, RangeError.New("%v overflows %T", x, T(0))
	}
	return uint128.Cast[T](m), nil
}

// intBits returns the size in bits of T and whether T is signed.
func intBits[T constraints.Integer]() (uint, bool) {
	var n uint
	for v := T(1); v != 0; v <<= 1 {
		n++
	}
	return n, ^T(0) < 0
}
