// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decfast

import (
	"fmt"
	"math"

	"github.com/db47h/decfast/uint128"
)

// A Decimal64 is a decimal floating-point number with 16 digits of precision
// and decimal exponents in [-383, 384].
//
// The zero value is 0. Decimal64 values are immutable and may be compared with
// the Equal method or its siblings. The == operator compares representations;
// all zeros of the same sign, including the zero value, compare equal.
type Decimal64 struct {
	sig uint64
	exp int16 // unbiased exponent
	neg bool
}

// Significand sentinels
const (
	d64Inf  = math.MaxUint64 - 2
	d64QNaN = math.MaxUint64 - 1
	d64SNaN = math.MaxUint64
)

func (x Decimal64) num() num {
	switch {
	case x.sig == 0:
		return num{form: zero, neg: x.neg}
	case x.sig < d64Inf:
		return num{sig: uint128.From64(x.sig), exp: int(x.exp), neg: x.neg, form: finite}
	case x.sig == d64Inf:
		return num{form: inf, neg: x.neg}
	case x.sig == d64QNaN:
		return num{form: nan, neg: x.neg}
	}
	return num{form: snan, neg: x.neg}
}

func pack64(x num) Decimal64 {
	z := Decimal64{neg: x.neg}
	switch x.form {
	case finite:
		z.sig = x.sig.Lo()
		z.exp = int16(x.exp)
	case inf:
		z.sig = d64Inf
	case nan:
		z.sig = d64QNaN
	case snan:
		z.sig = d64SNaN
	}
	return z
}

// NewDecimal64 returns the Decimal64 nearest to (-1)**neg * coeff * 10**exp,
// rounded with DefaultRoundingMode. A zero coeff yields +0.
func NewDecimal64(coeff uint64, exp int, neg bool) Decimal64 {
	return NewDecimal64Mode(coeff, exp, neg, DefaultRoundingMode)
}

// NewDecimal64Mode is like NewDecimal64 with an explicit rounding mode.
func NewDecimal64Mode(coeff uint64, exp int, neg bool, mode RoundingMode) Decimal64 {
	return pack64(d64.make(uint128.From64(coeff), exp, neg, false, mode))
}

// Decimal64FromFloat64 returns the Decimal64 nearest to the shortest decimal
// representation of f.
func Decimal64FromFloat64(f float64) Decimal64 { return pack64(d64.fromFloat(f, 64)) }

// Decimal64FromFloat32 returns the Decimal64 nearest to the shortest decimal
// representation of f.
func Decimal64FromFloat32(f float32) Decimal64 { return pack64(d64.fromFloat(float64(f), 32)) }

// Triple returns the significand, unbiased exponent and sign of x. For zeros
// and non-finite values, exp is 0 and non-finite values return their sentinel
// significand.
func (x Decimal64) Triple() (sig uint64, exp int, neg bool) {
	if x.IsNormal() {
		exp = int(x.exp)
	}
	return x.sig, exp, x.neg
}

// IsInf reports whether x is +Inf or -Inf.
func (x Decimal64) IsInf() bool { return x.sig == d64Inf }

// IsNaN reports whether x is a quiet or signaling NaN.
func (x Decimal64) IsNaN() bool { return x.sig >= d64QNaN }

// IsSignalingNaN reports whether x is a signaling NaN.
func (x Decimal64) IsSignalingNaN() bool { return x.sig == d64SNaN }

// IsFinite reports whether x is neither infinite nor NaN.
func (x Decimal64) IsFinite() bool { return x.sig < d64Inf }

// IsNormal reports whether x is finite and nonzero. There are no subnormal
// values.
func (x Decimal64) IsNormal() bool { return x.sig != 0 && x.sig < d64Inf }

// IsZero reports whether x is ±0.
func (x Decimal64) IsZero() bool { return x.sig == 0 }

// Signbit reports whether x is negative or negative zero.
func (x Decimal64) Signbit() bool { return x.neg }

// Sign returns -1, 0 or +1 depending on the sign of x. The result is 0 for
// NaNs.
func (x Decimal64) Sign() int {
	if x.IsNaN() {
		return 0
	}
	return x.num().sign()
}

// Abs returns |x|.
func (x Decimal64) Abs() Decimal64 {
	x.neg = false
	return x
}

// Neg returns x with its sign negated.
func (x Decimal64) Neg() Decimal64 {
	x.neg = !x.neg
	return x
}

// Add returns x + y.
func (x Decimal64) Add(y Decimal64) Decimal64 { return x.AddMode(y, DefaultRoundingMode) }

// AddMode returns x + y rounded with mode.
func (x Decimal64) AddMode(y Decimal64, mode RoundingMode) Decimal64 {
	return pack64(d64.add(x.num(), y.num(), mode))
}

// Sub returns x - y.
func (x Decimal64) Sub(y Decimal64) Decimal64 { return x.SubMode(y, DefaultRoundingMode) }

// SubMode returns x - y rounded with mode.
func (x Decimal64) SubMode(y Decimal64, mode RoundingMode) Decimal64 {
	return pack64(d64.sub(x.num(), y.num(), mode))
}

// Mul returns x * y.
func (x Decimal64) Mul(y Decimal64) Decimal64 { return x.MulMode(y, DefaultRoundingMode) }

// MulMode returns x * y rounded with mode.
func (x Decimal64) MulMode(y Decimal64, mode RoundingMode) Decimal64 {
	return pack64(d64.mul(x.num(), y.num(), mode))
}

// Quo returns x / y.
func (x Decimal64) Quo(y Decimal64) Decimal64 { return x.QuoMode(y, DefaultRoundingMode) }

// QuoMode returns x / y rounded with mode.
func (x Decimal64) QuoMode(y Decimal64, mode RoundingMode) Decimal64 {
	return pack64(d64.quo(x.num(), y.num(), mode))
}

// Rem returns the remainder of x / y with the quotient truncated toward zero.
// The result has the sign of x.
func (x Decimal64) Rem(y Decimal64) Decimal64 { return x.RemMode(y, DefaultRoundingMode) }

// RemMode is like Rem with intermediate results rounded with mode.
func (x Decimal64) RemMode(y Decimal64, mode RoundingMode) Decimal64 {
	return pack64(d64.rem(x.num(), y.num(), mode))
}

// Inc returns x + 1.
func (x Decimal64) Inc() Decimal64 { return x.Add(one64) }

// Dec returns x - 1.
func (x Decimal64) Dec() Decimal64 { return x.Sub(one64) }

var one64 = NewDecimal64(1, 0, false)

// Floor returns the greatest integer value less than or equal to x.
func (x Decimal64) Floor() Decimal64 { return pack64(d64.integral(x.num(), ToNegativeInf)) }

// Ceil returns the least integer value greater than or equal to x.
func (x Decimal64) Ceil() Decimal64 { return pack64(d64.integral(x.num(), ToPositiveInf)) }

// Trunc returns the integer value of x.
func (x Decimal64) Trunc() Decimal64 { return pack64(d64.integral(x.num(), ToZero)) }

// RoundToIntegral returns x rounded to an integer with mode.
func (x Decimal64) RoundToIntegral(mode RoundingMode) Decimal64 {
	return pack64(d64.integral(x.num(), mode))
}

// Equal reports whether x == y. Zeros of any sign are equal. NaNs are not
// equal to anything.
func (x Decimal64) Equal(y Decimal64) bool {
	return !x.IsNaN() && !y.IsNaN() && cmp(x.num(), y.num()) == 0
}

// NotEqual reports whether x != y. It returns true if either operand is NaN.
func (x Decimal64) NotEqual(y Decimal64) bool { return !x.Equal(y) }

// Less reports whether x < y.
func (x Decimal64) Less(y Decimal64) bool {
	return !x.IsNaN() && !y.IsNaN() && cmp(x.num(), y.num()) < 0
}

// LessEqual reports whether x <= y.
func (x Decimal64) LessEqual(y Decimal64) bool {
	return !x.IsNaN() && !y.IsNaN() && cmp(x.num(), y.num()) <= 0
}

// Greater reports whether x > y.
func (x Decimal64) Greater(y Decimal64) bool { return y.Less(x) }

// GreaterEqual reports whether x >= y.
func (x Decimal64) GreaterEqual(y Decimal64) bool { return y.LessEqual(x) }

// Compare compares x and y and returns -1, 0 or +1. A NaN is considered less
// than any non-NaN, a NaN is considered equal to a NaN, and -0 is equal to 0.
func (x Decimal64) Compare(y Decimal64) int { return compare(x.num(), y.num()) }

// Float64 returns the float64 value nearest to x.
func (x Decimal64) Float64() float64 { return toFloat(d64, x.num(), 64) }

// String formats x like x.Text('g', -1).
func (x Decimal64) String() string { return d64.text(x.num(), 'g', -1) }

// Text converts x to a string according to the given format and precision.
// See the package documentation for the available formats.
func (x Decimal64) Text(format byte, prec int) string { return d64.text(x.num(), format, prec) }

// Format implements fmt.Formatter.
func (x Decimal64) Format(s fmt.State, verb rune) { d64.format(x.num(), s, verb) }

// Parse64 converts s to the Decimal64 nearest to its value.
func Parse64(s string) (Decimal64, error) {
	x, err := d64.parse(s, DefaultRoundingMode)
	return pack64(x), err
}

// MustParse64 is like Parse64 but panics if s cannot be parsed.
func MustParse64(s string) Decimal64 {
	x, err := Parse64(s)
	if err != nil {
		panic(err)
	}
	return x
}

// MarshalText implements encoding.TextMarshaler.
func (x Decimal64) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Decimal64) UnmarshalText(text []byte) error {
	v, err := d64.parse(string(text), DefaultRoundingMode)
	if err != nil {
		return err
	}
	*x = pack64(v)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Decimal64) MarshalBinary() ([]byte, error) { return d64.marshal(x.num()), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Decimal64) UnmarshalBinary(buf []byte) error {
	v, err := d64.unmarshal(buf)
	if err != nil {
		return err
	}
	*x = pack64(v)
	return nil
}
