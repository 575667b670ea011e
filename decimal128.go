// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decfast

import (
	"fmt"

	"github.com/db47h/decfast/uint128"
)

// A Decimal128 is a decimal floating-point number with 34 digits of precision
// and decimal exponents in [-6143, 6144].
//
// The zero value is 0. Decimal128 values are immutable and may be compared with
// the Equal method or its siblings. The == operator compares representations;
// all zeros of the same sign, including the zero value, compare equal.
type Decimal128 struct {
	sig uint128.Uint128
	exp int16 // unbiased exponent
	neg bool
}

// Significand sentinels
var (
	d128Inf  = uint128.Max.Sub64(2)
	d128QNaN = uint128.Max.Sub64(1)
	d128SNaN = uint128.Max
)

func (x Decimal128) num() num {
	switch {
	case x.sig.IsZero():
		return num{form: zero, neg: x.neg}
	case x.sig.Less(d128Inf):
		return num{sig: x.sig, exp: int(x.exp), neg: x.neg, form: finite}
	case x.sig == d128Inf:
		return num{form: inf, neg: x.neg}
	case x.sig == d128QNaN:
		return num{form: nan, neg: x.neg}
	}
	return num{form: snan, neg: x.neg}
}

func pack128(x num) Decimal128 {
	z := Decimal128{neg: x.neg}
	switch x.form {
	case finite:
		z.sig = x.sig
		z.exp = int16(x.exp)
	case inf:
		z.sig = d128Inf
	case nan:
		z.sig = d128QNaN
	case snan:
		z.sig = d128SNaN
	}
	return z
}

// NewDecimal128 returns the Decimal128 nearest to (-1)**neg * coeff * 10**exp,
// rounded with DefaultRoundingMode. A zero coeff yields +0.
func NewDecimal128(coeff uint128.Uint128, exp int, neg bool) Decimal128 {
	return NewDecimal128Mode(coeff, exp, neg, DefaultRoundingMode)
}

// NewDecimal128Mode is like NewDecimal128 with an explicit rounding mode.
func NewDecimal128Mode(coeff uint128.Uint128, exp int, neg bool, mode RoundingMode) Decimal128 {
	return pack128(d128.make(coeff, exp, neg, false, mode))
}

// Decimal128FromFloat64 returns the Decimal128 nearest to the shortest decimal
// representation of f.
func Decimal128FromFloat64(f float64) Decimal128 { return pack128(d128.fromFloat(f, 64)) }

// Decimal128FromFloat32 returns the Decimal128 nearest to the shortest decimal
// representation of f.
func Decimal128FromFloat32(f float32) Decimal128 { return pack128(d128.fromFloat(float64(f), 32)) }

// Triple returns the significand, unbiased exponent and sign of x. For zeros
// and non-finite values, exp is 0 and non-finite values return their sentinel
// significand.
func (x Decimal128) Triple() (sig uint128.Uint128, exp int, neg bool) {
	if x.IsNormal() {
		exp = int(x.exp)
	}
	return x.sig, exp, x.neg
}

// IsInf reports whether x is +Inf or -Inf.
func (x Decimal128) IsInf() bool { return x.sig == d128Inf }

// IsNaN reports whether x is a quiet or signaling NaN.
func (x Decimal128) IsNaN() bool { return x.sig.GreaterEqual(d128QNaN) }

// IsSignalingNaN reports whether x is a signaling NaN.
func (x Decimal128) IsSignalingNaN() bool { return x.sig == d128SNaN }

// IsFinite reports whether x is neither infinite nor NaN.
func (x Decimal128) IsFinite() bool { return x.sig.Less(d128Inf) }

// IsNormal reports whether x is finite and nonzero. There are no subnormal
// values.
func (x Decimal128) IsNormal() bool { return !x.sig.IsZero() && x.sig.Less(d128Inf) }

// IsZero reports whether x is ±0.
func (x Decimal128) IsZero() bool { return x.sig.IsZero() }

// Signbit reports whether x is negative or negative zero.
func (x Decimal128) Signbit() bool { return x.neg }

// Sign returns -1, 0 or +1 depending on the sign of x. The result is 0 for
// NaNs.
func (x Decimal128) Sign() int {
	if x.IsNaN() {
		return 0
	}
	return x.num().sign()
}

// Abs returns |x|.
func (x Decimal128) Abs() Decimal128 {
	x.neg = false
	return x
}

// Neg returns x with its sign negated.
func (x Decimal128) Neg() Decimal128 {
	x.neg = !x.neg
	return x
}

// Add returns x + y.
func (x Decimal128) Add(y Decimal128) Decimal128 { return x.AddMode(y, DefaultRoundingMode) }

// AddMode returns x + y rounded with mode.
func (x Decimal128) AddMode(y Decimal128, mode RoundingMode) Decimal128 {
	return pack128(d128.add(x.num(), y.num(), mode))
}

// Sub returns x - y.
func (x Decimal128) Sub(y Decimal128) Decimal128 { return x.SubMode(y, DefaultRoundingMode) }

// SubMode returns x - y rounded with mode.
func (x Decimal128) SubMode(y Decimal128, mode RoundingMode) Decimal128 {
	return pack128(d128.sub(x.num(), y.num(), mode))
}

// Mul returns x * y.
func (x Decimal128) Mul(y Decimal128) Decimal128 { return x.MulMode(y, DefaultRoundingMode) }

// MulMode returns x * y rounded with mode.
func (x Decimal128) MulMode(y Decimal128, mode RoundingMode) Decimal128 {
	return pack128(d128.mul(x.num(), y.num(), mode))
}

// Quo returns x / y.
func (x Decimal128) Quo(y Decimal128) Decimal128 { return x.QuoMode(y, DefaultRoundingMode) }

// QuoMode returns x / y rounded with mode.
func (x Decimal128) QuoMode(y Decimal128, mode RoundingMode) Decimal128 {
	return pack128(d128.quo(x.num(), y.num(), mode))
}

// Rem returns the remainder of x / y with the quotient truncated toward zero.
// The result has the sign of x.
func (x Decimal128) Rem(y Decimal128) Decimal128 { return x.RemMode(y, DefaultRoundingMode) }

// RemMode is like Rem with intermediate results rounded with mode.
func (x Decimal128) RemMode(y Decimal128, mode RoundingMode) Decimal128 {
	return pack128(d128.rem(x.num(), y.num(), mode))
}

// Inc returns x + 1.
func (x Decimal128) Inc() Decimal128 { return x.Add(one128) }

// Dec returns x - 1.
func (x Decimal128) Dec() Decimal128 { return x.Sub(one128) }

var one128 = NewDecimal128(uint128.One, 0, false)

// Floor returns the greatest integer value less than or equal to x.
func (x Decimal128) Floor() Decimal128 { return pack128(d128.integral(x.num(), ToNegativeInf)) }

// Ceil returns the least integer value greater than or equal to x.
func (x Decimal128) Ceil() Decimal128 { return pack128(d128.integral(x.num(), ToPositiveInf)) }

// Trunc returns the integer value of x.
func (x Decimal128) Trunc() Decimal128 { return pack128(d128.integral(x.num(), ToZero)) }

// RoundToIntegral returns x rounded to an integer with mode.
func (x Decimal128) RoundToIntegral(mode RoundingMode) Decimal128 {
	return pack128(d128.integral(x.num(), mode))
}

// Equal reports whether x == y. Zeros of any sign are equal. NaNs are not
// equal to anything.
func (x Decimal128) Equal(y Decimal128) bool {
	return !x.IsNaN() && !y.IsNaN() && cmp(x.num(), y.num()) == 0
}

// NotEqual reports whether x != y. It returns true if either operand is NaN.
func (x Decimal128) NotEqual(y Decimal128) bool { return !x.Equal(y) }

// Less reports whether x < y.
func (x Decimal128) Less(y Decimal128) bool {
	return !x.IsNaN() && !y.IsNaN() && cmp(x.num(), y.num()) < 0
}

// LessEqual reports whether x <= y.
func (x Decimal128) LessEqual(y Decimal128) bool {
	return !x.IsNaN() && !y.IsNaN() && cmp(x.num(), y.num()) <= 0
}

// Greater reports whether x > y.
func (x Decimal128) Greater(y Decimal128) bool { return y.Less(x) }

// GreaterEqual reports whether x >= y.
func (x Decimal128) GreaterEqual(y Decimal128) bool { return y.LessEqual(x) }

// Compare compares x and y and returns -1, 0 or +1. A NaN is considered less
// than any non-NaN, a NaN is considered equal to a NaN, and -0 is equal to 0.
func (x Decimal128) Compare(y Decimal128) int { return compare(x.num(), y.num()) }

// Float64 returns the float64 value nearest to x.
func (x Decimal128) Float64() float64 { return toFloat(d128, x.num(), 64) }

// String formats x like x.Text('g', -1).
func (x Decimal128) String() string { return d128.text(x.num(), 'g', -1) }

// Text converts x to a string according to the given format and precision.
// See the package documentation for the available formats.
func (x Decimal128) Text(format byte, prec int) string { return d128.text(x.num(), format, prec) }

// Format implements fmt.Formatter.
func (x Decimal128) Format(s fmt.State, verb rune) { d128.format(x.num(), s, verb) }

// Parse128 converts s to the Decimal128 nearest to its value.
func Parse128(s string) (Decimal128, error) {
	x, err := d128.parse(s, DefaultRoundingMode)
	return pack128(x), err
}

// MustParse128 is like Parse128 but panics if s cannot be parsed.
func MustParse128(s string) Decimal128 {
	x, err := Parse128(s)
	if err != nil {
		panic(err)
	}
	return x
}

// MarshalText implements encoding.TextMarshaler.
func (x Decimal128) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Decimal128) UnmarshalText(text []byte) error {
	v, err := d128.parse(string(text), DefaultRoundingMode)
	if err != nil {
		return err
	}
	*x = pack128(v)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Decimal128) MarshalBinary() ([]byte, error) { return d128.marshal(x.num()), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Decimal128) UnmarshalBinary(buf []byte) error {
	v, err := d128.unmarshal(buf)
	if err != nil {
		return err
	}
	*x = pack128(v)
	return nil
}
