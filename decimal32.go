// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decfast

import (
	"fmt"
	"math"

	"github.com/db47h/decfast/uint128"
)

// A Decimal32 is a decimal floating-point number with 7 digits of precision
// and decimal exponents in [-95, 96].
//
// The zero value is 0. Decimal32 values are immutable and may be compared with
// the Equal method or its siblings. The == operator compares representations;
// all zeros of the same sign, including the zero value, compare equal.
type Decimal32 struct {
	sig uint32
	exp int8 // unbiased exponent
	neg bool
}

// Significand sentinels
const (
	d32Inf  = math.MaxUint32 - 2
	d32QNaN = math.MaxUint32 - 1
	d32SNaN = math.MaxUint32
)

func (x Decimal32) num() num {
	switch {
	case x.sig == 0:
		return num{form: zero, neg: x.neg}
	case x.sig < d32Inf:
		return num{sig: uint128.From64(uint64(x.sig)), exp: int(x.exp), neg: x.neg, form: finite}
	case x.sig == d32Inf:
		return num{form: inf, neg: x.neg}
	case x.sig == d32QNaN:
		return num{form: nan, neg: x.neg}
	}
	return num{form: snan, neg: x.neg}
}

func pack32(x num) Decimal32 {
	z := Decimal32{neg: x.neg}
	switch x.form {
	case finite:
		z.sig = uint32(x.sig.Lo())
		z.exp = int8(x.exp)
	case inf:
		z.sig = d32Inf
	case nan:
		z.sig = d32QNaN
	case snan:
		z.sig = d32SNaN
	}
	return z
}

// NewDecimal32 returns the Decimal32 nearest to (-1)**neg * coeff * 10**exp,
// rounded with DefaultRoundingMode. A zero coeff yields +0.
func NewDecimal32(coeff uint64, exp int, neg bool) Decimal32 {
	return NewDecimal32Mode(coeff, exp, neg, DefaultRoundingMode)
}

// NewDecimal32Mode is like NewDecimal32 with an explicit rounding mode.
func NewDecimal32Mode(coeff uint64, exp int, neg bool, mode RoundingMode) Decimal32 {
	return pack32(d32.make(uint128.From64(coeff), exp, neg, false, mode))
}

// Decimal32FromFloat64 returns the Decimal32 nearest to the shortest decimal
// representation of f.
func Decimal32FromFloat64(f float64) Decimal32 { return pack32(d32.fromFloat(f, 64)) }

// Decimal32FromFloat32 returns the Decimal32 nearest to the shortest decimal
// representation of f.
func Decimal32FromFloat32(f float32) Decimal32 { return pack32(d32.fromFloat(float64(f), 32)) }

// Triple returns the significand, unbiased exponent and sign of x. For zeros
// and non-finite values, exp is 0 and non-finite values return their sentinel
// significand.
func (x Decimal32) Triple() (sig uint32, exp int, neg bool) {
	if x.IsNormal() {
		exp = int(x.exp)
	}
	return x.sig, exp, x.neg
}

// IsInf reports whether x is +Inf or -Inf.
func (x Decimal32) IsInf() bool { return x.sig == d32Inf }

// IsNaN reports whether x is a quiet or signaling NaN.
func (x Decimal32) IsNaN() bool { return x.sig >= d32QNaN }

// IsSignalingNaN reports whether x is a signaling NaN.
func (x Decimal32) IsSignalingNaN() bool { return x.sig == d32SNaN }

// IsFinite reports whether x is neither infinite nor NaN.
func (x Decimal32) IsFinite() bool { return x.sig < d32Inf }

// IsNormal reports whether x is finite and nonzero. There are no subnormal
// values.
func (x Decimal32) IsNormal() bool { return x.sig != 0 && x.sig < d32Inf }

// IsZero reports whether x is ±0.
func (x Decimal32) IsZero() bool { return x.sig == 0 }

// Signbit reports whether x is negative or negative zero.
func (x Decimal32) Signbit() bool { return x.neg }

// Sign returns -1, 0 or +1 depending on the sign of x. The result is 0 for
// NaNs.
func (x Decimal32) Sign() int {
	if x.IsNaN() {
		return 0
	}
	return x.num().sign()
}

// Abs returns |x|.
func (x Decimal32) Abs() Decimal32 {
	x.neg = false
	return x
}

// Neg returns x with its sign negated.
func (x Decimal32) Neg() Decimal32 {
	x.neg = !x.neg
	return x
}

// Add returns x + y.
func (x Decimal32) Add(y Decimal32) Decimal32 { return x.AddMode(y, DefaultRoundingMode) }

// AddMode returns x + y rounded with mode.
func (x Decimal32) AddMode(y Decimal32, mode RoundingMode) Decimal32 {
	return pack32(d32.add(x.num(), y.num(), mode))
}

// Sub returns x - y.
func (x Decimal32) Sub(y Decimal32) Decimal32 { return x.SubMode(y, DefaultRoundingMode) }

// SubMode returns x - y rounded with mode.
func (x Decimal32) SubMode(y Decimal32, mode RoundingMode) Decimal32 {
	return pack32(d32.sub(x.num(), y.num(), mode))
}

// Mul returns x * y.
func (x Decimal32) Mul(y Decimal32) Decimal32 { return x.MulMode(y, DefaultRoundingMode) }

// MulMode returns x * y rounded with mode.
func (x Decimal32) MulMode(y Decimal32, mode RoundingMode) Decimal32 {
	return pack32(d32.mul(x.num(), y.num(), mode))
}

// Quo returns x / y.
func (x Decimal32) Quo(y Decimal32) Decimal32 { return x.QuoMode(y, DefaultRoundingMode) }

// QuoMode returns x / y rounded with mode.
func (x Decimal32) QuoMode(y Decimal32, mode RoundingMode) Decimal32 {
	return pack32(d32.quo(x.num(), y.num(), mode))
}

// Rem returns the remainder of x / y with the quotient truncated toward zero.
// The result has the sign of x.
func (x Decimal32) Rem(y Decimal32) Decimal32 { return x.RemMode(y, DefaultRoundingMode) }

// RemMode is like Rem with intermediate results rounded with mode.
func (x Decimal32) RemMode(y Decimal32, mode RoundingMode) Decimal32 {
	return pack32(d32.rem(x.num(), y.num(), mode))
}

// Inc returns x + 1.
func (x Decimal32) Inc() Decimal32 { return x.Add(one32) }

// Dec returns x - 1.
func (x Decimal32) Dec() Decimal32 { return x.Sub(one32) }

var one32 = NewDecimal32(1, 0, false)

// Floor returns the greatest integer value less than or equal to x.
func (x Decimal32) Floor() Decimal32 { return pack32(d32.integral(x.num(), ToNegativeInf)) }

// Ceil returns the least integer value greater than or equal to x.
func (x Decimal32) Ceil() Decimal32 { return pack32(d32.integral(x.num(), ToPositiveInf)) }

// Trunc returns the integer value of x.
func (x Decimal32) Trunc() Decimal32 { return pack32(d32.integral(x.num(), ToZero)) }

// RoundToIntegral returns x rounded to an integer with mode.
func (x Decimal32) RoundToIntegral(mode RoundingMode) Decimal32 {
	return pack32(d32.integral(x.num(), mode))
}

// Equal reports whether x == y. Zeros of any sign are equal. NaNs are not
// equal to anything.
func (x Decimal32) Equal(y Decimal32) bool {
	return !x.IsNaN() && !y.IsNaN() && cmp(x.num(), y.num()) == 0
}

// NotEqual reports whether x != y. It returns true if either operand is NaN.
func (x Decimal32) NotEqual(y Decimal32) bool { return !x.Equal(y) }

// Less reports whether x < y.
func (x Decimal32) Less(y Decimal32) bool {
	return !x.IsNaN() && !y.IsNaN() && cmp(x.num(), y.num()) < 0
}

// LessEqual reports whether x <= y.
func (x Decimal32) LessEqual(y Decimal32) bool {
	return !x.IsNaN() && !y.IsNaN() && cmp(x.num(), y.num()) <= 0
}

// Greater reports whether x > y.
func (x Decimal32) Greater(y Decimal32) bool { return y.Less(x) }

// GreaterEqual reports whether x >= y.
func (x Decimal32) GreaterEqual(y Decimal32) bool { return y.LessEqual(x) }

// Compare compares x and y and returns -1, 0 or +1. A NaN is considered less
// than any non-NaN, a NaN is considered equal to a NaN, and -0 is equal to 0.
func (x Decimal32) Compare(y Decimal32) int { return compare(x.num(), y.num()) }

// Float64 returns the float64 value nearest to x.
func (x Decimal32) Float64() float64 { return toFloat(d32, x.num(), 64) }

// String formats x like x.Text('g', -1).
func (x Decimal32) String() string { return d32.text(x.num(), 'g', -1) }

// Text converts x to a string according to the given format and precision.
// See the package documentation for the available formats.
func (x Decimal32) Text(format byte, prec int) string { return d32.text(x.num(), format, prec) }

// Format implements fmt.Formatter.
func (x Decimal32) Format(s fmt.State, verb rune) { d32.format(x.num(), s, verb) }

// Parse32 converts s to the Decimal32 nearest to its value.
func Parse32(s string) (Decimal32, error) {
	x, err := d32.parse(s, DefaultRoundingMode)
	return pack32(x), err
}

// MustParse32 is like Parse32 but panics if s cannot be parsed.
func MustParse32(s string) Decimal32 {
	x, err := Parse32(s)
	if err != nil {
		panic(err)
	}
	return x
}

// MarshalText implements encoding.TextMarshaler.
func (x Decimal32) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Decimal32) UnmarshalText(text []byte) error {
	v, err := d32.parse(string(text), DefaultRoundingMode)
	if err != nil {
		return err
	}
	*x = pack32(v)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Decimal32) MarshalBinary() ([]byte, error) { return d32.marshal(x.num()), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Decimal32) UnmarshalBinary(buf []byte) error {
	v, err := d32.unmarshal(buf)
	if err != nil {
		return err
	}
	*x = pack32(v)
	return nil
}
