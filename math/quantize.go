// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	gomath "math"

	"github.com/db47h/decfast"
	"github.com/db47h/decfast/uint128"
)

// QuantExp returns the quantum exponent of x: the exponent of its coefficient
// with trailing zeros removed. It returns math.MinInt if x is not finite.
func QuantExp[D decfast.Decimal](x D) int {
	if !x.IsFinite() {
		return gomath.MinInt
	}
	_, exp := decfast.Quantum(x)
	return exp
}

// SameQuantum reports whether x and y have the same quantum exponent. Two NaNs
// or two infinities have the same quantum; exactly one NaN or infinity does
// not.
func SameQuantum[D decfast.Decimal](x, y D) bool {
	switch {
	case x.IsNaN() || y.IsNaN():
		return x.IsNaN() && y.IsNaN()
	case x.IsInf() || y.IsInf():
		return x.IsInf() && y.IsInf()
	}
	return QuantExp(x) == QuantExp(y)
}

// Quantize is like QuantizeMode with DefaultRoundingMode.
func Quantize[D decfast.Decimal](x, y D) D {
	return QuantizeMode(x, y, decfast.DefaultRoundingMode)
}

// QuantizeMode returns x rounded with mode to a multiple of 10**QuantExp(y).
//
// If the exact result needs more than Digits10 digits, the result is NaN.
// NaN operands give NaN. Exactly one infinite operand gives a signaling NaN.
// Two infinite operands return x.
func QuantizeMode[D decfast.Decimal](x, y D, mode decfast.RoundingMode) D {
	switch {
	case x.IsNaN() || y.IsNaN():
		return decfast.NaN[D]()
	case x.IsInf() != y.IsInf():
		return decfast.SignalingNaN[D]()
	case x.IsInf():
		return x
	}
	e := QuantExp(y)
	if x.IsZero() {
		return x
	}
	prec := decfast.LimitsOf[D]().Digits10
	sig, exp := decfast.Quantum(x)
	neg := x.Signbit()
	d := digits(sig)
	if exp >= e {
		if d+exp-e > prec {
			return decfast.NaN[D]()
		}
		return x
	}

	// |t| = |x| × 10**-e
	var t D
	if k := e - exp; k > d {
		// |t| < 0.1: any such value rounds the same way.
		t = decfast.New[D](uint128.One, -2, neg)
	} else {
		t = decfast.New[D](sig, -k, neg)
	}
	r := decfast.RoundToIntegral(t, mode)
	if r.IsZero() {
		return decfast.New[D](uint128.Zero, 0, false)
	}
	sig, exp, _ = decfast.Unpack(r)
	return decfast.New[D](sig, exp+e, neg)
}

// digits returns the number of decimal digits of x.
func digits(x uint128.Uint128) int {
	n := 0
	for !x.IsZero() {
		x, _ = x.QuoRem64(10)
		n++
	}
	return n
}
