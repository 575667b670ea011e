// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/decfast"
	"github.com/db47h/decfast/uint128"
)

func one[D decfast.Decimal]() D { return decfast.New[D](uint128.One, 0, false) }

func negZero[D decfast.Decimal]() D { return decfast.Neg(decfast.New[D](uint128.Zero, 0, false)) }

// Abs returns the absolute value of x.
func Abs[D decfast.Decimal](x D) D { return decfast.Abs(x) }

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign[D decfast.Decimal](x, y D) D {
	if x.Signbit() != y.Signbit() {
		return decfast.Neg(x)
	}
	return x
}

// Fdim returns the positive difference max(x-y, 0).
//
// Special cases are:
//
//	Fdim(±Inf, y) = ±Inf
//	Fdim(NaN, y) = Fdim(x, NaN) = NaN
func Fdim[D decfast.Decimal](x, y D) D {
	switch {
	case x.IsNaN() || x.IsInf():
		return x
	case y.IsNaN():
		return y
	case !decfast.Less(y, x):
		return decfast.New[D](uint128.Zero, 0, false)
	}
	return decfast.Sub(x, y)
}

// Fmax returns the larger of x or y. A NaN operand is ignored unless both are
// NaN.
func Fmax[D decfast.Decimal](x, y D) D {
	switch {
	case x.IsNaN():
		return y
	case y.IsNaN():
		return x
	case decfast.Less(x, y):
		return y
	}
	return x
}

// Fmin returns the smaller of x or y. A NaN operand is ignored unless both are
// NaN.
func Fmin[D decfast.Decimal](x, y D) D {
	switch {
	case x.IsNaN():
		return y
	case y.IsNaN():
		return x
	case decfast.Less(y, x):
		return y
	}
	return x
}

// Frexp10 breaks x into a coefficient of exactly Digits10 digits and a power
// of ten, such that x == ±sig × 10**exp. Zeros return (0, 0), and infinities
// and NaNs return (uint128.Max, 0).
func Frexp10[D decfast.Decimal](x D) (sig uint128.Uint128, exp int) {
	switch {
	case !x.IsFinite():
		return uint128.Max, 0
	case x.IsZero():
		return uint128.Zero, 0
	}
	sig, exp, _ = decfast.Unpack(x)
	return sig, exp
}

// exponent shifts larger than this saturate any finite value.
const maxScale = 1 << 20

// Scalbn returns x × 10**n. NaNs, infinities and zeros are returned unchanged.
func Scalbn[D decfast.Decimal](x D, n int) D {
	if !x.IsFinite() || x.IsZero() {
		return x
	}
	switch {
	case n > maxScale:
		n = maxScale
	case n < -maxScale:
		n = -maxScale
	}
	sig, exp, neg := decfast.Unpack(x)
	return decfast.New[D](sig, exp+n, neg)
}

// Pown returns x**n rounded with DefaultRoundingMode.
//
// Special cases are (in order):
//
//	Pown(x, 0) = 1 for any x
//	Pown(±0, n) = +Inf for n < 0
//	Pown(±0, n) = ±0 for odd n > 0
//	Pown(±0, n) = +0 for even n > 0
//	Pown(+Inf, n) = +Inf for n > 0, +0 for n < 0
//	Pown(-Inf, n) = Pown(-0, -n)
//	Pown(NaN, n) = NaN
//
// Decimal32 and Decimal64 powers are computed with the precision of Decimal128,
// then rounded to the precision of D.
func Pown[D decfast.Decimal](x D, n int) D {
	odd := n&1 != 0
	switch {
	case n == 0:
		return one[D]()
	case x.IsNaN():
		return decfast.NaN[D]()
	case x.IsZero():
		if n < 0 {
			return decfast.Inf[D](false)
		}
		if odd && x.Signbit() {
			return x
		}
		return decfast.New[D](uint128.Zero, 0, false)
	case x.IsInf():
		neg := x.Signbit() && odd
		if n < 0 {
			if neg {
				return negZero[D]()
			}
			return decfast.New[D](uint128.Zero, 0, false)
		}
		return decfast.Inf[D](neg)
	}

	var u uint
	if n < 0 {
		u = uint(-(n + 1)) + 1
	} else {
		u = uint(n)
	}
	var z decfast.Decimal128
	switch v := any(x).(type) {
	case decfast.Decimal128:
		z = pow(v, u)
	default:
		sig, exp, neg := decfast.Unpack(x)
		z = pow(decfast.New[decfast.Decimal128](sig, exp, neg), u)
	}
	if n < 0 {
		z = decfast.Quo(one[decfast.Decimal128](), z)
	}
	switch {
	case z.IsInf():
		return decfast.Inf[D](z.Signbit())
	case z.IsZero():
		return decfast.New[D](uint128.Zero, 0, false)
	}
	sig, exp, neg := decfast.Unpack(z)
	return decfast.New[D](sig, exp, neg)
}

// pow returns the rounded value of x**n by binary exponentiation. n must be
// non zero.
func pow(x decfast.Decimal128, n uint) decfast.Decimal128 {
	y := one[decfast.Decimal128]()
	for n > 1 {
		if n%2 != 0 {
			y = y.Mul(x)
		}
		x = x.Mul(x)
		if x.IsInf() || x.IsZero() {
			break
		}
		n /= 2
	}
	return x.Mul(y)
}
