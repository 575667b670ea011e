// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements arithmetic on unpacked values. Every operation returns
// a normalized num; non-finite operands are resolved first.

package decfast

import (
	"github.com/db47h/decfast/uint128"
	"github.com/db47h/decfast/wide"
)

func (x num) negate() num {
	x.neg = !x.neg
	return x
}

func (x num) sign() int {
	switch {
	case x.form == zero:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

func (c *class) add(x, y num, mode RoundingMode) num {
	switch {
	case x.isNaN() || y.isNaN():
		return qNaN
	case x.form == inf && y.form == inf:
		if x.neg != y.neg {
			return qNaN
		}
		return x
	case x.form == inf:
		return x
	case y.form == inf:
		return y
	case x.form == zero && y.form == zero:
		return num{form: zero, neg: x.neg && y.neg}
	case x.form == zero:
		return y
	case y.form == zero:
		return x
	}

	if x.exp < y.exp {
		x, y = y, x
	}
	// x.exp >= y.exp
	diff := x.exp - y.exp
	if diff >= c.prec+2 {
		// y only contributes to the sticky bit: it is less than 10**(x.exp-2).
		// Replace it by 1 at a scale below any rounding position of x.
		return c.addAligned(x.sig.Mul64(1000), uint128.One, x.exp-3, x.neg, y.neg, mode)
	}
	if c.wide {
		xw := x.sig.Wide(wideLimbs).MulLo(pow10w[diff])
		return c.addWide(xw, y.sig.Wide(wideLimbs), y.exp, x.neg, y.neg, mode)
	}
	return c.addAligned(x.sig.Mul(pow10x[diff]), y.sig, y.exp, x.neg, y.neg, mode)
}

// addAligned returns (-1)**xneg * x + (-1)**yneg * y scaled by 10**exp.
func (c *class) addAligned(x, y uint128.Uint128, exp int, xneg, yneg bool, mode RoundingMode) num {
	if xneg == yneg {
		return c.make(x.Add(y), exp, xneg, false, mode)
	}
	switch x.Cmp(y) {
	case 1:
		return c.make(x.Sub(y), exp, xneg, false, mode)
	case -1:
		return c.make(y.Sub(x), exp, yneg, false, mode)
	}
	return posZero
}

func (c *class) addWide(x, y wide.Uint, exp int, xneg, yneg bool, mode RoundingMode) num {
	if xneg == yneg {
		return c.makeWide(x.Add(y), exp, xneg, false, mode)
	}
	switch x.Cmp(y) {
	case 1:
		return c.makeWide(x.Sub(y), exp, xneg, false, mode)
	case -1:
		return c.makeWide(y.Sub(x), exp, yneg, false, mode)
	}
	return posZero
}

func (c *class) sub(x, y num, mode RoundingMode) num {
	return c.add(x, y.negate(), mode)
}

func (c *class) mul(x, y num, mode RoundingMode) num {
	neg := x.neg != y.neg
	switch {
	case x.isNaN() || y.isNaN():
		return qNaN
	case x.form == inf || y.form == inf:
		if x.form == zero || y.form == zero {
			return qNaN
		}
		return infOf(neg)
	case x.form == zero || y.form == zero:
		return posZero
	}

	// The product has 2*prec-1 or 2*prec digits; make scales it back.
	if c.wide {
		p := x.sig.Wide(wideLimbs / 2).Mul(y.sig.Wide(wideLimbs / 2))
		return c.makeWide(p, x.exp+y.exp, neg, false, mode)
	}
	return c.make(uint128.Mul64x64(x.sig.Lo(), y.sig.Lo()), x.exp+y.exp, neg, false, mode)
}

func (c *class) quo(x, y num, mode RoundingMode) num {
	neg := x.neg != y.neg
	switch {
	case x.isNaN() || y.isNaN():
		return qNaN
	case x.form == inf:
		if y.form == inf {
			return qNaN
		}
		return infOf(neg)
	case y.form == inf:
		return num{form: zero, neg: neg}
	case y.form == zero:
		if x.form == zero {
			return num{form: nan, neg: neg}
		}
		return infOf(neg)
	case x.form == zero:
		return num{form: zero, neg: neg}
	}

	// Scale the dividend so that the quotient has at least prec+1 digits. The
	// remainder only matters as a sticky bit.
	k := c.prec + 1
	exp := x.exp - k - y.exp
	if c.wide {
		u := x.sig.Wide(wideLimbs).MulLo(pow10w[k])
		q, r := u.QuoRem(y.sig.Wide(wideLimbs))
		return c.makeWide(q, exp, neg, !r.IsZero(), mode)
	}
	q, r := x.sig.Mul(pow10x[k]).QuoRem(y.sig)
	return c.make(q, exp, neg, !r.IsZero(), mode)
}

// rem returns x - t*y where t is the quotient x/y truncated toward zero. The
// result has the sign of x.
func (c *class) rem(x, y num, mode RoundingMode) num {
	switch {
	case x.isNaN() || y.isNaN() || x.form == inf || y.form == zero:
		return qNaN
	case y.form == inf || x.form == zero:
		return x
	}
	q := c.quo(x, y, mode)
	if q.form == inf {
		return qNaN
	}
	if q.neg {
		q = c.integral(q, ToPositiveInf)
	} else {
		q = c.integral(q, ToNegativeInf)
	}
	return c.sub(x, c.mul(q, y, mode), mode)
}

// integral rounds x to an integer using mode. Floor, Ceil and Trunc use
// ToNegativeInf, ToPositiveInf and ToZero respectively.
func (c *class) integral(x num, mode RoundingMode) num {
	if x.form != finite || x.exp >= 0 {
		return x
	}
	n := uint(-x.exp)
	var (
		q      uint128.Uint128
		rd     uint
		sticky = true
	)
	if n < uint(len(pow10x)) {
		q, rd, sticky = shr10(x.sig, n)
	}
	if mode.roundUp(x.neg, q.Lo()&1 != 0, rd, sticky) {
		q = q.Inc()
	}
	if q.IsZero() {
		return num{form: zero, neg: x.neg}
	}
	return c.make(q, 0, x.neg, false, mode)
}

// cmp compares x and y, neither of which may be NaN. Zeros compare equal
// regardless of their sign.
func cmp(x, y num) int {
	xs, ys := x.sign(), y.sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	}
	if xs < 0 {
		return -cmpAbs(x, y)
	}
	return cmpAbs(x, y)
}

// cmpAbs compares |x| and |y| for nonzero x and y of the same class.
func cmpAbs(x, y num) int {
	if x.form != y.form {
		// finite < inf
		if x.form < y.form {
			return -1
		}
		return 1
	}
	if x.form != finite {
		return 0
	}
	// Both coefficients have exactly prec digits.
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return 1
	}
	return x.sig.Cmp(y.sig)
}

// cmpInt compares x, which must not be NaN, with the integer (-1)**neg * m.
// The comparison is exact.
func (c *class) cmpInt(x num, m uint128.Uint128, neg bool) int {
	y := num{sig: m, neg: neg, form: finite}
	if m.IsZero() {
		y = posZero
	}
	xs, ys := x.sign(), y.sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	}
	r := c.cmpAbsInt(x, m)
	if xs < 0 {
		return -r
	}
	return r
}

// cmpAbsInt compares |x| with m for nonzero x and m.
func (c *class) cmpAbsInt(x num, m uint128.Uint128) int {
	if x.form == inf {
		return 1
	}
	// x is in [10**(dx-1), 10**dx) and m in [10**(dm-1), 10**dm)
	dx, dm := c.prec+x.exp, int(mag128(m))
	switch {
	case dx < dm:
		return -1
	case dx > dm:
		return 1
	}
	// Same number of integer digits: 0 <= x.exp < dm or 0 < -x.exp < prec.
	xw, mw := x.sig.Wide(wideLimbs), m.Wide(wideLimbs)
	if x.exp >= 0 {
		xw = xw.MulLo(pow10w[x.exp])
	} else {
		mw = mw.MulLo(pow10w[-x.exp])
	}
	return xw.Cmp(mw)
}

// quantum returns x's coefficient and exponent with trailing zeros removed.
func (x num) quantum() (uint128.Uint128, int) {
	if x.form != finite {
		return x.sig, 0
	}
	n := trailingZeros(x.sig)
	return x.sig.Quo(pow10x[n]), x.exp + int(n)
}

// compare is cmp extended to a total order where NaNs are less than any other
// value and equal to each other.
func compare(x, y num) int {
	xn, yn := x.isNaN(), y.isNaN()
	switch {
	case xn && yn:
		return 0
	case xn:
		return -1
	case yn:
		return 1
	}
	return cmp(x, y)
}
