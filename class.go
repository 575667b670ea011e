// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decfast

import (
	"fmt"

	"github.com/db47h/decfast/uint128"
	"github.com/db47h/decfast/wide"
)

const debugDecimal = false // enable for debugging

// A class holds the parameters of a decimal format.
//
// Finite nonzero values always have a coefficient of exactly prec digits, so
// that every value has a single representation. The biased exponent of such a
// value is in [0, maxExp].
type class struct {
	prec   int  // precision in decimal digits
	bias   int  // exponent bias
	maxExp int  // largest biased exponent
	wide   bool // intermediates need more than 128 bits
}

var (
	d32  = &class{prec: 7, bias: 101, maxExp: 191}
	d64  = &class{prec: 16, bias: 398, maxExp: 767}
	d128 = &class{prec: 34, bias: 6176, maxExp: 12287, wide: true}
)

// Internal representation: unpacked decimal values are held in a num.
//
// x                 form      neg      sig            exp
// ----------------------------------------------------------------
// ±0                zero      sign     -              -
// 0 < |x| < +Inf    finite    sign     coefficient    unbiased exponent
// ±Inf              inf       sign     -              -
// NaN               nan       sign     -              -
// sNaN              snan      sign     -              -
type num struct {
	sig  uint128.Uint128
	exp  int
	neg  bool
	form form
}

func (x num) isNaN() bool { return x.form >= nan }

var (
	posZero = num{form: zero}
	qNaN    = num{form: nan}
)

func infOf(neg bool) num { return num{form: inf, neg: neg} }

// exponent clamp for user supplied exponents; far outside of any class range.
const expClamp = 1 << 24

// make returns the normalized value of (-1)**neg * sig * 10**exp rounded to
// c.prec digits. sticky must be set if the exact value has nonzero digits
// past sig. A zero coefficient yields +0, overflow yields ±Inf and underflow
// yields +0.
func (c *class) make(sig uint128.Uint128, exp int, neg, sticky bool, mode RoundingMode) num {
	if sig.IsZero() {
		return posZero
	}
	switch {
	case exp > expClamp:
		exp = expClamp
	case exp < -expClamp:
		exp = -expClamp
	}
	p := uint(c.prec)
	d := mag128(sig)
	var rd uint
	switch {
	case d < p:
		sig = sig.Mul(pow10x[p-d])
		exp -= int(p - d)
	case d > p:
		var s bool
		sig, rd, s = shr10(sig, d-p)
		exp += int(d - p)
		sticky = sticky || s
	}
	if mode.roundUp(neg, sig.Lo()&1 != 0, rd, sticky) {
		sig = sig.Inc()
		if sig == pow10x[p] {
			sig = pow10x[p-1]
			exp++
		}
	}
	z := num{sig: sig, exp: exp, neg: neg, form: finite}
	switch b := exp + c.bias; {
	case b > c.maxExp:
		return infOf(neg)
	case b < 0:
		return posZero
	}
	if debugDecimal {
		c.validate(z)
	}
	return z
}

// makeWide is like make for a wide coefficient of wideLimbs limbs.
func (c *class) makeWide(sig wide.Uint, exp int, neg, sticky bool, mode RoundingMode) num {
	// keep the rounding digit and fold lower digits into sticky
	if d, keep := magWide(sig), uint(c.prec+1); d > keep {
		q, rd, s := shr10Wide(sig, d-keep)
		sig = q
		exp += int(d - keep)
		sticky = sticky || rd != 0 || s
	}
	return c.make(uint128.FromWide(sig), exp, neg, sticky, mode)
}

// validate panics if x is not a normalized finite value of class c.
func (c *class) validate(x num) {
	if !debugDecimal {
		// avoid performance bugs
		panic("validate called but debugDecimal is not set")
	}
	if x.form != finite {
		return
	}
	if d := mag128(x.sig); d != uint(c.prec) {
		panic(fmt.Sprintf("decfast: BUG: coefficient %v has %d digits, want %d", x.sig, d, c.prec))
	}
	if b := x.exp + c.bias; b < 0 || b > c.maxExp {
		panic(fmt.Sprintf("decfast: BUG: biased exponent %d out of range [0, %d]", b, c.maxExp))
	}
}

// limits

func (c *class) emin() int { return -c.bias + c.prec - 1 }
func (c *class) emax() int { return c.maxExp - c.bias + c.prec - 1 }
