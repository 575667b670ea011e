// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decfast

// Limits describes the numeric properties of a decimal class.
type Limits[D Decimal] struct {
	Digits10      int // decimal digits of precision
	MinExponent10 int // smallest e such that 10**e is a normal value
	MaxExponent10 int // largest e such that 10**e is finite

	Max          D // largest finite value
	Min          D // smallest positive value
	Lowest       D // -Max
	Epsilon      D // difference between 1 and the next representable value
	RoundError   D // largest rounding error in ulps (0.5)
	DenormMin    D // same as Min; there are no subnormal values
	Inf          D // +Inf
	NaN          D // quiet NaN
	SignalingNaN D
}

// LimitsOf returns the limits of class D.
func LimitsOf[D Decimal]() Limits[D] {
	c := classOf[D]()
	p := uint(c.prec)
	max := num{sig: pow10x[p].Dec(), exp: c.maxExp - c.bias, form: finite}
	min := num{sig: pow10x[p-1], exp: -c.bias, form: finite}
	return Limits[D]{
		Digits10:      c.prec,
		MinExponent10: c.emin(),
		MaxExponent10: c.emax(),

		Max:          pack[D](max),
		Min:          pack[D](min),
		Lowest:       pack[D](max.negate()),
		Epsilon:      pack[D](num{sig: pow10x[p-1], exp: 2 - 2*c.prec, form: finite}),
		RoundError:   pack[D](num{sig: pow10x[p-1].Mul64(5), exp: -c.prec, form: finite}),
		DenormMin:    pack[D](min),
		Inf:          pack[D](infOf(false)),
		NaN:          pack[D](qNaN),
		SignalingNaN: pack[D](num{form: snan}),
	}
}
