// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uint128

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// An Int128 is a signed 128-bit integer in two's complement representation.
// The zero value is 0.
type Int128 struct {
	u Uint128
}

// Int128 limits.
var (
	MaxInt128 = Int128{Uint128{lo: ^uint64(0), hi: 1<<63 - 1}}
	MinInt128 = Int128{Uint128{hi: 1 << 63}}
)

// IntFrom returns v as an Int128.
func IntFrom[T constraints.Integer](v T) Int128 { return Int128{From(v)} }

// NewInt returns the Int128 whose two's complement bits are hi:lo.
func NewInt(hi, lo uint64) Int128 { return Int128{Uint128{lo: lo, hi: hi}} }

// Uint128 returns the two's complement bits of i.
func (i Int128) Uint128() Uint128 { return i.u }

// Sign returns -1, 0 or +1 depending on the sign of i.
func (i Int128) Sign() int {
	switch {
	case int64(i.u.hi) < 0:
		return -1
	case i.u.IsZero():
		return 0
	}
	return 1
}

// Abs returns the absolute value of i as an unsigned value. The result for
// MinInt128 is 2**127.
func (i Int128) Abs() Uint128 {
	if int64(i.u.hi) < 0 {
		return i.u.Neg()
	}
	return i.u
}

// Neg returns -i. MinInt128.Neg() is MinInt128.
func (i Int128) Neg() Int128 { return Int128{i.u.Neg()} }

// Add returns i + j.
func (i Int128) Add(j Int128) Int128 { return Int128{i.u.Add(j.u)} }

// Sub returns i - j.
func (i Int128) Sub(j Int128) Int128 { return Int128{i.u.Sub(j.u)} }

// Mul returns i * j.
func (i Int128) Mul(j Int128) Int128 { return Int128{i.u.Mul(j.u)} }

// QuoRem returns the quotient i / j truncated toward zero and the remainder
// i % j, which has the sign of i. It panics if j == 0.
func (i Int128) QuoRem(j Int128) (q, r Int128) {
	qu, ru := i.Abs().QuoRem(j.Abs())
	q, r = Int128{qu}, Int128{ru}
	if i.Sign() != j.Sign() {
		q = q.Neg()
	}
	if i.Sign() < 0 {
		r = r.Neg()
	}
	return q, r
}

// Cmp compares i and j and returns -1, 0 or +1.
func (i Int128) Cmp(j Int128) int {
	ih, jh := int64(i.u.hi), int64(j.u.hi)
	switch {
	case ih < jh:
		return -1
	case ih > jh:
		return 1
	}
	return Uint128{lo: i.u.lo}.Cmp(Uint128{lo: j.u.lo})
}

// Less reports whether i < j.
func (i Int128) Less(j Int128) bool { return i.Cmp(j) < 0 }

// CmpInt compares i with the native integer v.
func (i Int128) CmpInt(v int64) int { return i.Cmp(Int128{From(v)}) }

// Big returns i as a *big.Int.
func (i Int128) Big() *big.Int {
	b := i.Abs().Big()
	if i.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

// String returns the decimal representation of i.
func (i Int128) String() string {
	if i.Sign() < 0 {
		return "-" + i.Abs().String()
	}
	return i.u.String()
}

// Float64 returns the float64 value nearest to i.
func (i Int128) Float64() float64 {
	f := i.Abs().Float64()
	if i.Sign() < 0 {
		return -f
	}
	return f
}
