// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uint128 implements 128-bit unsigned and signed integers as pairs of
// 64-bit limbs.
//
// Arithmetic wraps around modulo 2**128, like Go's native unsigned integers.
// Division by zero panics.
//
// Multiplication and division primitives come in two flavors selected at build
// time: by default they use the double-word operations of math/bits, and with
// the decfast_purego build tag they are emulated with 32-bit partial products
// and limb-by-limb long division. Divisors that do not fit in a single 32-bit
// limb fall back to Knuth division from package wide. Both flavors produce
// identical results; PureGo reports which one is compiled in.
package uint128

import (
	"math/bits"

	"github.com/db47h/decfast/wide"
)

// A Uint128 is an unsigned 128-bit integer. The zero value is 0.
type Uint128 struct {
	lo, hi uint64
}

// Common values.
var (
	Zero = Uint128{}
	One  = Uint128{lo: 1}
	Max  = Uint128{lo: ^uint64(0), hi: ^uint64(0)}
)

// New returns the Uint128 hi*2**64 + lo.
func New(hi, lo uint64) Uint128 { return Uint128{lo: lo, hi: hi} }

// From64 returns v as a Uint128.
func From64(v uint64) Uint128 { return Uint128{lo: v} }

// Mul64x64 returns the full 128-bit product x * y.
func Mul64x64(x, y uint64) Uint128 {
	hi, lo := mul64(x, y)
	return Uint128{lo: lo, hi: hi}
}

// Hi returns the high 64 bits of u.
func (u Uint128) Hi() uint64 { return u.hi }

// Lo returns the low 64 bits of u.
func (u Uint128) Lo() uint64 { return u.lo }

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool { return u.lo|u.hi == 0 }

// IsUint64 reports whether u fits in a uint64.
func (u Uint128) IsUint64() bool { return u.hi == 0 }

// Add returns u + v.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, c := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, c)
	return Uint128{lo: lo, hi: hi}
}

// Add64 returns u + v.
func (u Uint128) Add64(v uint64) Uint128 {
	lo, c := bits.Add64(u.lo, v, 0)
	return Uint128{lo: lo, hi: u.hi + c}
}

// Sub returns u - v.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, b := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, b)
	return Uint128{lo: lo, hi: hi}
}

// Sub64 returns u - v.
func (u Uint128) Sub64(v uint64) Uint128 {
	lo, b := bits.Sub64(u.lo, v, 0)
	return Uint128{lo: lo, hi: u.hi - b}
}

// Inc returns u + 1.
func (u Uint128) Inc() Uint128 { return u.Add64(1) }

// Dec returns u - 1.
func (u Uint128) Dec() Uint128 { return u.Sub64(1) }

// Neg returns the two's complement of u, -u mod 2**128.
func (u Uint128) Neg() Uint128 {
	var c uint64
	if u.lo == 0 {
		c = 1
	}
	return Uint128{lo: ^u.lo + 1, hi: ^u.hi + c}
}

// Not returns ^u.
func (u Uint128) Not() Uint128 { return Uint128{lo: ^u.lo, hi: ^u.hi} }

// And returns u & v.
func (u Uint128) And(v Uint128) Uint128 { return Uint128{lo: u.lo & v.lo, hi: u.hi & v.hi} }

// Or returns u | v.
func (u Uint128) Or(v Uint128) Uint128 { return Uint128{lo: u.lo | v.lo, hi: u.hi | v.hi} }

// Xor returns u ^ v.
func (u Uint128) Xor(v Uint128) Uint128 { return Uint128{lo: u.lo ^ v.lo, hi: u.hi ^ v.hi} }

// AndNot returns u &^ v.
func (u Uint128) AndNot(v Uint128) Uint128 { return Uint128{lo: u.lo &^ v.lo, hi: u.hi &^ v.hi} }

// Lsh returns u << n. Shifts of 128 bits or more return 0.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{hi: u.lo << (n - 64)}
	case n == 0:
		return u
	}
	return Uint128{lo: u.lo << n, hi: u.hi<<n | u.lo>>(64-n)}
}

// Rsh returns u >> n. Shifts of 128 bits or more return 0.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{lo: u.hi >> (n - 64)}
	case n == 0:
		return u
	}
	return Uint128{lo: u.lo>>n | u.hi<<(64-n), hi: u.hi >> n}
}

// Mul returns u * v mod 2**128.
func (u Uint128) Mul(v Uint128) Uint128 {
	hi, lo := mul64(u.lo, v.lo)
	hi += u.hi*v.lo + u.lo*v.hi
	return Uint128{lo: lo, hi: hi}
}

// Mul64 returns u * v mod 2**128.
func (u Uint128) Mul64(v uint64) Uint128 {
	hi, lo := mul64(u.lo, v)
	return Uint128{lo: lo, hi: hi + u.hi*v}
}

// QuoRem returns the quotient u / v and the remainder u % v. It panics if v ==
// 0.
func (u Uint128) QuoRem(v Uint128) (q, r Uint128) {
	if v.IsZero() {
		panic("uint128: division by zero")
	}
	return quoRem(u, v)
}

// Quo returns u / v. It panics if v == 0.
func (u Uint128) Quo(v Uint128) Uint128 {
	q, _ := u.QuoRem(v)
	return q
}

// Rem returns u % v. It panics if v == 0.
func (u Uint128) Rem(v Uint128) Uint128 {
	_, r := u.QuoRem(v)
	return r
}

// QuoRem64 returns the quotient u / v and the remainder u % v. It panics if v
// == 0.
func (u Uint128) QuoRem64(v uint64) (q Uint128, r uint64) {
	q, rr := u.QuoRem(Uint128{lo: v})
	return q, rr.lo
}

// Cmp compares u and v and returns -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	}
	return 0
}

// Equal reports whether u == v.
func (u Uint128) Equal(v Uint128) bool { return u == v }

// Less reports whether u < v.
func (u Uint128) Less(v Uint128) bool { return u.hi < v.hi || u.hi == v.hi && u.lo < v.lo }

// LessEqual reports whether u <= v.
func (u Uint128) LessEqual(v Uint128) bool { return !v.Less(u) }

// Greater reports whether u > v.
func (u Uint128) Greater(v Uint128) bool { return v.Less(u) }

// GreaterEqual reports whether u >= v.
func (u Uint128) GreaterEqual(v Uint128) bool { return !u.Less(v) }

// LeadingZeros returns the number of leading zero bits in u.
func (u Uint128) LeadingZeros() int {
	if u.hi != 0 {
		return bits.LeadingZeros64(u.hi)
	}
	return 64 + bits.LeadingZeros64(u.lo)
}

// TrailingZeros returns the number of trailing zero bits in u; the result is
// 128 for u == 0.
func (u Uint128) TrailingZeros() int {
	if u.lo != 0 {
		return bits.TrailingZeros64(u.lo)
	}
	return 64 + bits.TrailingZeros64(u.hi)
}

// BitLen returns the number of bits required to represent u; the result is 0
// for u == 0. BitLen() - 1 is the index of the highest set bit.
func (u Uint128) BitLen() int { return 128 - u.LeadingZeros() }

// Wide returns u as a wide.Uint of n >= 4 limbs.
func (u Uint128) Wide(n int) wide.Uint {
	z := wide.FromLimbs(uint32(u.lo), uint32(u.lo>>32), uint32(u.hi), uint32(u.hi>>32))
	if n == 4 {
		return z
	}
	return z.Resize(n)
}

// FromWide returns the low 128 bits of w.
func FromWide(w wide.Uint) Uint128 {
	var l [4]uint64
	for i := 0; i < 4 && i < w.Len(); i++ {
		l[i] = uint64(w.Limb(i))
	}
	return Uint128{lo: l[1]<<32 | l[0], hi: l[3]<<32 | l[2]}
}
