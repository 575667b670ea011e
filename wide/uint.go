// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wide implements fixed-width unsigned integers made of 32-bit limbs.
//
// A Uint has a limb count chosen at construction time, up to MaxLimbs, and
// stores its limbs in an array, so values never allocate. All operations
// return new values and wrap around modulo 2**(32*Len()), like native
// unsigned integers.
//
// The package is the multi-limb fallback of the 128-bit integer type: the
// long division it implements (Knuth's Algorithm D) is used whenever a
// divisor does not fit a single 32-bit limb.
package wide

import (
	"math/bits"
	"strconv"
)

// MaxLimbs is the largest number of limbs of a Uint.
const MaxLimbs = 16

// Word size of a limb.
const (
	_W = 32
	_B = 1 << _W
	_M = _B - 1
)

// A Uint is an unsigned integer of Len() 32-bit limbs.
//
// The zero value is a zero-length Uint; use New or one of the From functions
// to create a usable value.
type Uint struct {
	n    int
	limb [MaxLimbs]uint32 // little endian
}

// New returns a zero Uint of n limbs. It panics if n is not in [1, MaxLimbs].
func New(n int) Uint {
	if n < 1 || n > MaxLimbs {
		panic("wide: invalid limb count " + strconv.Itoa(n))
	}
	return Uint{n: n}
}

// FromUint64 returns a Uint of n limbs set to v, truncated if n == 1.
func FromUint64(n int, v uint64) Uint {
	z := New(n)
	z.limb[0] = uint32(v)
	if n > 1 {
		z.limb[1] = uint32(v >> _W)
	}
	return z
}

// FromLimbs returns a Uint made of the given little-endian limbs.
func FromLimbs(limbs ...uint32) Uint {
	z := New(len(limbs))
	copy(z.limb[:], limbs)
	return z
}

// Len returns the number of limbs of x.
func (x Uint) Len() int { return x.n }

// Limb returns the i-th limb of x, least significant first.
func (x Uint) Limb(i int) uint32 { return x.limb[i] }

// Limbs returns a copy of the limbs of x, least significant first.
func (x Uint) Limbs() []uint32 {
	l := make([]uint32, x.n)
	copy(l, x.limb[:x.n])
	return l
}

// Resize returns x with n limbs, dropping the most significant limbs if n <
// x.Len().
func (x Uint) Resize(n int) Uint {
	z := New(n)
	copy(z.limb[:n], x.limb[:x.n])
	return z
}

// Uint64 returns the low 64 bits of x.
func (x Uint) Uint64() uint64 {
	if x.n == 1 {
		return uint64(x.limb[0])
	}
	return uint64(x.limb[1])<<_W | uint64(x.limb[0])
}

// IsZero reports whether x == 0.
func (x Uint) IsZero() bool {
	return x.top() == 0
}

// top returns the number of significant limbs of x.
func (x Uint) top() int {
	i := x.n
	for i > 0 && x.limb[i-1] == 0 {
		i--
	}
	return i
}

// BitLen returns the length of the absolute value of x in bits. The bit length
// of 0 is 0.
func (x Uint) BitLen() int {
	t := x.top()
	if t == 0 {
		return 0
	}
	return (t-1)*_W + bits.Len32(x.limb[t-1])
}

// Cmp compares x and y and returns -1, 0 or +1. x and y may have different
// lengths.
func (x Uint) Cmp(y Uint) int {
	xt, yt := x.top(), y.top()
	if xt != yt {
		if xt < yt {
			return -1
		}
		return 1
	}
	return cmpLimbs(x.limb[:xt], y.limb[:xt])
}

func cmpLimbs(x, y []uint32) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns x + y truncated to x.Len() limbs.
func (x Uint) Add(y Uint) Uint {
	var c uint32
	for i := 0; i < x.n; i++ {
		var yi uint32
		if i < y.n {
			yi = y.limb[i]
		}
		x.limb[i], c = bits.Add32(x.limb[i], yi, c)
	}
	return x
}

// Sub returns x - y truncated to x.Len() limbs.
func (x Uint) Sub(y Uint) Uint {
	var b uint32
	for i := 0; i < x.n; i++ {
		var yi uint32
		if i < y.n {
			yi = y.limb[i]
		}
		x.limb[i], b = bits.Sub32(x.limb[i], yi, b)
	}
	return x
}

// Lsh returns x << s truncated to x.Len() limbs.
func (x Uint) Lsh(s uint) Uint {
	z := New(x.n)
	w, b := int(s/_W), s%_W
	if w >= x.n {
		return z
	}
	if b == 0 {
		copy(z.limb[w:x.n], x.limb[:x.n-w])
		return z
	}
	for i := x.n - 1; i > w; i-- {
		z.limb[i] = x.limb[i-w]<<b | x.limb[i-w-1]>>(_W-b)
	}
	z.limb[w] = x.limb[0] << b
	return z
}

// Rsh returns x >> s.
func (x Uint) Rsh(s uint) Uint {
	z := New(x.n)
	w, b := int(s/_W), s%_W
	if w >= x.n {
		return z
	}
	if b == 0 {
		copy(z.limb[:x.n-w], x.limb[w:x.n])
		return z
	}
	for i := 0; i < x.n-w-1; i++ {
		z.limb[i] = x.limb[i+w]>>b | x.limb[i+w+1]<<(_W-b)
	}
	z.limb[x.n-w-1] = x.limb[x.n-1] >> b
	return z
}

// MulWord returns x * y truncated to x.Len() limbs and the carry out.
func (x Uint) MulWord(y uint32) (z Uint, c uint32) {
	z = New(x.n)
	c = mulAddVWW(z.limb[:x.n], x.limb[:x.n], y, 0)
	return z, c
}

// Mul returns the full product x * y. The result has x.Len() + y.Len() limbs,
// which must not exceed MaxLimbs.
func (x Uint) Mul(y Uint) Uint {
	z := New(x.n + y.n)
	mulVV(z.limb[:z.n], x.limb[:x.top()], y.limb[:y.top()])
	return z
}

// MulLo returns the low x.Len() limbs of x * y.
func (x Uint) MulLo(y Uint) Uint {
	var t [2 * MaxLimbs]uint32
	xt, yt := x.top(), y.top()
	if yt > x.n {
		yt = x.n
	}
	mulVV(t[:xt+yt], x.limb[:xt], y.limb[:yt])
	z := New(x.n)
	copy(z.limb[:x.n], t[:x.n])
	return z
}

// mulVV sets z = x * y. len(z) must be at least len(x) + len(y); extra limbs of
// z are cleared.
func mulVV(z, x, y []uint32) {
	for i := range z {
		z[i] = 0
	}
	for j, yj := range y {
		if yj == 0 {
			continue
		}
		var c uint64
		for i, xi := range x {
			t := uint64(xi)*uint64(yj) + uint64(z[i+j]) + c
			z[i+j] = uint32(t)
			c = t >> _W
		}
		z[j+len(x)] = uint32(c)
	}
}

// mulAddVWW sets z = x*y + r and returns the carry.
func mulAddVWW(z, x []uint32, y, r uint32) (c uint32) {
	c = r
	for i, xi := range x {
		t := uint64(xi)*uint64(y) + uint64(c)
		z[i] = uint32(t)
		c = uint32(t >> _W)
	}
	return c
}

// String returns the decimal representation of x.
func (x Uint) String() string {
	if x.IsZero() {
		return "0"
	}
	// 9 digits per chunk; 10 chunks per 9 limbs is more than enough.
	var chunks [(MaxLimbs*_W)/29 + 1]uint32
	n := 0
	for !x.IsZero() {
		var r uint32
		x, r = x.QuoRemWord(1e9)
		chunks[n] = r
		n++
	}
	buf := strconv.AppendUint(nil, uint64(chunks[n-1]), 10)
	for i := n - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(chunks[i]), 10)
		for k := len(s); k < 9; k++ {
			buf = append(buf, '0')
		}
		buf = append(buf, s...)
	}
	return string(buf)
}
