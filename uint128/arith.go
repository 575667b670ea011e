// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides portable implementations of the multiplication and
// division primitives. The arith_decl files select the implementation used by
// Uint128.

package uint128

const mask32 = 1<<32 - 1

// mul64_g returns the 128-bit product x*y, computed from four 32x32->64
// partial products.
func mul64_g(x, y uint64) (hi, lo uint64) {
	x0, x1 := x&mask32, x>>32
	y0, y1 := y&mask32, y>>32

	w0 := x0 * y0
	t := x1*y0 + w0>>32
	w1 := t & mask32
	w2 := t >> 32
	w1 += x0 * y1

	hi = x1*y1 + w2 + w1>>32
	lo = x * y
	return
}

// quoRem32_g divides u by the single-limb divisor v. The quotient is produced
// 32 bits at a time, top limb first.
func quoRem32_g(u Uint128, v uint32) (q Uint128, r uint32) {
	d := uint64(v)
	var rem uint64
	limbs := [4]uint64{u.hi >> 32, u.hi & mask32, u.lo >> 32, u.lo & mask32}
	var ql [4]uint64
	for i, l := range limbs {
		cur := rem<<32 | l
		ql[i] = cur / d
		rem = cur % d
	}
	return Uint128{lo: ql[2]<<32 | ql[3], hi: ql[0]<<32 | ql[1]}, uint32(rem)
}

// quoRem_g returns u / v and u % v for v != 0 using the single-limb long
// division when v fits in 32 bits and Knuth division otherwise.
func quoRem_g(u, v Uint128) (q, r Uint128) {
	if v.hi == 0 && v.lo <= mask32 {
		q, rr := quoRem32_g(u, uint32(v.lo))
		return q, Uint128{lo: uint64(rr)}
	}
	return quoRemKnuth(u, v)
}

// quoRemKnuth returns u / v and u % v computed by package wide.
func quoRemKnuth(u, v Uint128) (q, r Uint128) {
	if u.Less(v) {
		return Uint128{}, u
	}
	wq, wr := u.Wide(4).QuoRem(v.Wide(4))
	return FromWide(wq), FromWide(wr)
}
