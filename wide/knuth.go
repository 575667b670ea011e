// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wide

const debugWide = false

// QuoRemWord returns the quotient x / y and remainder x % y. It panics if y ==
// 0.
func (x Uint) QuoRemWord(y uint32) (q Uint, r uint32) {
	if y == 0 {
		panic("wide: division by zero")
	}
	q = New(x.n)
	r = divWVW(q.limb[:x.n], x.limb[:x.n], y)
	return q, r
}

// divWVW sets z = x / y and returns x % y, top limb first.
func divWVW(z, x []uint32, y uint32) uint32 {
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		t := r<<_W | uint64(x[i])
		z[i] = uint32(t / uint64(y))
		r = t % uint64(y)
	}
	return uint32(r)
}

// QuoRem returns the quotient q = x / y and the remainder r = x % y, both of
// x.Len() limbs.
//
// Division by zero is not an error: both q and r are zero in that case. Callers
// are expected to check for a zero divisor themselves.
func (x Uint) QuoRem(y Uint) (q, r Uint) {
	q, r = New(x.n), New(x.n)
	un, vn := x.top(), y.top()
	if vn == 0 || un == 0 {
		return q, r
	}
	if un < vn {
		return q, x
	}
	switch cmpLimbs(x.limb[:un], y.limb[:un]) {
	case -1:
		return q, x
	case 0:
		q.limb[0] = 1
		return q, r
	}
	if vn == 1 {
		r.limb[0] = divWVW(q.limb[:un], x.limb[:un], y.limb[0])
		return q, r
	}
	divKnuth(q.limb[:un-vn+1], r.limb[:vn], x.limb[:un], y.limb[:vn])
	if debugWide {
		if qy := q.Resize(MaxLimbs).MulLo(y).Add(r); qy.Cmp(x) != 0 {
			panic("wide: BUG: q*y + r != x")
		}
		if r.Cmp(y) >= 0 {
			panic("wide: BUG: remainder not less than divisor")
		}
	}
	return q, r
}

// divKnuth implements Knuth's Algorithm D (TAOCP vol. 2, 4.3.1). It sets q = u
// / v and r = u % v, with len(v) >= 2, the top limbs of u and v non-zero and u
// > v. len(q) must be len(u) - len(v) + 1 and len(r) must be len(v).
func divKnuth(q, r, u, v []uint32) {
	n := len(v)
	m := len(u) - n

	// D1. Normalize so that the top limb of the divisor is at least _B/2.
	d := uint32(_B / (uint64(v[n-1]) + 1))
	var uu [MaxLimbs + 1]uint32
	var vv [MaxLimbs]uint32
	uu[m+n] = mulAddVWW(uu[:m+n], u, d, 0)
	mulAddVWW(vv[:n], v, d, 0)

	vtop, vnext := uint64(vv[n-1]), uint64(vv[n-2])

	for j := m; j >= 0; j-- {
		// D3. Estimate q̂ from the top two limbs of the current window.
		ujn := uint64(uu[j+n])
		num := ujn<<_W | uint64(uu[j+n-1])
		var qhat uint64
		if ujn == vtop {
			qhat = _M
		} else {
			qhat = num / vtop
		}
		rhat := num - qhat*vtop
		for rhat < _B && qhat*vnext > (rhat<<_W|uint64(uu[j+n-2])) {
			qhat--
			rhat += vtop
		}

		// D4. Multiply and subtract.
		var carry, borrow uint64
		for i := 0; i < n; i++ {
			p := qhat*uint64(vv[i]) + carry
			carry = p >> _W
			t := uint64(uu[i+j]) - (p & _M) - borrow
			uu[i+j] = uint32(t)
			borrow = t >> 63
		}
		t := uint64(uu[j+n]) - carry - borrow
		uu[j+n] = uint32(t)

		// D5, D6. Add back if the window went negative.
		if t>>63 != 0 {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				s := uint64(uu[i+j]) + uint64(vv[i]) + c
				uu[i+j] = uint32(s)
				c = s >> _W
			}
			uu[j+n] += uint32(c)
		}
		q[j] = uint32(qhat)
	}

	// D8. Unnormalize the remainder.
	divWVW(r, uu[:n], d)
}
