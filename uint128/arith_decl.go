//go:build !decfast_purego

package uint128

import "math/bits"

// PureGo reports whether the emulated multiplication and division primitives
// are compiled in.
const PureGo = false

func mul64(x, y uint64) (hi, lo uint64) {
	return bits.Mul64(x, y)
}

func quoRem(u, v Uint128) (q, r Uint128) {
	if v.hi != 0 {
		return quoRemKnuth(u, v)
	}
	if u.hi < v.lo {
		q.lo, r.lo = bits.Div64(u.hi, u.lo, v.lo)
		return q, r
	}
	var rh uint64
	q.hi, rh = bits.Div64(0, u.hi, v.lo)
	q.lo, r.lo = bits.Div64(rh, u.lo, v.lo)
	return q, r
}
