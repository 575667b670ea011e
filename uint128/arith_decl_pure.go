//go:build decfast_purego

package uint128

// PureGo reports whether the emulated multiplication and division primitives
// are compiled in.
const PureGo = true

func mul64(x, y uint64) (hi, lo uint64) {
	return mul64_g(x, y)
}

func quoRem(u, v Uint128) (q, r Uint128) {
	return quoRem_g(u, v)
}
