package wide

// Pow5 returns 5**e as a Uint of n limbs. The result wraps around if it does
// not fit.
func Pow5(n int, e uint) Uint {
	z := FromUint64(n, 1)
	// 5**13 is the largest power of 5 that fits a limb.
	const p13 = 1220703125
	for ; e >= 13; e -= 13 {
		z, _ = z.MulWord(p13)
	}
	p := uint32(1)
	for ; e > 0; e-- {
		p *= 5
	}
	z, _ = z.MulWord(p)
	return z
}

// Pow10 returns 10**e as a Uint of n limbs, computed as 5**e * 2**e. The result
// wraps around if it does not fit.
func Pow10(n int, e uint) Uint {
	return Pow5(n, e).Lsh(e)
}
