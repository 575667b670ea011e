package decfast

import (
	"math/bits"

	"github.com/db47h/decfast/uint128"
	"github.com/db47h/decfast/wide"
)

var pow10s = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

func pow10(n uint) uint64 { return pow10s[n] }

var maxDigits = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// mag returns the magnitude of x such that 10**(mag-1) <= x < 10**mag.
// Returns 0 for x == 0.
func mag(x uint64) uint {
	if x == 0 {
		return 0
	}
	d := maxDigits[bits.Len64(x)]
	if x < pow10(d-1) {
		d--
	}
	return d
}

// wideLimbs is the size of the intermediates of Decimal128 arithmetic. 256 bits
// hold any product of two coefficients or any scaled dividend.
const wideLimbs = 8

var (
	pow10w = makePow10w() // 10**0 through 10**77, wideLimbs limbs
	pow10x = makePow10x() // 10**0 through 10**38
)

func makePow10w() (t [78]wide.Uint) {
	for i := range t {
		t[i] = wide.Pow10(wideLimbs, uint(i))
	}
	return t
}

func makePow10x() (t [39]uint128.Uint128) {
	for i := range t {
		t[i] = uint128.FromWide(wide.Pow10(wideLimbs, uint(i)))
	}
	return t
}

// mag128 returns the number of decimal digits of x, or 0 for x == 0.
func mag128(x uint128.Uint128) uint {
	if x.IsUint64() {
		return mag(x.Lo())
	}
	// 1233/4096 ~ log10(2)
	t := uint(x.BitLen()) * 1233 >> 12
	if t < uint(len(pow10x)) && x.GreaterEqual(pow10x[t]) {
		t++
	}
	return t
}

// magWide returns the number of decimal digits of x, or 0 for x == 0.
func magWide(x wide.Uint) uint {
	if x.IsZero() {
		return 0
	}
	t := uint(x.BitLen()) * 1233 >> 12
	if t < uint(len(pow10w)) && x.Cmp(pow10w[t]) >= 0 {
		t++
	}
	return t
}

// shr10 returns x / 10**n, the rounding digit (the most significant discarded
// digit) and a sticky bit set if any other discarded digit is nonzero.
// 0 < n <= 38.
func shr10(x uint128.Uint128, n uint) (q uint128.Uint128, rd uint, sticky bool) {
	q, r := x.QuoRem(pow10x[n])
	d, s := r.QuoRem(pow10x[n-1])
	return q, uint(d.Lo()), !s.IsZero()
}

// shr10Wide is like shr10 for wide.Uint values of wideLimbs limbs.
// 0 < n < 78.
func shr10Wide(x wide.Uint, n uint) (q wide.Uint, rd uint, sticky bool) {
	q, r := x.QuoRem(pow10w[n])
	d, s := r.QuoRem(pow10w[n-1])
	return q, uint(d.Uint64()), !s.IsZero()
}

func dec64TrailingZeros(n uint64) uint {
	var d uint
	if n%10000000000000000 == 0 {
		n /= 10000000000000000
		d += 16
	}
	if n%100000000 == 0 {
		n /= 100000000
		d += 8
	}
	if n%10000 == 0 {
		n /= 10000
		d += 4
	}
	if n%100 == 0 {
		n /= 100
		d += 2
	}
	if n%10 == 0 {
		d++
	}
	return d
}

// trailingZeros returns the number of trailing decimal zeros of x != 0.
func trailingZeros(x uint128.Uint128) uint {
	var d uint
	for !x.IsUint64() {
		q, r := x.QuoRem64(pow10(19))
		if r != 0 {
			return d + dec64TrailingZeros(r)
		}
		x = q
		d += 19
	}
	return d + dec64TrailingZeros(x.Lo())
}
