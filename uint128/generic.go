package uint128

import "golang.org/x/exp/constraints"

// From returns v as a Uint128. Negative values are sign-extended, so that
// From(-1) == Max.
func From[T constraints.Integer](v T) Uint128 {
	if v < 0 {
		return Uint128{lo: uint64(int64(v)), hi: ^uint64(0)}
	}
	return Uint128{lo: uint64(v)}
}

// CmpInt compares u with the native integer v and returns -1, 0 or +1.
//
// Negative values of v always compare less than u; v is never converted to an
// unsigned value before the comparison.
func CmpInt[T constraints.Integer](u Uint128, v T) int {
	if v < 0 {
		return 1
	}
	return u.Cmp(Uint128{lo: uint64(v)})
}

// EqualInt reports whether u == v.
func EqualInt[T constraints.Integer](u Uint128, v T) bool { return CmpInt(u, v) == 0 }

// NotEqualInt reports whether u != v.
func NotEqualInt[T constraints.Integer](u Uint128, v T) bool { return CmpInt(u, v) != 0 }

// LessInt reports whether u < v.
func LessInt[T constraints.Integer](u Uint128, v T) bool { return CmpInt(u, v) < 0 }

// LessEqualInt reports whether u <= v.
func LessEqualInt[T constraints.Integer](u Uint128, v T) bool { return CmpInt(u, v) <= 0 }

// GreaterInt reports whether u > v.
func GreaterInt[T constraints.Integer](u Uint128, v T) bool { return CmpInt(u, v) > 0 }

// GreaterEqualInt reports whether u >= v.
func GreaterEqualInt[T constraints.Integer](u Uint128, v T) bool { return CmpInt(u, v) >= 0 }

// AndInt returns u & From(v).
func AndInt[T constraints.Integer](u Uint128, v T) Uint128 { return u.And(From(v)) }

// OrInt returns u | From(v).
func OrInt[T constraints.Integer](u Uint128, v T) Uint128 { return u.Or(From(v)) }

// XorInt returns u ^ From(v).
func XorInt[T constraints.Integer](u Uint128, v T) Uint128 { return u.Xor(From(v)) }

// AddInt returns u + From(v) mod 2**128.
func AddInt[T constraints.Integer](u Uint128, v T) Uint128 { return u.Add(From(v)) }

// SubInt returns u - From(v) mod 2**128.
func SubInt[T constraints.Integer](u Uint128, v T) Uint128 { return u.Sub(From(v)) }

// MulInt returns u * From(v) mod 2**128.
func MulInt[T constraints.Integer](u Uint128, v T) Uint128 { return u.Mul(From(v)) }

// Cast returns the low bits of u converted to T, like a native integer
// conversion.
func Cast[T constraints.Integer](u Uint128) T { return T(u.lo) }
