// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decfast

import (
	"math"
	"strings"
	"testing"

	"github.com/db47h/decfast/uint128"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestGeneric(t *testing.T) {
	t.Run("Decimal32", testGeneric[Decimal32])
	t.Run("Decimal64", testGeneric[Decimal64])
	t.Run("Decimal128", testGeneric[Decimal128])
}

func testGeneric[D Decimal](t *testing.T) {
	p := func(s string) D {
		x, err := Parse[D](s)
		require.NoError(t, err)
		return x
	}
	prec := LimitsOf[D]().Digits10

	require.Equal(t, p("3"), Add(p("2.7"), p("0.3")))
	require.Equal(t, p("2.4"), Sub(p("2.7"), p("0.3")))
	require.Equal(t, p("0.81"), Mul(p("2.7"), p("0.3")))
	require.Equal(t, p("9"), Quo(p("2.7"), p("0.3")))
	require.Equal(t, p("0.25"), Quo(p("1"), p("4")))
	require.Equal(t, "0."+strings.Repeat("3", prec), Quo(p("1"), p("3")).String())
	require.Equal(t, "0."+strings.Repeat("6", prec-1)+"7", Quo(p("2"), p("3")).String())
	require.Equal(t, "0."+strings.Repeat("6", prec), QuoMode(p("2"), p("3"), ToZero).String())
	require.Equal(t, p("0.1"), Rem(p("1"), p("0.3")))
	require.Equal(t, p("-2.5"), Neg(p("2.5")))
	require.Equal(t, p("2.5"), Abs(p("-2.5")))
	require.Equal(t, p("2"), Floor(p("2.5")))
	require.Equal(t, p("3"), Ceil(p("2.5")))
	require.Equal(t, p("-2"), Trunc(p("-2.5")))
	require.Equal(t, p("-3"), RoundToIntegral(p("-2.5"), ToNearestAway))
	require.Equal(t, -1, Compare(p("1"), p("2")))
	require.Equal(t, -1, Compare(NaN[D](), p("2")))
	require.True(t, Equal(p("1.0"), p("1")))
	require.False(t, Equal(NaN[D](), NaN[D]()))
	require.True(t, Less(p("-1"), p("-0.5")))
	require.False(t, Less(NaN[D](), p("1")))
	require.Equal(t, 2.5, Float64(p("2.5")))
	require.Equal(t, float32(2.5), Float32(p("2.5")))
	require.Equal(t, p("1.5"), FromFloat64[D](1.5))

	// directed rounding of a sum
	one, tiny := p("1"), p("1e-50")
	require.Equal(t, one, AddMode(one, tiny, ToZero))
	require.True(t, Less(one, AddMode(one, tiny, ToPositiveInf)))
	require.True(t, Less(SubMode(one, tiny, ToNegativeInf), one))
	require.Equal(t, one, SubMode(one, tiny, ToNearestEven))
	require.Equal(t, one, RemMode(p("7"), p("3"), ToNearestEven))

	// integer operands
	require.Equal(t, p("3.5"), AddInt(p("1.5"), 2))
	require.Equal(t, p("3.5"), SubInt(p("1.5"), int8(-2)))
	require.Equal(t, p("4.5"), MulInt(p("1.5"), uint16(3)))
	require.Equal(t, p("0.5"), QuoInt(p("1.5"), int64(3)))
	require.Equal(t, p("1.5"), RemInt(p("7.5"), uint(2)))
	require.Equal(t, p("-128"), FromInt[D](int8(math.MinInt8)))
	require.Equal(t, p("65535"), FromInt[D](uint16(math.MaxUint16)))
	require.True(t, EqualInt(p("42"), 42))
	require.True(t, LessInt(p("41.9"), 42))
	require.True(t, GreaterInt(p("42.1"), 42))
	require.True(t, QuoInt(p("1"), 0).IsInf())
	require.True(t, RemInt(p("1"), 0).IsNaN())

	n, err := ToInt[int](p("-42.9"))
	require.NoError(t, err)
	require.Equal(t, -42, n)

	// properties
	properties := gopter.NewProperties(nil)
	properties.Property("a + b == b + a", prop.ForAll(
		func(a, b D) bool { return Add(a, b) == Add(b, a) },
		genDecimal[D](), genDecimal[D](),
	))
	properties.Property("a * b == b * a", prop.ForAll(
		func(a, b D) bool { return Mul(a, b) == Mul(b, a) },
		genDecimal[D](), genDecimal[D](),
	))
	properties.Property("normalization is idempotent", prop.ForAll(
		func(a D) bool {
			if !a.IsFinite() {
				return true
			}
			return New[D](Unpack(a)) == a
		},
		genDecimal[D](),
	))
	properties.Property("a - a == 0", prop.ForAll(
		func(a D) bool {
			if !a.IsFinite() {
				return true
			}
			z := Sub(a, a)
			return z.IsZero() && !z.Signbit()
		},
		genDecimal[D](),
	))
	properties.Property("NaN propagates", prop.ForAll(
		func(a D) bool {
			for _, n := range []D{NaN[D](), SignalingNaN[D](), Neg(NaN[D]())} {
				for _, op := range []func(x, y D) D{Add[D], Sub[D], Mul[D], Quo[D], Rem[D]} {
					if !op(n, a).IsNaN() || !op(a, n).IsNaN() || op(a, n).IsSignalingNaN() {
						return false
					}
				}
				if Equal(n, n) || Equal(n, a) || Less(n, a) || Less(a, n) {
					return false
				}
			}
			return true
		},
		genDecimal[D](),
	))
	properties.Property("infinity laws", prop.ForAll(
		func(a D) bool {
			inf, ninf := Inf[D](false), Inf[D](true)
			if Add(inf, inf) != inf || Add(ninf, ninf) != ninf || !Sub(inf, inf).IsNaN() || !Quo(inf, ninf).IsNaN() {
				return false
			}
			if !a.IsFinite() {
				return true
			}
			if Add(inf, a) != inf || Sub(a, inf) != ninf {
				return false
			}
			z := Quo(a, inf)
			if !z.IsZero() || z.Signbit() != a.Signbit() {
				return false
			}
			if a.IsZero() {
				return Quo(a, FromInt[D](0)).IsNaN()
			}
			z = Quo(a, FromInt[D](0))
			return z.IsInf() && z.Signbit() == a.Signbit()
		},
		genDecimal[D](),
	))
	properties.Property("comparison agrees with subtraction", prop.ForAll(
		func(a, b D) bool {
			d := Sub(a, b)
			if d.IsInf() || d.IsZero() && !Equal(a, b) {
				// overflow or underflow
				return true
			}
			return Compare(a, b) == d.Sign()
		},
		genDecimal[D](), genDecimal[D](),
	))
	properties.TestingRun(t)
}

// genDecimal generates finite values of D with random coefficients and
// exponents covering the whole range of the class.
func genDecimal[D Decimal]() gopter.Gen {
	c := classOf[D]()
	return gopter.CombineGens(
		gen.UInt64(), gen.UInt64(), gen.UIntRange(0, 127),
		gen.IntRange(-c.bias-c.prec, c.maxExp-c.bias), gen.Bool(),
	).Map(func(v []interface{}) D {
		sig := uint128.New(v[0].(uint64), v[1].(uint64)).Rsh(v[2].(uint))
		return New[D](sig, v[3].(int), v[4].(bool))
	})
}

func TestCmpInt(t *testing.T) {
	// 1e7 and 10000001 round to the same Decimal32
	x := MustParse32("1e7")
	require.Equal(t, -1, CmpInt(x, 10000001))
	require.True(t, x.Equal(FromInt[Decimal32](10000001)))
	require.Equal(t, 0, CmpInt(x, int32(10000000)))

	require.Equal(t, 1, CmpInt(LimitsOf[Decimal32]().Max, uint64(math.MaxUint64)))
	require.Equal(t, -1, CmpInt(LimitsOf[Decimal32]().Lowest, int64(math.MinInt64)))
	require.Equal(t, 1, CmpInt(MustParse32("0.5"), 0))
	require.Equal(t, -1, CmpInt(MustParse32("-0.5"), 0))
	require.Equal(t, 1, CmpInt(MustParse32("-0.5"), -1))
	require.Equal(t, 0, CmpInt(MustParse32("-0"), 0))
	require.Equal(t, 1, CmpInt(MustParse32("123.4"), 123))
	require.Equal(t, 0, CmpInt(MustParse32("123"), uint8(123)))
	require.Equal(t, 1, CmpInt(MustParse32("1e-90"), 0))
	require.Equal(t, -1, CmpInt(MustParse32("1e-90"), 1))
	require.Equal(t, 1, CmpInt(Inf[Decimal64](false), int64(math.MaxInt64)))
	require.Equal(t, -1, CmpInt(Inf[Decimal64](true), int64(math.MinInt64)))

	require.Equal(t, 0, CmpInt(MustParse128("18446744073709551615"), uint64(math.MaxUint64)))
	require.Equal(t, 1, CmpInt(MustParse128("18446744073709551615.5"), uint64(math.MaxUint64)))
	require.Equal(t, -1, CmpInt(MustParse64("18446744073709551615"), uint64(math.MaxUint64)))
	require.Equal(t, 0, CmpInt(MustParse128("-9223372036854775808"), int64(math.MinInt64)))

	nan := NaN[Decimal64]()
	require.Equal(t, -1, CmpInt(nan, 0))
	require.False(t, EqualInt(nan, 0))
	require.False(t, LessInt(nan, 0))
	require.False(t, GreaterInt(nan, 0))
}

func TestToInt(t *testing.T) {
	v8, err := ToInt[int8](MustParse32("127.9"))
	require.NoError(t, err)
	require.Equal(t, int8(127), v8)
	v8, err = ToInt[int8](MustParse32("-128.9"))
	require.NoError(t, err)
	require.Equal(t, int8(-128), v8)
	for _, s := range []string{"128", "-129", "1e30"} {
		v8, err = ToInt[int8](MustParse32(s))
		require.True(t, RangeError.Has(err), s)
		require.Zero(t, v8)
	}

	u8, err := ToInt[uint8](MustParse32("255"))
	require.NoError(t, err)
	require.Equal(t, uint8(255), u8)
	u8, err = ToInt[uint8](MustParse32("-0.5"))
	require.NoError(t, err)
	require.Zero(t, u8)
	_, err = ToInt[uint8](MustParse32("-1"))
	require.True(t, RangeError.Has(err))
	_, err = ToInt[uint8](MustParse32("256"))
	require.True(t, RangeError.Has(err))

	_, err = ToInt[int](NaN[Decimal64]())
	require.True(t, InvalidError.Has(err))
	_, err = ToInt[int](SignalingNaN[Decimal64]())
	require.True(t, InvalidError.Has(err))
	_, err = ToInt[int](Inf[Decimal64](true))
	require.True(t, RangeError.Has(err))
	_, err = ToInt[int64](MustParse64("1e30"))
	require.True(t, RangeError.Has(err))
	_, err = ToInt[int64](MustParse128("1e100"))
	require.True(t, RangeError.Has(err))

	u64, err := ToInt[uint64](MustParse128("18446744073709551615"))
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), u64)
	_, err = ToInt[uint64](MustParse128("18446744073709551616"))
	require.True(t, RangeError.Has(err))

	i64, err := ToInt[int64](MustParse128("-9223372036854775808"))
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), i64)
	i64, err = ToInt[int64](MustParse128("9223372036854775807.99"))
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), i64)
	_, err = ToInt[int64](MustParse128("-9223372036854775809"))
	require.True(t, RangeError.Has(err))
	_, err = ToInt[int64](MustParse128("9223372036854775808"))
	require.True(t, RangeError.Has(err))

	z, err := ToInt[int32](Decimal64{})
	require.NoError(t, err)
	require.Zero(t, z)
}

func TestFromWideIntegers(t *testing.T) {
	require.Equal(t, "3.402823669209384634633746074317682e+38", FromUint128[Decimal128](uint128.Max).String())
	require.Equal(t, "-1.701411834604692e+38", FromInt128[Decimal64](uint128.MinInt128).String())
	require.Equal(t, "-42", FromInt128[Decimal32](uint128.IntFrom(-42)).String())
	require.Equal(t, "42", FromUint128[Decimal32](uint128.From64(42)).String())
}
