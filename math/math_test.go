// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math_test

import (
	gomath "math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/db47h/decfast"
	"github.com/db47h/decfast/math"
	"github.com/db47h/decfast/uint128"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

var (
	d32  = decfast.MustParse32
	d64  = decfast.MustParse64
	d128 = decfast.MustParse128
)

func TestSignFunctions(t *testing.T) {
	require.Equal(t, "2", math.Abs(d64("-2")).String())
	require.Equal(t, "-2", math.Copysign(d64("2"), d64("-0")).String())
	require.Equal(t, "2", math.Copysign(d64("-2"), d64("1")).String())
	require.Equal(t, "-Inf", math.Copysign(decfast.Inf[decfast.Decimal64](false), d64("-1")).String())

	require.Equal(t, "0", math.Fdim(d64("3"), d64("5")).String())
	require.Equal(t, "2", math.Fdim(d64("5"), d64("3")).String())
	require.Equal(t, "+Inf", math.Fdim(decfast.Inf[decfast.Decimal64](false), d64("1")).String())
	require.True(t, math.Fdim(d64("1"), d64("nan")).IsNaN())

	require.Equal(t, "2", math.Fmax(d64("1"), d64("2")).String())
	require.Equal(t, "1", math.Fmax(d64("nan"), d64("1")).String())
	require.Equal(t, "1", math.Fmax(d64("1"), d64("nan")).String())
	require.Equal(t, "1", math.Fmin(d64("1"), d64("2")).String())
	require.Equal(t, "-Inf", math.Fmin(d64("-inf"), d64("2")).String())
	require.Equal(t, "2", math.Fmin(d64("nan"), d64("2")).String())
	require.True(t, math.Fmin(d64("nan"), d64("nan")).IsNaN())
}

func TestFrexp10(t *testing.T) {
	sig, exp := math.Frexp10(d32("1.5"))
	require.Equal(t, uint128.From64(1500000), sig)
	require.Equal(t, -6, exp)
	sig, exp = math.Frexp10(d128("-1e10"))
	require.Equal(t, "1"+strings.Repeat("0", 33), sig.String())
	require.Equal(t, -23, exp)
	sig, exp = math.Frexp10(d64("0"))
	require.True(t, sig.IsZero())
	require.Zero(t, exp)
	sig, exp = math.Frexp10(d64("nan"))
	require.Equal(t, uint128.Max, sig)
	require.Zero(t, exp)
}

func TestScalbn(t *testing.T) {
	require.Equal(t, "150", math.Scalbn(d32("1.5"), 2).String())
	require.Equal(t, "0.015", math.Scalbn(d32("1.5"), -2).String())
	require.Equal(t, "+Inf", math.Scalbn(decfast.LimitsOf[decfast.Decimal32]().Max, 1).String())
	require.Equal(t, "0", math.Scalbn(d32("1"), gomath.MinInt).String())
	require.Equal(t, "-Inf", math.Scalbn(d32("-1"), gomath.MaxInt).String())
	require.Equal(t, "-0", math.Scalbn(d32("-0"), 10).String())
	require.True(t, math.Scalbn(d32("nan"), 1).IsNaN())
}

func TestPown(t *testing.T) {
	td := []struct {
		x    string
		n    int
		want string
	}{
		{"2", 10, "1024"},
		{"2", -2, "0.25"},
		{"-2", 3, "-8"},
		{"-2", 4, "16"},
		{"1.1", 2, "1.21"},
		{"3", -1, "0.3333333"},
		{"10", 96, "1e+96"},
		{"10", 97, "+Inf"},
		{"-10", 97, "-Inf"},
		{"10", -95, "1e-95"},
		{"10", -96, "0"},
		{"2", gomath.MinInt, "0"},
		{"2", gomath.MaxInt, "+Inf"},
		{"0", -1, "+Inf"},
		{"-0", 3, "-0"},
		{"-0", 2, "0"},
		{"nan", 0, "1"},
		{"nan", 1, "NaN"},
		{"inf", 2, "+Inf"},
		{"inf", -2, "0"},
		{"-inf", 3, "-Inf"},
		{"-inf", -3, "-0"},
		{"-inf", -2, "0"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, d.want, math.Pown(d32(d.x), d.n).String(), "%s**%d", d.x, d.n)
		})
	}
	x := d128("1000000000000000000000000000000001")
	require.Equal(t, x, math.Pown(x, 1))
	require.Equal(t, d128("1e-30"), math.Pown(d128("0.1"), 30))

	properties := gopter.NewProperties(nil)
	properties.Property("Pown(x, 2) == x*x", prop.ForAll(
		func(sig uint64, exp int, neg bool) bool {
			x := decfast.New[decfast.Decimal128](uint128.From64(sig), exp, neg)
			return math.Pown(x, 2) == x.Mul(x) && math.Pown(x, 3) == x.Mul(x).Mul(x)
		},
		gen.UInt64(),
		gen.IntRange(-3000, 3000),
		gen.Bool(),
	))
	properties.TestingRun(t)
}

func TestQuantum(t *testing.T) {
	require.Equal(t, -1, math.QuantExp(d64("1.50")))
	require.Equal(t, 2, math.QuantExp(d64("1200")))
	require.Equal(t, 0, math.QuantExp(d64("0")))
	require.Equal(t, gomath.MinInt, math.QuantExp(d64("inf")))

	require.True(t, math.SameQuantum(d64("1.5"), d64("2.5")))
	require.False(t, math.SameQuantum(d64("1.5"), d64("1")))
	require.True(t, math.SameQuantum(d64("nan"), d64("nan")))
	require.True(t, math.SameQuantum(d64("-inf"), d64("inf")))
	require.False(t, math.SameQuantum(d64("inf"), d64("1")))
	require.False(t, math.SameQuantum(d64("1"), d64("nan")))
}

func TestQuantize(t *testing.T) {
	td := []struct {
		x, y string
		mode decfast.RoundingMode
		want string
	}{
		{"1.2345", "0.01", decfast.ToNearestAway, "1.23"},
		{"1.235", "0.01", decfast.ToNearestAway, "1.24"},
		{"1.245", "0.01", decfast.ToNearestEven, "1.24"},
		{"-1.235", "0.01", decfast.ToZero, "-1.23"},
		{"-1.231", "0.01", decfast.ToNegativeInf, "-1.24"},
		{"123", "1e2", decfast.ToNearestAway, "100"},
		{"150", "1e2", decfast.ToNearestAway, "200"},
		{"0.0004", "1", decfast.ToNearestAway, "0"},
		{"0.0004", "1", decfast.AwayFromZero, "1"},
		{"-0.0004", "1", decfast.ToNegativeInf, "-1"},
		{"1", "1e-15", decfast.ToNearestAway, "1"},
		{"1", "1e-16", decfast.ToNearestAway, "NaN"},
		{"0", "1e-100", decfast.ToNearestAway, "0"},
		{"inf", "1", decfast.ToNearestAway, "sNaN"},
		{"1", "-inf", decfast.ToNearestAway, "sNaN"},
		{"-inf", "inf", decfast.ToNearestAway, "-Inf"},
		{"nan", "1", decfast.ToNearestAway, "NaN"},
		{"1", "snan", decfast.ToNearestAway, "NaN"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, d.want, math.QuantizeMode(d64(d.x), d64(d.y), d.mode).String())
		})
	}
	require.Equal(t, "1.24", math.Quantize(d64("1.235"), d64("0.01")).String())
}

var apdRounding = [...]apd.Rounder{
	decfast.ToNearestEven: apd.RoundHalfEven,
	decfast.ToNearestAway: apd.RoundHalfUp,
	decfast.ToZero:        apd.RoundDown,
	decfast.AwayFromZero:  apd.RoundUp,
	decfast.ToNegativeInf: apd.RoundFloor,
	decfast.ToPositiveInf: apd.RoundCeiling,
}

func TestQuantizeAPD(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	rndDec := func() decfast.Decimal64 {
		sig := uint128.From64(uint64(rnd.Int63n(1e17)) >> uint(rnd.Intn(56)))
		return decfast.New[decfast.Decimal64](sig, rnd.Intn(40)-20, rnd.Intn(2) == 0)
	}
	for i := 0; i < 2000; i++ {
		x, y := rndDec(), rndDec()
		if y.IsZero() {
			continue
		}
		ax, _, err := apd.NewFromString(x.Text('e', -1))
		require.NoError(t, err)
		for m := decfast.ToNearestEven; m <= decfast.ToPositiveInf; m++ {
			ctx := apd.BaseContext.WithPrecision(16)
			ctx.Rounding = apdRounding[m]
			ctx.Traps = 0
			var want apd.Decimal
			res, err := ctx.Quantize(&want, ax, int32(math.QuantExp(y)))
			require.NoError(t, err)
			got := math.QuantizeMode(x, y, m)
			if res&apd.InvalidOperation != 0 {
				require.True(t, got.IsNaN(), "quantize(%v, %v) (%v) = %v, want NaN", x, y, m, got)
				continue
			}
			w, err := decfast.Parse64(want.String())
			require.NoError(t, err)
			require.True(t, decfast.Equal(w, got), "quantize(%v, %v) (%v) = %v, want %v", x, y, m, got, &want)
			require.True(t, got.IsZero() || math.QuantExp(got) >= math.QuantExp(y))
		}
	}
}

func TestProxies(t *testing.T) {
	require.Equal(t, "-3", math.Floor(d64("-2.5")).String())
	require.Equal(t, "-2", math.Ceil(d64("-2.5")).String())
	require.Equal(t, "-2", math.Trunc(d64("-2.5")).String())
	require.Equal(t, "-3", math.Round(d64("-2.5")).String())
	require.Equal(t, "-2", math.RoundToEven(d64("-2.5")).String())
	require.Equal(t, "-1", math.Rem(d64("-7"), d64("3")).String())
	require.Equal(t, "1.5", math.Rem(d64("7.5"), d64("-2")).String())
}
