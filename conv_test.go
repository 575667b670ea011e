// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decfast

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	td := []struct {
		s, want string
	}{
		{"0", "0"},
		{"-0", "-0"},
		{"0e10", "0"},
		{"-0.000", "-0"},
		{"+1.50", "1.5"},
		{"1_000", "1000"},
		{".5", "0.5"},
		{"5.", "5"},
		{"1e3", "1000"},
		{"1E-3", "0.001"},
		{"-12.345e+2", "-1234.5"},
		{"000123.4500", "123.45"},
		{"0.000001", "0.000001"},
		{"0.0000001", "1e-07"},
		{"1234567890123456", "1234567890123456"},
		{"12345678901234567", "1.234567890123457e+16"},
		{"1234567890123456789012345678901234567890", "1.234567890123457e+39"},
		{"0.1234567890123456789012345678901234567890123", "0.1234567890123457"},
		{"Inf", "+Inf"},
		{"-infinity", "-Inf"},
		{"+INF", "+Inf"},
		{"NaN", "NaN"},
		{"snan", "sNaN"},
		{"1e384", "1e+384"},
		{"1e385", "+Inf"},
		{"-1e999", "-Inf"},
		{"1e-383", "1e-383"},
		{"1e-999", "0"},
		{"1e99999999999999999999", "+Inf"},
		{"-1e-99999999999999999999", "0"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			x, err := Parse64(d.s)
			require.NoError(t, err, d.s)
			require.Equal(t, d.want, x.String(), d.s)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "+", "-", ".", "1.2.3", "1e", "1e+", "abc", "inf1", "1__0", "_1", "1_", "1e1_", " 1", "1 ", "0x10", "1,5"} {
		t.Run(s, func(t *testing.T) {
			x, err := Parse32(s)
			require.Error(t, err)
			require.True(t, x.IsNaN())
			require.True(t, InvalidError.Has(err))
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, s, pe.Input)
			require.Panics(t, func() { MustParse32(s) })
		})
	}
}

func TestParseMode(t *testing.T) {
	td := []struct {
		s    string
		mode RoundingMode
		want string
	}{
		{"1.0000005", ToNearestEven, "1"},
		{"1.0000015", ToNearestEven, "1.000002"},
		{"1.00000050001", ToNearestEven, "1.000001"},
		{"1.0000005", ToNearestAway, "1.000001"},
		{"-1.0000005", ToNearestAway, "-1.000001"},
		{"1.0000009", ToZero, "1"},
		{"1.0000001", AwayFromZero, "1.000001"},
		{"-1.0000001", ToNegativeInf, "-1.000001"},
		{"-1.0000009", ToPositiveInf, "-1"},
		{"9.9999995", ToNearestAway, "10"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			x, err := ParseMode[Decimal32](d.s, d.mode)
			require.NoError(t, err)
			require.Equal(t, d.want, x.String())
		})
	}
}

func TestText(t *testing.T) {
	td := []struct {
		x      string
		format byte
		prec   int
		want   string
	}{
		{"1234.5678", 'e', -1, "1.2345678e+03"},
		{"1234.5678", 'e', 2, "1.23e+03"},
		{"1234.5678", 'E', 3, "1.235E+03"},
		{"1234.5678", 'f', -1, "1234.5678"},
		{"1234.5678", 'f', 2, "1234.57"},
		{"1234.5678", 'f', 0, "1235"},
		{"1234.5678", 'f', 6, "1234.567800"},
		{"1234.5678", 'g', -1, "1234.5678"},
		{"1234.5678", 'g', 3, "1.23e+03"},
		{"1234.5678", 'g', 5, "1234.6"},
		{"1e20", 'G', -1, "1E+20"},
		{"1e20", 'f', -1, "100000000000000000000"},
		{"0.00012", 'e', -1, "1.2e-04"},
		{"0.00012", 'f', -1, "0.00012"},
		{"0.00012", 'g', -1, "0.00012"},
		{"-0", 'e', -1, "-0e+00"},
		{"-0", 'f', -1, "-0"},
		{"0", 'f', 2, "0.00"},
		{"0", 'e', 3, "0.000e+00"},
		{"9.999", 'e', 2, "1.00e+01"},
		{"9.96", 'f', 1, "10.0"},
		{"0.4", 'f', 0, "0"},
		{"0.5", 'f', 0, "1"},
		{"0.001", 'f', 2, "0.00"},
		{"1e-100", 'e', -1, "1e-100"},
		{"-inf", 'f', 2, "-Inf"},
		{"nan", 'e', 2, "NaN"},
		{"1", 'x', -1, "%x"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, d.want, MustParse64(d.x).Text(d.format, d.prec))
		})
	}
}

func TestFormat(t *testing.T) {
	x := MustParse64("1234.5678")
	td := []struct {
		format string
		x      Decimal64
		want   string
	}{
		{"%v", x, "1234.5678"},
		{"%s", x, "1234.5678"},
		{"%.2f", x, "1234.57"},
		{"%F", x, "1234.567800"},
		{"%10.2f", x, "   1234.57"},
		{"%-10.2f|", x, "1234.57   |"},
		{"%+.1e", x, "+1.2e+03"},
		{"% g", x, " 1234.5678"},
		{"%e", x, "1.234568e+03"},
		{"%.3G", x, "1.23E+03"},
		{"%010.2f", MustParse64("-1.5"), "-000001.50"},
		{"%f", MustParse64("1.5"), "1.500000"},
		{"%d", MustParse64("1.5"), "%!d(decfast=1.5)"},
		{"%8v", Inf[Decimal64](false), "    +Inf"},
		{"% v", Inf[Decimal64](false), " Inf"},
		{"%08v", Inf[Decimal64](true), "    -Inf"},
		{"%v", NaN[Decimal64](), "NaN"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, d.want, fmt.Sprintf(d.format, d.x))
		})
	}
	require.Equal(t, "0.1 0.1 0.1", fmt.Sprint(MustParse32("0.1"), MustParse64("0.1"), MustParse128("0.1")))
}

func TestFloatConversions(t *testing.T) {
	require.Equal(t, "0.1", Decimal64FromFloat64(0.1).String())
	require.Equal(t, "3.141593", Decimal32FromFloat64(math.Pi).String())
	require.Equal(t, "3.141592653589793", Decimal128FromFloat64(math.Pi).String())
	require.Equal(t, "0.1", Decimal32FromFloat32(0.1).String())
	require.Equal(t, "1e+300", Decimal128FromFloat64(1e300).String())
	require.True(t, Decimal64FromFloat64(math.NaN()).IsNaN())
	require.True(t, Decimal64FromFloat64(math.Inf(-1)).IsInf())
	require.True(t, Decimal64FromFloat64(math.Inf(-1)).Signbit())
	require.True(t, Decimal64FromFloat64(math.Copysign(0, -1)).Signbit())
	require.True(t, Decimal32FromFloat64(1e-320).IsZero())
	require.True(t, Decimal32FromFloat64(1e300).IsInf())
	require.Equal(t, "1e+300", FromFloat64[Decimal64](1e300).String())

	require.Equal(t, 0.1, MustParse64("0.1").Float64())
	require.Equal(t, float32(0.1), Float32(MustParse32("0.1")))
	require.Equal(t, -2.5, Float64(MustParse128("-2.5")))
	require.True(t, math.IsInf(MustParse128("1e400").Float64(), 1))
	require.Equal(t, 0.0, MustParse128("1e-400").Float64())
	require.True(t, math.Signbit(MustParse32("-0").Float64()))
	require.True(t, math.IsNaN(NaN[Decimal32]().Float64()))
	require.True(t, math.IsInf(Inf[Decimal32](true).Float64(), -1))

	properties := gopter.NewProperties(nil)
	properties.Property("float64 round-trips through Decimal128", prop.ForAll(
		func(f float64) bool {
			return Decimal128FromFloat64(f).Float64() == f
		},
		gen.Float64(),
	))
	properties.TestingRun(t)
}

func TestRoundingModeNames(t *testing.T) {
	for m := ToNearestEven; m <= ToPositiveInf; m++ {
		p, err := ParseRoundingMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, p)
	}
	m, err := ParseRoundingMode("tonearesteven")
	require.NoError(t, err)
	require.Equal(t, ToNearestEven, m)
	_, err = ParseRoundingMode("half-up")
	require.True(t, InvalidError.Has(err))
	require.Equal(t, "RoundingMode(42)", RoundingMode(42).String())
	require.Equal(t, ToNearestAway, DefaultRoundingMode)
}
