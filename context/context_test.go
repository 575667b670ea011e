// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import (
	"errors"
	"testing"

	"github.com/db47h/decfast"
	"github.com/db47h/decfast/uint128"
	"github.com/stretchr/testify/require"
)

func TestConditionString(t *testing.T) {
	require.Equal(t, "no condition", Condition(0).String())
	require.Equal(t, "overflow", Overflow.String())
	require.Equal(t, "invalid operation, division by zero", DefaultTraps.String())
	require.Equal(t, "underflow", Underflow.Error())
}

func TestConditions(t *testing.T) {
	d := decfast.MustParse32
	inf := decfast.Inf[decfast.Decimal32](false)
	td := []struct {
		name string
		op   func(c *Context[decfast.Decimal32]) decfast.Decimal32
		want string
		cond Condition
	}{
		{"add", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Add(d("1"), d("2")) }, "3", 0},
		{"cancel", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Sub(d("1e-95"), d("1e-95")) }, "0", 0},
		{"add overflow", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Add(d("9.999999e96"), d("1e96")) }, "+Inf", Overflow},
		{"inf-inf", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Sub(inf, inf) }, "NaN", InvalidOperation},
		{"inf+1", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Add(inf, d("1")) }, "+Inf", 0},
		{"mul overflow", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Mul(d("1e50"), d("-1e50")) }, "-Inf", Overflow},
		{"mul underflow", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Mul(d("1e-50"), d("1e-50")) }, "0", Underflow},
		{"mul zero", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Mul(d("0"), d("1e-50")) }, "0", 0},
		{"0*inf", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Mul(d("0"), inf) }, "NaN", InvalidOperation},
		{"quo", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Quo(d("1"), d("4")) }, "0.25", 0},
		{"quo by zero", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Quo(d("-1"), d("0")) }, "-Inf", DivisionByZero},
		{"0/0", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Quo(d("0"), d("0")) }, "NaN", InvalidOperation},
		{"quo inf", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Quo(d("1"), inf) }, "0", 0},
		{"quo underflow", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Quo(d("1e-90"), d("1e90")) }, "0", Underflow},
		{"rem", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Rem(d("7"), d("3")) }, "1", 0},
		{"rem by zero", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Rem(d("7"), d("0")) }, "NaN", InvalidOperation},
		{"nan", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Add(d("nan"), d("1")) }, "NaN", 0},
		{"snan", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Add(d("snan"), d("1")) }, "NaN", InvalidOperation},
		{"neg snan", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Neg(d("snan")) }, "sNaN", InvalidOperation},
		{"abs", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.Abs(d("-2")) }, "2", 0},
		{"round", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.RoundToIntegral(d("2.5")) }, "2", 0},
		{"new overflow", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.New(uint128.From64(1), 97, false) }, "+Inf", Overflow},
		{"new underflow", func(c *Context[decfast.Decimal32]) decfast.Decimal32 { return c.New(uint128.From64(1), -102, false) }, "0", Underflow},
	}
	for _, tc := range td {
		t.Run(tc.name, func(t *testing.T) {
			c := New[decfast.Decimal32](decfast.ToNearestEven).SetTraps(0)
			require.Equal(t, tc.want, tc.op(c).String())
			require.Equal(t, tc.cond, c.Flags())
			require.NoError(t, c.Err())
		})
	}
}

func TestTraps(t *testing.T) {
	c := New[decfast.Decimal64](decfast.ToNearestAway)
	require.Equal(t, DefaultTraps, c.Traps())
	require.Equal(t, decfast.ToNearestAway, c.Mode())

	one := c.NewInt64(1)
	x := c.Quo(one, c.NewInt64(0))
	require.True(t, x.IsInf())
	// further operations are no-ops
	require.True(t, c.Add(one, one).IsNaN())
	err := c.Err()
	require.Error(t, err)
	require.True(t, Error.Has(err))
	var cond Condition
	require.True(t, errors.As(err, &cond))
	require.Equal(t, DivisionByZero, cond)
	require.Equal(t, "context: division by zero", err.Error())
	require.NoError(t, c.Err())

	// untrapped conditions only raise flags
	require.Equal(t, "2", c.Add(one, one).String())
	c.Mul(decfast.MustParse64("1e300"), decfast.MustParse64("1e300"))
	require.Equal(t, DivisionByZero|Overflow, c.Flags())
	require.NoError(t, c.Err())
	require.Equal(t, Condition(0), c.ClearFlags().Flags())

	c.SetTraps(Overflow).SetMode(decfast.ToZero)
	x = c.Mul(decfast.MustParse64("1e300"), decfast.MustParse64("1e300"))
	require.Equal(t, "+Inf", x.String())
	require.True(t, Error.Has(c.Err()))
}

func TestParse(t *testing.T) {
	c := New[decfast.Decimal128](decfast.ToNearestEven)
	x, err := c.Parse("1.5")
	require.NoError(t, err)
	require.Equal(t, "1.5", x.String())

	_, err = c.Parse("1..5")
	require.True(t, decfast.InvalidError.Has(err))
	require.Equal(t, InvalidOperation, c.Flags())
	require.True(t, Error.Has(c.Err()))
}

func TestCompare(t *testing.T) {
	c := New[decfast.Decimal32](decfast.ToNearestEven).SetTraps(0)
	require.Equal(t, -1, c.Compare(decfast.MustParse32("1"), decfast.MustParse32("2")))
	require.Equal(t, Condition(0), c.Flags())
	c.Compare(decfast.NaN[decfast.Decimal32](), decfast.MustParse32("2"))
	require.Equal(t, InvalidOperation, c.Flags())
}
