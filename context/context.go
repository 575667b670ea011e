// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for decimal values.
//
// A Context carries a rounding mode and a set of status flags. Every
// operation performed through a Context rounds with its mode and raises the
// exceptional conditions it detects:
//
//    InvalidOperation  a NaN produced from non-NaN operands, or a signaling NaN operand
//    DivisionByZero    a finite nonzero value divided by zero
//    Overflow          a finite result too large for the class
//    Underflow         a nonzero result too small for the class
//
// Raised conditions accumulate in the flags until cleared. Conditions that are
// also enabled as traps record an error: further operations with the context
// return a quiet NaN until (*Context).Err is called to check for errors.
package context

import (
	"strings"

	"github.com/db47h/decfast"
	"github.com/db47h/decfast/uint128"
	"github.com/zeebo/errs"
)

// Error is the class of errors recorded by trapped conditions.
var Error = errs.Class("context")

// A Condition is a set of exceptional conditions.
type Condition uint32

// Exceptional conditions.
const (
	InvalidOperation Condition = 1 << iota
	DivisionByZero
	Overflow
	Underflow

	// DefaultTraps is the set of conditions trapped by new contexts.
	DefaultTraps = InvalidOperation | DivisionByZero
)

var conditionNames = [...]string{
	"invalid operation",
	"division by zero",
	"overflow",
	"underflow",
}

func (c Condition) String() string {
	if c == 0 {
		return "no condition"
	}
	var names []string
	for i, n := range conditionNames {
		if c&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, ", ")
}

// Error implements error. It returns the same as String.
func (c Condition) Error() string { return c.String() }

// A Context is a wrapper around decimal values of type D that facilitates
// management of rounding modes, status flags and error handling.
//
// The zero value is a context with rounding mode ToNearestEven and no traps.
type Context[D decfast.Decimal] struct {
	mode  decfast.RoundingMode
	traps Condition
	flags Condition
	err   error
}

// New creates a new context with the given rounding mode and DefaultTraps.
func New[D decfast.Decimal](mode decfast.RoundingMode) *Context[D] {
	return &Context[D]{mode: mode, traps: DefaultTraps}
}

// Mode returns the rounding mode of c.
func (c *Context[D]) Mode() decfast.RoundingMode {
	return c.mode
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context[D]) SetMode(mode decfast.RoundingMode) *Context[D] {
	c.mode = mode
	return c
}

// Traps returns the set of trapped conditions.
func (c *Context[D]) Traps() Condition {
	return c.traps
}

// SetTraps sets the set of conditions that record an error and returns c.
func (c *Context[D]) SetTraps(traps Condition) *Context[D] {
	c.traps = traps
	return c
}

// Flags returns the conditions raised since the last call to ClearFlags.
func (c *Context[D]) Flags() Condition {
	return c.flags
}

// ClearFlags clears the status flags and returns c.
func (c *Context[D]) ClearFlags() *Context[D] {
	c.flags = 0
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context[D]) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// raise records cond and returns z.
func (c *Context[D]) raise(cond Condition, z D) D {
	c.flags |= cond
	if t := cond & c.traps; t != 0 && c.err == nil {
		c.err = Error.Wrap(t)
	}
	return z
}

// New returns the value (-1)**neg * sig * 10**exp rounded with c's mode.
func (c *Context[D]) New(sig uint128.Uint128, exp int, neg bool) D {
	if c.err != nil {
		return decfast.NaN[D]()
	}
	z := decfast.NewMode[D](sig, exp, neg, c.mode)
	var cond Condition
	switch {
	case z.IsInf():
		cond = Overflow
	case z.IsZero() && !sig.IsZero():
		cond = Underflow
	}
	return c.raise(cond, z)
}

// NewInt64 returns v rounded with c's mode.
func (c *Context[D]) NewInt64(v int64) D {
	return c.New(uint128.IntFrom(v).Abs(), 0, v < 0)
}

// Parse returns the value of s rounded with c's mode. A malformed input
// raises InvalidOperation; the parse error itself is returned as well.
func (c *Context[D]) Parse(s string) (D, error) {
	if c.err != nil {
		return decfast.NaN[D](), nil
	}
	z, err := decfast.ParseMode[D](s, c.mode)
	if err != nil {
		return c.raise(InvalidOperation, z), err
	}
	return z, nil
}

// operand returns the conditions raised by a single operand.
func operand[D decfast.Decimal](x D) Condition {
	if x.IsSignalingNaN() {
		return InvalidOperation
	}
	return 0
}

// result returns the conditions raised by computing z from x and y, where
// exact reports whether a zero result is exact.
func result[D decfast.Decimal](x, y, z D, exact bool) Condition {
	cond := operand(x) | operand(y)
	switch {
	case x.IsNaN() || y.IsNaN():
	case z.IsNaN():
		cond |= InvalidOperation
	case z.IsInf() && x.IsFinite() && y.IsFinite():
		cond |= Overflow
	case z.IsZero() && !exact:
		cond |= Underflow
	}
	return cond
}

// Add returns the rounded sum x+y.
func (c *Context[D]) Add(x, y D) D {
	if c.err != nil {
		return decfast.NaN[D]()
	}
	z := decfast.AddMode(x, y, c.mode)
	return c.raise(result(x, y, z, decfast.Equal(x, decfast.Neg(y))), z)
}

// Sub returns the rounded difference x-y.
func (c *Context[D]) Sub(x, y D) D {
	if c.err != nil {
		return decfast.NaN[D]()
	}
	z := decfast.SubMode(x, y, c.mode)
	return c.raise(result(x, y, z, decfast.Equal(x, y)), z)
}

// Mul returns the rounded product x×y.
func (c *Context[D]) Mul(x, y D) D {
	if c.err != nil {
		return decfast.NaN[D]()
	}
	z := decfast.MulMode(x, y, c.mode)
	return c.raise(result(x, y, z, x.IsZero() || y.IsZero()), z)
}

// Quo returns the rounded quotient x/y.
func (c *Context[D]) Quo(x, y D) D {
	if c.err != nil {
		return decfast.NaN[D]()
	}
	z := decfast.QuoMode(x, y, c.mode)
	cond := result(x, y, z, x.IsZero() || y.IsInf())
	if y.IsZero() && x.IsFinite() && !x.IsZero() {
		cond = DivisionByZero
	}
	return c.raise(cond, z)
}

// Rem returns x - t×y where t is the quotient x/y truncated toward zero.
func (c *Context[D]) Rem(x, y D) D {
	if c.err != nil {
		return decfast.NaN[D]()
	}
	z := decfast.RemMode(x, y, c.mode)
	return c.raise(result(x, y, z, true), z)
}

// Neg returns x with its sign negated.
func (c *Context[D]) Neg(x D) D {
	if c.err != nil {
		return decfast.NaN[D]()
	}
	return c.raise(operand(x), decfast.Neg(x))
}

// Abs returns the absolute value of x.
func (c *Context[D]) Abs(x D) D {
	if c.err != nil {
		return decfast.NaN[D]()
	}
	return c.raise(operand(x), decfast.Abs(x))
}

// RoundToIntegral returns x rounded to an integer with c's mode.
func (c *Context[D]) RoundToIntegral(x D) D {
	if c.err != nil {
		return decfast.NaN[D]()
	}
	return c.raise(operand(x), decfast.RoundToIntegral(x, c.mode))
}

// Compare returns -1, 0 or +1 depending on x < y, x == y or x > y. Comparing a
// NaN raises InvalidOperation.
func (c *Context[D]) Compare(x, y D) int {
	if x.IsNaN() || y.IsNaN() {
		c.raise(InvalidOperation, x)
	}
	return decfast.Compare(x, y)
}
