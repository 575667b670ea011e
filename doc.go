// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decfast implements fixed-size decimal floating-point arithmetic with
the precisions and exponent ranges of the IEEE 754-2008 decimal32, decimal64
and decimal128 formats.

Three value types are provided:

	Decimal32     7 digits, exponents in [-95, 96]
	Decimal64    16 digits, exponents in [-383, 384]
	Decimal128   34 digits, exponents in [-6143, 6144]

Values are not stored in the IEEE interchange encodings. Each value keeps a
binary coefficient, a biased exponent and a sign in separate fields, and every
finite nonzero coefficient is scaled to exactly the full precision of its type.
A value therefore has a single representation: 1, 1.0 and 1.000 are the same
value, and the == operator may be used on values that are not NaN.

The zero value of each type is 0 and is ready to use:

	var x decfast.Decimal64 // x == 0

Values are immutable. Operations are methods that take the operands by value
and return a new result:

	x := decfast.MustParse64("2.7")
	y := decfast.MustParse64("0.3")
	z := x.Add(y) // 3

Operations round to the precision of their type with DefaultRoundingMode,
which is ToNearestAway. Each rounding operation has a Mode variant taking an
explicit rounding mode:

	z := x.QuoMode(y, decfast.ToNearestEven)

There is no global rounding state. The context package provides a Context
that carries a rounding mode and records exceptional conditions.

Arithmetic never panics and never returns an error. Results that cannot be
represented are mapped to special values: overflows produce ±Inf, underflows
produce +0, and invalid operations such as Inf-Inf, 0*Inf or 0/0 produce NaN.
NaN operands propagate. There are no subnormal values.

Generic functions operate on any of the three types through the Decimal
constraint, and mix decimal values with native integers:

	z := decfast.AddInt(x, 42)
	n, err := decfast.ToInt[int32](z)

Comparisons with integers through CmpInt and its siblings are exact; the
integer is never rounded to the precision of the decimal type.

Text conversion supports the following formats for the Text method:

	'e'	-d.dddde±dd, scientific notation
	'E'	-d.ddddE±dd, scientific notation
	'f'	-ddddd.dddd, no exponent
	'g'	like 'f' for moderate exponents, 'e' otherwise
	'G'	like 'g' with 'E' for the exponent

String is Text('g', -1). The fmt package verbs 'e', 'E', 'f', 'F', 'g', 'G',
's' and 'v' are supported along with width, precision and the '+', ' ', '-'
and '0' flags.
*/
package decfast
