// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/db47h/decfast"

// Floor returns the greatest integer value less than or equal to x.
//
// This function is a proxy for decfast.Floor(x).
func Floor[D decfast.Decimal](x D) D {
	return decfast.Floor(x)
}

// Ceil returns the least integer value greater than or equal to x.
//
// This function is a proxy for decfast.Ceil(x).
func Ceil[D decfast.Decimal](x D) D {
	return decfast.Ceil(x)
}

// Trunc returns the integer value of x.
//
// This function is a proxy for decfast.Trunc(x).
func Trunc[D decfast.Decimal](x D) D {
	return decfast.Trunc(x)
}

// Round returns the nearest integer value, rounding half away from zero.
func Round[D decfast.Decimal](x D) D {
	return decfast.RoundToIntegral(x, decfast.ToNearestAway)
}

// RoundToEven returns the nearest integer value, rounding ties to even.
func RoundToEven[D decfast.Decimal](x D) D {
	return decfast.RoundToIntegral(x, decfast.ToNearestEven)
}

// Rem returns the remainder of x/y. The magnitude of the result is less than
// y and its sign agrees with that of x.
//
// This function is a proxy for decfast.Rem(x, y).
func Rem[D decfast.Decimal](x, y D) D {
	return decfast.Rem(x, y)
}
