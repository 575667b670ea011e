// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uint128

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("uint128")

const e19 = 10000000000000000000

// String returns the decimal representation of u.
func (u Uint128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	q, r := u.QuoRem64(e19)
	if q.hi == 0 {
		return strconv.FormatUint(q.lo, 10) + fmt.Sprintf("%019d", r)
	}
	q2, r2 := q.QuoRem64(e19)
	return strconv.FormatUint(q2.lo, 10) + fmt.Sprintf("%019d%019d", r2, r)
}

// Format implements fmt.Formatter. It accepts the verbs 'd', 'x', 'X', 'o',
// 'b', 's' and 'v' with the same flags as *big.Int.
func (u Uint128) Format(s fmt.State, ch rune) {
	switch ch {
	case 's', 'v':
		ch = 'd'
	}
	u.Big().Format(s, ch)
}

// Big returns u as a *big.Int.
func (u Uint128) Big() *big.Int {
	z := new(big.Int).SetUint64(u.hi)
	z.Lsh(z, 64)
	return z.Or(z, new(big.Int).SetUint64(u.lo))
}

// FromBig returns b as a Uint128. It reports false if b is negative or does
// not fit in 128 bits; the returned value is then the low 128 bits of |b|.
func FromBig(b *big.Int) (Uint128, bool) {
	t := new(big.Int).Abs(b)
	lo := new(big.Int).And(t, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
	hi := new(big.Int).Rsh(t, 64)
	ok := b.Sign() >= 0 && hi.IsUint64()
	return Uint128{lo: lo, hi: hi.Uint64()}, ok
}

// Float64 returns the float64 value nearest to u.
func (u Uint128) Float64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	f, _ := new(big.Float).SetInt(u.Big()).Float64()
	return f
}

// FromFloat64 returns the integer part of f. It reports false if f is NaN,
// negative or too large for a Uint128.
func FromFloat64(f float64) (Uint128, bool) {
	switch {
	case math.IsNaN(f) || f < 0 || f >= 0x1p128:
		return Uint128{}, false
	case f < 0x1p64:
		return Uint128{lo: uint64(f)}, true
	}
	b, _ := big.NewFloat(f).Int(nil)
	return FromBig(b)
}

// Parse parses the unsigned decimal integer s. Underscores are not allowed. A
// leading "0x", "0o" or "0b" prefix selects the base.
func Parse(s string) (Uint128, error) {
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return Uint128{}, Error.New("invalid syntax: %q", s)
	}
	base := 10
	digits := s
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base, digits = 16, s[2:]
		case 'o', 'O':
			base, digits = 8, s[2:]
		case 'b', 'B':
			base, digits = 2, s[2:]
		}
	}
	b, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Uint128{}, Error.New("invalid syntax: %q", s)
	}
	u, ok := FromBig(b)
	if !ok {
		return Uint128{}, Error.New("value out of range: %q", s)
	}
	return u, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Uint128 {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// MarshalText implements encoding.TextMarshaler.
func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Uint128) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
