// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string and float conversions.

package decfast

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/db47h/decfast/uint128"
)

// maxScanDigits is the number of significant digits kept by scan. Further
// digits only contribute to the sticky bit.
const maxScanDigits = 38

// parse converts s to a value of class c. The entire string must be consumed.
func (c *class) parse(s string, mode RoundingMode) (num, error) {
	r := strings.NewReader(s)
	x, err := c.scan(r, mode)
	if err == nil {
		// entire string must have been consumed
		if ch, err2 := r.ReadByte(); err2 == nil {
			err = fmt.Errorf("expected end of string, found %q", ch)
		} else if err2 != io.EOF {
			err = err2
		}
	}
	if err != nil {
		return qNaN, InvalidError.Wrap(&ParseError{Input: s, Err: err})
	}
	return x, nil
}

// scan reads the longest prefix of r representing a number. The number must be
// of the form:
//
//	number    = [ sign ] ( float | "inf" | "infinity" | "nan" | "snan" ) .
//	sign      = "+" | "-" .
//	float     = mantissa [ exponent ] .
//	mantissa  = digits "." [ digits ] | digits | "." digits .
//	exponent  = ( "e" | "E" ) [ sign ] digits .
//	digits    = digit { [ "_" ] digit } .
//
// Special values are matched case-insensitively.
func (c *class) scan(r io.ByteScanner, mode RoundingMode) (num, error) {
	neg, err := scanSign(r)
	if err != nil {
		if err == io.EOF {
			err = errNoDigits
		}
		return qNaN, err
	}

	ch, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = errNoDigits
		}
		return qNaN, err
	}
	_ = r.UnreadByte()
	if 'a' <= ch|0x20 && ch|0x20 <= 'z' {
		return scanSpecial(r, neg)
	}

	sig, exp, sticky, err := scanMant(r)
	if err != nil {
		return qNaN, err
	}
	e, err := scanExponent(r, true)
	if err != nil {
		return qNaN, err
	}
	switch {
	case e > 2*expClamp:
		e = 2 * expClamp
	case e < -2*expClamp:
		e = -2 * expClamp
	}
	if sig.IsZero() {
		return num{form: zero, neg: neg}, nil
	}
	return c.make(sig, exp+int(e), neg, sticky, mode), nil
}

func scanSpecial(r io.ByteScanner, neg bool) (num, error) {
	var word []byte
	for {
		ch, err := r.ReadByte()
		if err != nil {
			break
		}
		if ch|0x20 < 'a' || ch|0x20 > 'z' {
			_ = r.UnreadByte()
			break
		}
		word = append(word, ch|0x20)
	}
	switch string(word) {
	case "inf", "infinity":
		return infOf(neg), nil
	case "nan":
		return num{form: nan, neg: neg}, nil
	case "snan":
		return num{form: snan, neg: neg}, nil
	}
	return qNaN, fmt.Errorf("unknown value %q", word)
}

// scanMant reads a decimal mantissa. It returns its leading significant
// digits, the exponent of the last digit kept and a sticky bit set if any
// dropped digit is nonzero.
func scanMant(r io.ByteScanner) (sig uint128.Uint128, exp int, sticky bool, err error) {
	// prev encodes the previously seen char: it is one
	// of '_', '0' (a digit), or '.' (anything else). A
	// valid separator '_' may only occur after a digit.
	prev := '.'
	invalSep := false

	count := 0 // number of digits
	nd := 0    // number of significant digits kept
	frac := false

	ch, err := r.ReadByte()
loop:
	for err == nil {
		switch {
		case ch == '.' && !frac:
			frac = true
			if prev == '_' {
				invalSep = true
			}
			prev = '.'
		case ch == '_':
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
		case '0' <= ch && ch <= '9':
			prev = '0'
			count++
			d := uint64(ch - '0')
			switch {
			case nd == 0 && d == 0:
				// leading zero
				if frac {
					exp--
				}
			case nd < maxScanDigits:
				sig = sig.Mul64(10).Add64(d)
				nd++
				if frac {
					exp--
				}
			default:
				sticky = sticky || d != 0
				if !frac {
					exp++
				}
			}
		default:
			err = r.UnreadByte() // ch does not belong to number anymore
			break loop
		}
		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}
	// other errors take precedence over invalid separators
	if err == nil && (invalSep || prev == '_') {
		err = errInvalSep
	}
	if err == nil && count == 0 {
		err = errNoDigits
	}
	return
}

// text formats x according to format and prec:
//
//	'e'	-d.dddde±dd, decimal exponent
//	'E'	-d.ddddE±dd, decimal exponent
//	'f'	-ddddd.dddd, no exponent
//	'g'	like 'f' for values whose integer part fits in the class precision
//	    and exponents greater than -7, like 'e' otherwise
//	'G'	like 'g' with 'E' for the exponent
//
// The precision prec is the number of digits following the decimal point for
// 'e', 'E', 'f' and the number of significant digits for 'g', 'G'. A negative
// prec selects the smallest number of digits that represent x exactly.
// Special values are formatted as "+Inf", "-Inf", "NaN" and "sNaN".
func (c *class) text(x num, format byte, prec int) string {
	return string(c.append(make([]byte, 0, 2*c.prec), x, format, prec))
}

func (c *class) append(buf []byte, x num, format byte, prec int) []byte {
	switch x.form {
	case nan:
		return append(buf, "NaN"...)
	case snan:
		return append(buf, "sNaN"...)
	case inf:
		if x.neg {
			return append(buf, "-Inf"...)
		}
		return append(buf, "+Inf"...)
	}
	if x.neg {
		buf = append(buf, '-')
	}
	sig, exp := x.quantum()

	switch format {
	case 'e', 'E':
		return fmtE(buf, sig, exp, prec, format)
	case 'f', 'F':
		return fmtF(buf, sig, exp, prec)
	case 'g', 'G':
		if prec == 0 {
			prec = 1
		}
		nd := int(mag128(sig))
		if prec > 0 && nd > prec {
			sig, exp = roundDigits(sig, exp, prec)
			nd = int(mag128(sig))
		}
		if sci := exp + nd - 1; sig.IsZero() || sci > -7 && sci < c.prec && (prec < 0 || sci < prec) {
			return fmtF(buf, sig, exp, -1)
		}
		e := byte('e')
		if format == 'G' {
			e = 'E'
		}
		return fmtE(buf, sig, exp, -1, e)
	}
	buf = append(buf, '%', format)
	return buf
}

// roundDigits rounds sig * 10**exp to nd significant digits.
func roundDigits(sig uint128.Uint128, exp int, nd int) (uint128.Uint128, int) {
	d := int(mag128(sig))
	if d <= nd {
		return sig, exp
	}
	q, rd, sticky := shr10(sig, uint(d-nd))
	exp += d - nd
	if DefaultRoundingMode.roundUp(false, q.Lo()&1 != 0, rd, sticky) {
		q = q.Inc()
		if q == pow10x[nd] {
			q = pow10x[nd-1]
			exp++
		}
	}
	return q, exp
}

func fmtE(buf []byte, sig uint128.Uint128, exp int, prec int, format byte) []byte {
	if prec >= 0 && !sig.IsZero() {
		sig, exp = roundDigits(sig, exp, prec+1)
	}
	digits := sig.String()
	sci := exp + len(digits) - 1
	if sig.IsZero() {
		sci = 0
	}

	buf = append(buf, digits[0])
	frac := digits[1:]
	if prec < 0 {
		prec = len(frac)
	}
	if prec > 0 {
		buf = append(buf, '.')
		buf = append(buf, frac...)
		for i := len(frac); i < prec; i++ {
			buf = append(buf, '0')
		}
	}

	buf = append(buf, format)
	if sci < 0 {
		buf = append(buf, '-')
		sci = -sci
	} else {
		buf = append(buf, '+')
	}
	if sci < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendInt(buf, int64(sci), 10)
}

func fmtF(buf []byte, sig uint128.Uint128, exp int, prec int) []byte {
	if prec >= 0 && -exp > prec {
		k := -exp - prec
		var (
			q      uint128.Uint128
			rd     uint
			sticky = true
		)
		if k < len(pow10x) {
			q, rd, sticky = shr10(sig, uint(k))
		}
		if DefaultRoundingMode.roundUp(false, q.Lo()&1 != 0, rd, sticky) {
			q = q.Inc()
		}
		sig, exp = q, -prec
	}
	digits := sig.String()
	if sig.IsZero() {
		exp = 0
	}

	if exp >= 0 {
		buf = append(buf, digits...)
		for i := 0; i < exp; i++ {
			buf = append(buf, '0')
		}
		if prec > 0 {
			buf = append(buf, '.')
			for i := 0; i < prec; i++ {
				buf = append(buf, '0')
			}
		}
		return buf
	}

	// exp < 0
	if dp := len(digits) + exp; dp > 0 {
		buf = append(buf, digits[:dp]...)
		buf = append(buf, '.')
		buf = append(buf, digits[dp:]...)
	} else {
		buf = append(buf, '0', '.')
		for i := dp; i < 0; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digits...)
	}
	for i := -exp; i < prec; i++ {
		buf = append(buf, '0')
	}
	return buf
}

// format implements fmt.Formatter. It accepts the verbs 'e', 'E', 'f', 'F',
// 'g', 'G', 's' and 'v' and handles the precision, width and the '+', ' ',
// '-' and '0' flags.
func (c *class) format(x num, s fmt.State, verb rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = 6 // default precision for 'e', 'f'
	}

	switch verb {
	case 'e', 'E', 'f':
		// nothing to do
	case 'F':
		verb = 'f'
	case 'v', 's':
		// handle like 'g'
		verb = 'g'
		fallthrough
	case 'g', 'G':
		if !hasPrec {
			prec = -1
		}
	default:
		fmt.Fprintf(s, "%%!%c(decfast=%s)", verb, c.text(x, 'g', -1))
		return
	}

	buf := c.append(nil, x, byte(verb), prec)

	var sign string
	switch {
	case buf[0] == '-':
		sign = "-"
		buf = buf[1:]
	case buf[0] == '+':
		// +Inf
		sign = "+"
		if s.Flag(' ') {
			sign = " "
		}
		buf = buf[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(sign)+len(buf) {
		padding = width - len(sign) - len(buf)
	}

	switch {
	case s.Flag('0') && x.form < inf:
		// 0-padding on left
		writeMultiple(s, sign, 1)
		writeMultiple(s, "0", padding)
		_, _ = s.Write(buf)
	case s.Flag('-'):
		// padding on right
		writeMultiple(s, sign, 1)
		_, _ = s.Write(buf)
		writeMultiple(s, " ", padding)
	default:
		// padding on left
		writeMultiple(s, " ", padding)
		writeMultiple(s, sign, 1)
		_, _ = s.Write(buf)
	}
}

// write count copies of text to s
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			_, _ = s.Write(b)
		}
	}
}

// fromFloat converts f through its shortest decimal representation.
func (c *class) fromFloat(f float64, bitSize int) num {
	switch {
	case math.IsNaN(f):
		return qNaN
	case math.IsInf(f, 0):
		return infOf(f < 0)
	case f == 0:
		return num{form: zero, neg: math.Signbit(f)}
	}
	x, err := c.parse(strconv.FormatFloat(f, 'e', -1, bitSize), DefaultRoundingMode)
	if err != nil {
		panic("decfast: BUG: " + err.Error())
	}
	return x
}

// toFloat returns the float of the given bit size nearest to x.
func toFloat(c *class, x num, bitSize int) float64 {
	switch x.form {
	case nan, snan:
		return math.NaN()
	case inf:
		if x.neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case zero:
		if x.neg {
			return math.Copysign(0, -1)
		}
		return 0
	}
	// ParseFloat returns ±Inf or ±0 along with a range error when x is out of
	// range, which is the result we want.
	f, _ := strconv.ParseFloat(c.text(x, 'e', -1), bitSize)
	return f
}
