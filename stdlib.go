// This file mirrors types and constants from math/big and strconv.

package decfast

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// A form value describes the internal representation.
type form byte

// The form value order is relevant - do not change!
const (
	zero form = iota
	finite
	inf
	nan
	snan
)

// RoundingMode determines how a decimal value is rounded to the precision of
// its class.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

// DefaultRoundingMode is the rounding mode used by operations that do not take
// an explicit one.
const DefaultRoundingMode = ToNearestAway

var modeNames = [...]string{
	ToNearestEven: "ToNearestEven",
	ToNearestAway: "ToNearestAway",
	ToZero:        "ToZero",
	AwayFromZero:  "AwayFromZero",
	ToNegativeInf: "ToNegativeInf",
	ToPositiveInf: "ToPositiveInf",
}

func (m RoundingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
}

// ParseRoundingMode returns the rounding mode with the given name. Names are
// matched case-insensitively.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for m, n := range modeNames {
		if strings.EqualFold(s, n) {
			return RoundingMode(m), nil
		}
	}
	return 0, InvalidError.New("unknown rounding mode %q", s)
}

// roundUp reports whether a coefficient truncated to its rounding digit rd
// must be incremented. sticky is set if any digit past rd is nonzero, odd is
// the parity of the truncated coefficient.
func (m RoundingMode) roundUp(neg, odd bool, rd uint, sticky bool) bool {
	if rd == 0 && !sticky {
		return false
	}
	switch m {
	case ToNearestEven:
		return rd > 5 || rd == 5 && (sticky || odd)
	case ToNearestAway:
		return rd >= 5
	case ToZero:
		return false
	case AwayFromZero:
		return true
	case ToNegativeInf:
		return neg
	case ToPositiveInf:
		return !neg
	}
	panic("unreachable")
}

// Error classes.
var (
	// Error is the class of binary decoding errors.
	Error = errs.Class("decfast")
	// InvalidError signals a NaN operand where a number is required, or a
	// malformed input.
	InvalidError = errs.Class("invalid operation")
	// RangeError signals a finite value outside the range of the target type.
	RangeError = errs.Class("out of range")
)

// A ParseError describes a malformed input. The Parse functions return it
// wrapped in an InvalidError.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return "decfast: parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// scan errors
var (
	errNoDigits = errors.New("number has no digits")
	errInvalSep = errors.New("'_' must separate successive digits")
)

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

func scanExponent(r io.ByteScanner, sepOk bool) (exp int64, err error) {
	// one char look-ahead
	ch, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = nil
		}
		return 0, err
	}

	if ch != 'e' && ch != 'E' {
		_ = r.UnreadByte() // ch does not belong to exponent anymore
		return 0, nil
	}

	// sign
	var digits []byte
	ch, err = r.ReadByte()
	if err == nil && (ch == '+' || ch == '-') {
		if ch == '-' {
			digits = append(digits, '-')
		}
		ch, err = r.ReadByte()
	}

	// prev encodes the previously seen char: it is one
	// of '_', '0' (a digit), or '.' (anything else). A
	// valid separator '_' may only occur after a digit.
	prev := '.'
	invalSep := false

	// exponent value
	hasDigits := false
	for err == nil {
		if '0' <= ch && ch <= '9' {
			digits = append(digits, ch)
			prev = '0'
			hasDigits = true
		} else if ch == '_' && sepOk {
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
		} else {
			_ = r.UnreadByte() // ch does not belong to number anymore
			break
		}
		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}
	if err == nil && !hasDigits {
		err = errNoDigits
	}
	if err == nil {
		exp, err = strconv.ParseInt(string(digits), 10, 64)
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			// saturated exponents still overflow or flush the value
			err = nil
		}
	}
	// other errors take precedence over invalid separators
	if err == nil && (invalSep || prev == '_') {
		err = errInvalSep
	}

	return
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
