// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements binary encoding/decoding of decimal values.

package decfast

import (
	"encoding/binary"

	"github.com/db47h/decfast/uint128"
)

// Binary codec version. Permits backward-compatible changes to the encoding.
const decimalBinaryVersion byte = 1

// sigBytes returns the size in bytes of an encoded significand.
func (c *class) sigBytes() int {
	switch c {
	case d32:
		return 4
	case d64:
		return 8
	}
	return 16
}

// marshal encodes x as a version byte, a form|neg byte and, for finite values,
// the unbiased exponent as a big-endian int32 followed by the big-endian
// significand.
func (c *class) marshal(x num) []byte {
	sz := 1 + 1 // version + form|neg (3+1 bits)
	if x.form == finite {
		sz += 4 + c.sigBytes()
	}
	buf := make([]byte, sz)

	buf[0] = decimalBinaryVersion
	b := byte(x.form&7) << 1
	if x.neg {
		b |= 1
	}
	buf[1] = b

	if x.form == finite {
		binary.BigEndian.PutUint32(buf[2:], uint32(int32(x.exp)))
		switch p := buf[6:]; len(p) {
		case 4:
			binary.BigEndian.PutUint32(p, uint32(x.sig.Lo()))
		case 8:
			binary.BigEndian.PutUint64(p, x.sig.Lo())
		default:
			binary.BigEndian.PutUint64(p, x.sig.Hi())
			binary.BigEndian.PutUint64(p[8:], x.sig.Lo())
		}
	}
	return buf
}

// unmarshal decodes a value encoded by marshal. The decoded value must be a
// normalized value of class c.
func (c *class) unmarshal(buf []byte) (num, error) {
	if len(buf) < 2 {
		return qNaN, Error.New("binary decoding: buffer too short")
	}
	if buf[0] != decimalBinaryVersion {
		return qNaN, Error.New("binary decoding: encoding version %d not supported", buf[0])
	}

	b := buf[1]
	x := num{form: form((b >> 1) & 7), neg: b&1 != 0}
	if x.form > snan {
		return qNaN, Error.New("binary decoding: invalid form %d", x.form)
	}
	if x.form != finite {
		if len(buf) != 2 {
			return qNaN, Error.New("binary decoding: invalid length %d", len(buf))
		}
		return x, nil
	}

	if len(buf) != 6+c.sigBytes() {
		return qNaN, Error.New("binary decoding: invalid length %d", len(buf))
	}
	x.exp = int(int32(binary.BigEndian.Uint32(buf[2:])))
	switch p := buf[6:]; len(p) {
	case 4:
		x.sig = uint128.From64(uint64(binary.BigEndian.Uint32(p)))
	case 8:
		x.sig = uint128.From64(binary.BigEndian.Uint64(p))
	default:
		x.sig = uint128.New(binary.BigEndian.Uint64(p), binary.BigEndian.Uint64(p[8:]))
	}

	if d := int(mag128(x.sig)); d != c.prec {
		return qNaN, Error.New("binary decoding: significand %v has %d digits", x.sig, d)
	}
	if e := x.exp + c.bias; e < 0 || e > c.maxExp {
		return qNaN, Error.New("binary decoding: exponent %d out of range", x.exp)
	}
	return x, nil
}
