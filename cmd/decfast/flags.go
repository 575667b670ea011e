// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/db47h/decfast"
	"github.com/spf13/pflag"
	"github.com/zeebo/errs"
)

// flagError is the class of invalid flag values.
var flagError = errs.Class("flag")

const defaultMode = decfast.DefaultRoundingMode

// classValue is a decimal class width. It implements pflag.Value.
type classValue int

var _ pflag.Value = (*classValue)(nil)

func (c *classValue) String() string { return strconv.Itoa(int(*c)) }

// Set implements the pflag.Value interface.
func (c *classValue) Set(s string) error {
	switch s {
	case "32", "64", "128":
		n, _ := strconv.Atoi(s)
		*c = classValue(n)
		return nil
	}
	return flagError.New("invalid class %q, want 32, 64 or 128", s)
}

// Type implements the pflag.Value interface.
func (c *classValue) Type() string { return "class" }

// modeValue is a rounding mode. It implements pflag.Value.
type modeValue decfast.RoundingMode

var _ pflag.Value = (*modeValue)(nil)

func (m *modeValue) String() string { return decfast.RoundingMode(*m).String() }

// Set implements the pflag.Value interface.
func (m *modeValue) Set(s string) error {
	mode, err := decfast.ParseRoundingMode(s)
	if err != nil {
		return flagError.Wrap(err)
	}
	*m = modeValue(mode)
	return nil
}

// Type implements the pflag.Value interface.
func (m *modeValue) Type() string { return "mode" }
