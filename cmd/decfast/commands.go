// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/db47h/decfast"
	"github.com/db47h/decfast/context"
	"github.com/db47h/decfast/math"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

var evalError = errs.Class("eval")

// operator computes a result for eval. The returned string is the printed
// result.
type operator[D decfast.Decimal] func(ctx *context.Context[D], x, y D) string

func operators[D decfast.Decimal]() map[string]operator[D] {
	return map[string]operator[D]{
		"+": func(ctx *context.Context[D], x, y D) string { return ctx.Add(x, y).String() },
		"-": func(ctx *context.Context[D], x, y D) string { return ctx.Sub(x, y).String() },
		"*": func(ctx *context.Context[D], x, y D) string { return ctx.Mul(x, y).String() },
		"/": func(ctx *context.Context[D], x, y D) string { return ctx.Quo(x, y).String() },
		"%": func(ctx *context.Context[D], x, y D) string { return ctx.Rem(x, y).String() },
		"cmp": func(ctx *context.Context[D], x, y D) string {
			if x.IsNaN() || y.IsNaN() {
				ctx.Compare(x, y)
				return "unordered"
			}
			return fmt.Sprint(ctx.Compare(x, y))
		},
		"quantize": func(ctx *context.Context[D], x, y D) string {
			return math.QuantizeMode(x, y, ctx.Mode()).String()
		},
	}
}

func operatorNames() string {
	var names []string
	for k := range operators[decfast.Decimal64]() {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

// dispatch calls the instance of fn matching the configured class.
func dispatch(cfg *config, fn32 func() error, fn64 func() error, fn128 func() error) error {
	switch cfg.class {
	case 32:
		return fn32()
	case 128:
		return fn128()
	}
	return fn64()
}

func parse[D decfast.Decimal](cfg *config, s string) (D, error) {
	x, err := decfast.ParseMode[D](s, decfast.RoundingMode(cfg.mode))
	if err != nil {
		cfg.logger.Error("parse failure", zap.String("input", s), zap.Error(err))
	}
	return x, err
}

func newEvalCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "eval LHS OP RHS",
		Short: "evaluate a binary operation",
		Long: `
Evaluate LHS OP RHS in the selected decimal class and rounding mode, and print
the result. OP is one of: ` + operatorNames() + `.
Exceptional conditions are reported on the standard error.
`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			return dispatch(cfg,
				func() error { return eval[decfast.Decimal32](cfg, out, errOut, args) },
				func() error { return eval[decfast.Decimal64](cfg, out, errOut, args) },
				func() error { return eval[decfast.Decimal128](cfg, out, errOut, args) },
			)
		},
	}
}

func eval[D decfast.Decimal](cfg *config, out, errOut io.Writer, args []string) error {
	op, ok := operators[D]()[args[1]]
	if !ok {
		return evalError.New("unknown operator %q", args[1])
	}
	x, err := parse[D](cfg, args[0])
	if err != nil {
		return err
	}
	y, err := parse[D](cfg, args[2])
	if err != nil {
		return err
	}
	ctx := context.New[D](decfast.RoundingMode(cfg.mode)).SetTraps(0)
	res := op(ctx, x, y)
	cfg.logger.Debug("eval",
		zap.Int("class", int(cfg.class)),
		zap.Stringer("mode", ctx.Mode()),
		zap.Stringer("lhs", x),
		zap.String("op", args[1]),
		zap.Stringer("rhs", y),
		zap.String("result", res),
		zap.Stringer("flags", ctx.Flags()))
	if f := ctx.Flags(); f != 0 {
		fmt.Fprintln(errOut, "condition:", f)
	}
	_, err = fmt.Fprintln(out, res)
	return err
}

func newLimitsCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: "print the numeric limits of a decimal class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return dispatch(cfg,
				func() error { return limits[decfast.Decimal32](out) },
				func() error { return limits[decfast.Decimal64](out) },
				func() error { return limits[decfast.Decimal128](out) },
			)
		},
	}
}

func limits[D decfast.Decimal](out io.Writer) error {
	l := decfast.LimitsOf[D]()
	_, err := fmt.Fprintf(out,
		"digits10      %d\nmin_exponent  %d\nmax_exponent  %d\nmax           %v\nmin           %v\nlowest        %v\nepsilon       %v\nround_error   %v\ndenorm_min    %v\n",
		l.Digits10, l.MinExponent10, l.MaxExponent10, l.Max, l.Min, l.Lowest, l.Epsilon, l.RoundError, l.DenormMin)
	return err
}

func newClassifyCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "classify VALUE",
		Short: "print the classification of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return dispatch(cfg,
				func() error { return classify[decfast.Decimal32](cfg, out, args[0]) },
				func() error { return classify[decfast.Decimal64](cfg, out, args[0]) },
				func() error { return classify[decfast.Decimal128](cfg, out, args[0]) },
			)
		},
	}
}

func classify[D decfast.Decimal](cfg *config, out io.Writer, s string) error {
	x, err := parse[D](cfg, s)
	if err != nil {
		return err
	}
	sig, exp, neg := decfast.Unpack(x)
	cfg.logger.Debug("classify", zap.String("input", s), zap.Stringer("value", x))
	_, err = fmt.Fprintf(out,
		"value      %v\nfinite     %t\ninf        %t\nnan        %t\nsnan       %t\nnormal     %t\nzero       %t\nsignbit    %t\ntriple     (%v, %d, %t)\n",
		x, x.IsFinite(), x.IsInf(), x.IsNaN(), x.IsSignalingNaN(), x.IsNormal(), x.IsZero(), x.Signbit(), sig, exp, neg)
	return err
}
