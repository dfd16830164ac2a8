package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krew-solutions/ascetic-fp-go/asceticfp/arith"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/either"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/option"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/result"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/signals"
)

func newOptionalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "optional",
		Short: "Chain divisions through Option",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg.Optional
			steps := make([]func(float64) option.Option[float64], 0, len(c.Divisors))
			expr := []string{fmt.Sprint(c.Start)}
			for _, by := range c.Divisors {
				steps = append(steps, arith.Divide(by))
				expr = append(expr, fmt.Sprintf("divide(%v)", by))
			}
			got := option.Chain(option.Some(c.Start), steps...)
			a.log.Debug("optional chain", zap.Int("steps", len(steps)), zap.Bool("some", got.IsSome()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", strings.Join(expr, " >>- "), got)
			return nil
		},
	}
}

func newWriterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "writer",
		Short: "Accumulate a log through Writer",
		RunE: func(cmd *cobra.Command, args []string) error {
			value, log := arith.Run(a.cfg.Writer.Start,
				arith.Add(3), arith.Multiply(5), arith.Subtract(6), arith.DivideBy(7),
			).Run()
			fmt.Fprintf(cmd.OutOrStdout(), "value: %v\nlog: %q\n", value, log)
			return nil
		},
	}
}

func newResultCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "result",
		Short: "Short-circuit and apply through Result",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ok := result.Bind(result.Wrap(20.0), arith.SafeDivide(4))
			failed := result.Bind(result.Bind(result.Wrap(20.0), arith.SafeDivide(0)), arith.SafeDivide(4))
			applied := result.Apply(result.Wrap(3), result.Wrap(func(v int) string {
				return strings.Repeat("*", v)
			}))
			fmt.Fprintln(out, ok)
			fmt.Fprintln(out, failed)
			fmt.Fprintln(out, applied)
			if failed.IsFailure() {
				a.log.Debug("result short-circuited", zap.Error(failed.Err()))
			}
			return nil
		},
	}
}

func newEitherCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "either",
		Short: "Carry a module error type through Either",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, by := range []float64{3, 0} {
				e := either.Bind(either.Wrap[*arith.Error](9.0), arith.CheckedDivide(by))
				line := either.Fold(e,
					func(err *arith.Error) string { return "error: " + err.Error() },
					func(v float64) string { return fmt.Sprintf("value: %v", v) },
				)
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newSignalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "signal",
		Short: "Push values through a mapped Signal",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printer := signals.Sink(
				func(v int) { fmt.Fprintln(out, v) },
				func(err error) { fmt.Fprintln(out, "error:", err) },
			)

			signals.Literal(5).Subscribe(printer)

			emitter, s := signals.Pipe[int]()
			signals.Map(signals.Map(s, func(x int) int { return x + 1 }), func(x int) int { return x * 3 }).
				Subscribe(printer)
			for _, v := range a.cfg.Timer.Values {
				emitter.SendNext(v)
			}
			return nil
		},
	}
}
