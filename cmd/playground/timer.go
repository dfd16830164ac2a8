package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krew-solutions/ascetic-fp-go/asceticfp/signals"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/signals/timer"
)

func newTimerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "timer",
		Short: "Drive a mapped Signal from a timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg.Timer
			out := cmd.OutOrStdout()

			emitter, s := signals.Pipe[int]()
			signals.Map(signals.Map(s, func(x int) int { return x + 1 }), func(x int) int { return x * 3 }).
				Observe(func(v int) {
					a.log.Debug("emitted", zap.Int("value", v))
					fmt.Fprintln(out, v)
				}, nil)

			schedule := make(timer.Schedule[int], 0, len(c.Values))
			for _, v := range c.Values {
				schedule = append(schedule, timer.After(c.Delay, v))
			}
			a.log.Info("timer started", zap.Duration("delay", c.Delay), zap.Int("steps", len(schedule)))
			return timer.Drive(cmd.Context(), schedule.For(emitter))
		},
	}
}
