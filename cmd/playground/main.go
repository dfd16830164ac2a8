// Command playground prints the demo pages for the asceticfp containers and
// signals. Each subcommand runs one page with values taken from config.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	cfg Config
	log *zap.Logger
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "playground: log level %q", level)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	zcfg.Encoding = "console"
	return zcfg.Build()
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	var cfgPath string

	root := &cobra.Command{
		Use:           "playground",
		Short:         "Run the functional playground pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.With(
				zap.String("run_id", ulid.Make().String()),
				zap.String("page", cmd.Name()),
			)
			a.log.Debug("config loaded", zap.Any("config", cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a config file (default ./playground.yaml)")

	root.AddCommand(
		newOptionalCmd(a),
		newWriterCmd(a),
		newResultCmd(a),
		newEitherCmd(a),
		newSignalCmd(a),
		newTimerCmd(a),
	)
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		cmd.PrintErrln(err)
		cancel()
		os.Exit(1)
	}
}
