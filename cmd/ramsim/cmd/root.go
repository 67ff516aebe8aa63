// Package cmd provides the command-line interface of ramsim.
package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/sarchlab/ramsim/config"
	"github.com/sarchlab/ramsim/logging"
	"github.com/sarchlab/ramsim/ram"
	"github.com/sarchlab/ramsim/ram/engine"
	"github.com/sarchlab/ramsim/scenario"
	"github.com/sarchlab/ramsim/sim/id"
	"github.com/sarchlab/ramsim/sim/timing"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ramsim",
		Short: "ramsim simulates installing and removing memory modules.",
		Long: `ramsim fabricates memory modules, pretends to install, diagnose ` +
			`and remove them with randomized delays, and prints what it is ` +
			`doing. No real hardware is touched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	config.RegisterFlags(root.Flags())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return executeCommand(ctx, rootCmd, os.Stderr)
}

// executeCommand runs root and logs the error it fails with to errOut.
func executeCommand(ctx context.Context, root *cobra.Command, errOut io.Writer) int {
	err := root.ExecuteContext(ctx)
	if err != nil {
		logger := logging.NewLogger(errOut, zerolog.InfoLevel)
		logger.Error().Err(err).Msg("ramsim failed")

		return 1
	}

	return 0
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(out, level)
	e := buildEngine(cfg)
	e.AcceptHook(logging.NewLogHook(logger))
	stats := attachTaskStats(e)

	atexit.Register(func() {
		shutdownOnExit(e, cfg.ShutdownGrace, logger)
	})

	demo := scenario.Demo{
		Engine:        e,
		Logger:        logger,
		Modules:       cfg.Modules,
		RandomModules: cfg.RandomModules,
		SelfTest:      cfg.SelfTest,
		Report:        cfg.Report,
		Snapshot:      cfg.Snapshot,
		Out:           out,
		Pause:         time.Duration(float64(scenario.DefaultPause) * cfg.DelayScale),
		ShutdownGrace: cfg.ShutdownGrace,
	}

	if err := demo.Run(ctx); err != nil {
		return err
	}

	stats.log(logger)

	return nil
}

func buildEngine(cfg config.Config) *engine.Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	jitter := timing.NewJitter(seed)

	idGenerator := id.NewIDGenerator()
	if cfg.ParallelIDs {
		idGenerator = id.NewParallelIDGenerator()
	}

	var degrader engine.Degrader = engine.NoDegradation{}
	if cfg.DegradeMax > 0 {
		degrader = engine.RandomDegradation{Max: cfg.DegradeMax}
	}

	b := engine.MakeBuilder().
		WithJitter(jitter).
		WithIDGenerator(idGenerator).
		WithDegrader(degrader).
		WithDelayScale(cfg.DelayScale)

	if tech := cfg.TechnologyOverride(); tech != "" {
		b = b.WithTechnology(tech)
	} else {
		b = b.WithDetector(ram.NewArchDetector(jitter))
	}

	return b.Build("RAMEngine")
}

// shutdownOnExit stops background tasks that are still running when the
// process exits early. After a completed demo it prints nothing.
func shutdownOnExit(e *engine.Engine, grace time.Duration, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Shutdown on exit failed")
	}
}
