// Command sc-probe runs the checks a confinement helper performs before it
// touches the system, and dies with a diagnostic when one fails.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sys/unix"

	"github.com/mickamy/scerr"
	"github.com/mickamy/scerr/internal/probe"
)

const program = "sc-probe"

var debug bool

func main() {
	os.Exit(run())
}

// run executes the command line. Failures never come back here: every check
// gets a nil error slot, so an unhandled error terminates the process.
func run() int {
	scerr.SetDefault(scerr.NewReporter(scerr.WithProgram(program)))

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		scerr.Die(err)
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           program,
		Short:         "Probe paths the way a confinement helper does",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !debug {
				return nil
			}
			logger, err := newConsoleLogger()
			if err != nil {
				return fmt.Errorf("cannot init logger: %w", err)
			}
			scerr.SetDefault(scerr.NewReporter(
				scerr.WithProgram(program),
				scerr.WithZapLogger(logger),
			))
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Log fatal errors with structured fields")

	root.AddCommand(
		&cobra.Command{
			Use:   "open PATH",
			Short: "Open PATH read-only without following symlinks",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				fd := probe.Open(args[0], nil)
				_ = unix.Close(fd)
				fmt.Fprintf(cmd.OutOrStdout(), "opened %s\n", args[0])
			},
		},
		&cobra.Command{
			Use:   "lock PATH",
			Short: "Take an exclusive non-blocking lock on PATH",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				fd := probe.Lock(args[0], nil)
				defer unix.Close(fd)
				fmt.Fprintf(cmd.OutOrStdout(), "locked %s\n", args[0])
			},
		},
		&cobra.Command{
			Use:   "check-dir PATH",
			Short: "Require PATH to be a directory owned by root",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				probe.CheckDir(args[0], nil)
				fmt.Fprintf(cmd.OutOrStdout(), "%s is a root-owned directory\n", args[0])
			},
		},
	)
	return root
}

// newConsoleLogger returns a console logger on stderr, keeping stdout for results.
func newConsoleLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
