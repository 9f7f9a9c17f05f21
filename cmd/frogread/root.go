package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pondworks-lib/frogread"
	"github.com/pondworks-lib/frogread/core"
	"github.com/pondworks-lib/frogread/reader"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type options struct {
	tick     time.Duration
	logFile  string
	logLevel string
}

func (o options) validate() error {
	if o.tick <= 0 {
		return fmt.Errorf("--tick-rate must be positive, got %v", o.tick)
	}
	if _, err := core.ParseLevel(o.logLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

// logger opens the log sink. Without --log-file nothing is logged, since
// the terminal is in use. The returned closer is never nil.
func (o options) logger() (core.Logger, io.Closer, error) {
	if o.logFile == "" {
		return core.NopLogger(), io.NopCloser(nil), nil
	}
	level, err := core.ParseLevel(o.logLevel)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return core.NewSlogLogger(f, level), f, nil
}

func newRootCmd() *cobra.Command {
	opts := options{tick: reader.DefaultTick, logLevel: core.LevelInfo}

	cmd := &cobra.Command{
		Use:   "frogread",
		Short: "Show rotating text in the terminal",
		Long: `frogread reads one line from standard input, then takes over the terminal
and shows a line of text whose lead-in changes every tick.

Keys: space pauses and resumes, q quits, any other key advances.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if err := opts.validate(); err != nil {
				return err
			}
			log, closer, err := opts.logger()
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, closer.Close()) }()

			return frogread.Run(cmd.Context(), os.Stdin, os.Stdout, frogread.Config{
				Tick: opts.tick,
				Log:  log,
			})
		},
	}

	cmd.Flags().DurationVar(&opts.tick, "tick-rate", opts.tick, "how long each frame waits for a key")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "append JSON logs to this file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level: debug, info, warn or error")

	cmd.AddCommand(newCheckCmd(), newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "frogread %s\n", version)
		},
	}
}
