package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "baryroot",
	Short: "Invert an interpolated lithium potential table",
	Long: `baryroot builds a barycentric rational interpolant through the tabulated
lithium potential and finds the energy that yields a given charge, once with
bisection and once with bracket-and-solve (TOMS748).

Run without a subcommand it behaves like "baryroot solve".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Logs go to stderr; stdout carries the results.
		logger = newLogger(logLevel, os.Stderr)
		slog.SetDefault(logger)
	},
	RunE: runSolve,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	addSolveFlags(rootCmd.Flags())
}

func newLogger(name string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch name {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	return slog.New(slog.NewJSONHandler(w, opts))
}
