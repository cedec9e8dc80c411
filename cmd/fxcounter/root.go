package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// verbose switches the logger to debug level.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fxcounter",
	Short: "Foreign currency exchange counter",
	Long: `fxcounter serves the point-of-sale form used at a money changer counter:
customer details, the currencies bought and the printable receipt.

Running it without a subcommand starts the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
