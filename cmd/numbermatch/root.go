package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/numbermatch/internal/config"
)

var (
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "numbermatch",
	Short: "Solver for the Number Match tile-elimination puzzle",
	Long: `numbermatch searches a Number Match board exhaustively for the move
sequence clearing the most tiles, optionally across several "deal more
tiles" extensions, and reports a step-by-step solution.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
}

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(flagLogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}
