package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/withdrawal-simulator/internal/cache"
	"github.com/rpgo/withdrawal-simulator/internal/calculation"
	"github.com/rpgo/withdrawal-simulator/internal/config"
	"github.com/rpgo/withdrawal-simulator/internal/domain"
	"github.com/rpgo/withdrawal-simulator/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wdsim",
		Short: "Perpetual withdrawal fund projection",
		Long: `wdsim projects a fund that grows at a fixed annual rate while paying out an
inflation-adjusted withdrawal every year.

It reports the year-by-year balance, the capital needed to sustain the
withdrawals forever, and the smallest capital that stays positive through
the simulated horizon.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(
		newSimulateCmd(),
		newServeCmd(),
		newMCPServerCmd(),
		newExampleConfigCmd(),
		newFormatsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// loadConfiguration reads --config when given, otherwise starts from the example defaults.
func loadConfiguration(cmd *cobra.Command) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return parser.CreateExampleConfiguration(), nil
	}
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the command logger on stderr; --log-level wins over the file setting.
func newLogger(cmd *cobra.Command, cfg *domain.Configuration) *slog.Logger {
	level := cfg.Logging.Level
	if flag, _ := cmd.Flags().GetString("log-level"); flag != "" {
		level = flag
	}
	return logging.NewLogger(level, cmd.ErrOrStderr())
}

// newEngine creates the memoized engine. A configured but unreachable redis
// falls back to the in-memory cache.
func newEngine(ctx context.Context, cfg *domain.Configuration, logger *slog.Logger) *calculation.MemoizedEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(calculation.NewSlogLogger(logger))

	var store cache.Store = cache.NewMemoryStore(cfg.Cache.MaxEntries)
	if cfg.Cache.RedisAddr != "" {
		rs, err := cache.NewRedisStore(ctx, cfg.Cache.RedisAddr, cfg.Cache.TTL)
		if err != nil {
			logger.Warn("redis cache unavailable, using memory cache", "addr", cfg.Cache.RedisAddr, "error", err)
		} else {
			logger.Info("using redis projection cache", "addr", cfg.Cache.RedisAddr)
			store = rs
		}
	}
	return calculation.NewMemoizedEngine(engine, store)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wdsim version %s\n", version)
		},
	}
}
