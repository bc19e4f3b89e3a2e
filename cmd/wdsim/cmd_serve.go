package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rpgo/withdrawal-simulator/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection HTTP API",
		Long: `Serve the projection API:

  POST /api/v1/simulate   JSON parameters, JSON result
  GET  /api/v1/simulate   free-text query parameters, JSON result
  GET  /api/v1/report     rendered report (?format=html|pdf|csv|json|console)
  GET  /healthz           liveness probe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
			}
			if cmd.Flags().Changed("redis-addr") {
				cfg.Cache.RedisAddr, _ = cmd.Flags().GetString("redis-addr")
			}

			logger := newLogger(cmd, cfg)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			engine := newEngine(ctx, cfg, logger)
			defer engine.Close()

			srv := server.New(engine, server.Options{
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
				Logger:       logger,
			})
			return srv.Run(ctx, cfg.Server.Addr)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
	cmd.Flags().String("redis-addr", "", "Redis address for the projection cache (host:port)")
	return cmd
}
