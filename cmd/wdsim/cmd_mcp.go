package main

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/withdrawal-simulator/internal/mcp"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "mcp",
		Aliases: []string{"mcp-server"},
		Short:   "Run the MCP server over stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout exposing the
simulate_withdrawals tool. Logs go to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			server := mcp.NewServer(&mcp.Config{
				Name:    "wdsim",
				Version: version,
				Engine:  newEngine(cmd.Context(), cfg, logger),
				Logger:  logger,
			})
			defer server.Close()
			return server.Run(cmd.Context())
		},
	}
}
