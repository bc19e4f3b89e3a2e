// Package mcp provides an MCP (Model Context Protocol) server exposing the withdrawal projection.
package mcp

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpgo/withdrawal-simulator/internal/calculation"
	"github.com/rpgo/withdrawal-simulator/internal/config"
)

// ToolSimulate is the name of the projection tool.
const ToolSimulate = "simulate_withdrawals"

// Server wraps the MCP SDK server and the projection engine.
type Server struct {
	server *sdk.Server
	engine *calculation.MemoizedEngine
	parser *config.InputParser
	logger *slog.Logger
}

// Config holds server configuration.
type Config struct {
	Name    string // Server name (e.g., "wdsim")
	Version string // Server version
	Engine  *calculation.MemoizedEngine
	Logger  *slog.Logger
}

// NewServer creates a new MCP server with the projection tool registered.
func NewServer(cfg *Config) *Server {
	engine := cfg.Engine
	if engine == nil {
		engine = calculation.NewMemoizedEngine(nil, nil)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &sdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, req *sdk.InitializedRequest) {
			logger.Debug("mcp client initialized")
		},
	})

	s := &Server{
		server: mcpServer,
		engine: engine,
		parser: config.NewInputParser(),
		logger: logger.With("component", "mcp"),
	}
	s.registerTools()
	return s
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	return s.server.Run(ctx, &sdk.StdioTransport{})
}

// Close releases the engine's cache store.
func (s *Server) Close() error {
	return s.engine.Close()
}
