// Package server exposes the projection engine over HTTP using fasthttp.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/rpgo/withdrawal-simulator/internal/calculation"
	"github.com/rpgo/withdrawal-simulator/internal/config"
	"github.com/rpgo/withdrawal-simulator/internal/domain"
	"github.com/rpgo/withdrawal-simulator/internal/logging"
	"github.com/rpgo/withdrawal-simulator/internal/output"
)

const (
	pathSimulate = "/api/v1/simulate"
	pathReport   = "/api/v1/report"
	pathHealth   = "/healthz"

	contentTypeJSON = "application/json"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Options configures a Server. Zero values fall back to defaults.
type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Logger       *slog.Logger
	// Now stamps generated reports; defaults to time.Now.
	Now func() time.Time
}

// Server routes projection requests to a memoized engine.
type Server struct {
	engine *calculation.MemoizedEngine
	parser *config.InputParser
	logger *slog.Logger
	now    func() time.Time
	http   *fasthttp.Server
}

// New creates a server backed by engine. A nil engine gets an in-memory cache.
func New(engine *calculation.MemoizedEngine, opts Options) *Server {
	if engine == nil {
		engine = calculation.NewMemoizedEngine(nil, nil)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = config.DefaultReadTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = config.DefaultWriteTimeout
	}

	s := &Server{
		engine: engine,
		parser: config.NewInputParser(),
		logger: opts.Logger.With("component", "server"),
		now:    opts.Now,
	}
	s.http = &fasthttp.Server{
		Handler:      s.Handler,
		Name:         "wdsim",
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}
	return s
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- s.http.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.http.ShutdownWithContext(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	}
}

// Handler is the fasthttp request router.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch path {
	case pathSimulate:
		switch {
		case ctx.IsPost():
			s.handleSimulateJSON(ctx)
		case ctx.IsGet():
			s.handleSimulateQuery(ctx)
		default:
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		}
	case pathReport:
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			break
		}
		s.handleReport(ctx)
	case pathHealth:
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found: "+path)
	}

	s.logger.Log(ctx, logging.LevelTrace, "request",
		"method", string(ctx.Method()),
		"path", path,
		"status", ctx.Response.StatusCode(),
		"duration", time.Since(start))
}

func (s *Server) handleSimulateJSON(ctx *fasthttp.RequestCtx) {
	var params domain.SimulationParams
	if err := json.Unmarshal(ctx.PostBody(), &params); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	report, ok := s.simulate(ctx, params)
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, output.NewJSONDocument(report))
}

func (s *Server) handleSimulateQuery(ctx *fasthttp.RequestCtx) {
	report, ok := s.simulate(ctx, paramsFromQuery(ctx.QueryArgs()))
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, output.NewJSONDocument(report))
}

func (s *Server) handleReport(ctx *fasthttp.RequestCtx) {
	format := string(ctx.QueryArgs().Peek("format"))
	if format == "" {
		format = "html"
	}
	f := output.GetFormatterByName(format)
	if f == nil {
		writeError(ctx, fasthttp.StatusBadRequest, output.UnsupportedFormatError(format).Error())
		return
	}

	report, ok := s.simulate(ctx, paramsFromQuery(ctx.QueryArgs()))
	if !ok {
		return
	}
	body, err := f.Format(report)
	if err != nil {
		s.logger.Error("report rendering failed", "format", f.Name(), "error", err)
		writeError(ctx, fasthttp.StatusInternalServerError, "Report rendering failed")
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(output.ContentType(f.Name()))
	ctx.SetBody(body)
}

// simulate validates params and runs the engine; on invalid input it writes the
// 400 reply itself and returns false.
func (s *Server) simulate(ctx *fasthttp.RequestCtx, params domain.SimulationParams) (*domain.ProjectionReport, bool) {
	if err := s.parser.ValidateParams(&params); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return nil, false
	}
	result := s.engine.Simulate(ctx, params)
	return &domain.ProjectionReport{Params: params, Result: result, GeneratedAt: s.now()}, true
}

// paramsFromQuery reads the five inputs as free text, e.g. initial_capital=$1,000,000&annual_rate=7%.
func paramsFromQuery(args *fasthttp.Args) domain.SimulationParams {
	return config.ParseTextInputs(config.TextInputs{
		InitialCapital:  string(args.Peek("initial_capital")),
		FirstWithdrawal: string(args.Peek("first_withdrawal")),
		AnnualRate:      string(args.Peek("annual_rate")),
		InflationRate:   string(args.Peek("inflation_rate")),
		HorizonYears:    string(args.Peek("horizon_years")),
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Response encoding failed")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(body)
}
