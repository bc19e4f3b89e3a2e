package mcp

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
	"github.com/rpgo/withdrawal-simulator/internal/output"
)

// registerTools registers the projection tools with the server.
func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        ToolSimulate,
		Description: "Project a withdrawal fund year by year and compute the perpetual and terminal minimum starting capital",
	}, s.handleSimulate)
}

func (s *Server) handleSimulate(ctx context.Context, req *sdk.CallToolRequest, args SimulateInput) (*sdk.CallToolResult, SimulateOutput, error) {
	start := time.Now()
	params := domain.SimulationParams{
		InitialCapital:  decimal.NewFromFloat(args.InitialCapital),
		FirstWithdrawal: decimal.NewFromFloat(args.FirstWithdrawal),
		AnnualRate:      decimal.NewFromFloat(args.AnnualRate),
		InflationRate:   decimal.NewFromFloat(args.InflationRate),
		HorizonYears:    args.HorizonYears,
	}
	if err := s.parser.ValidateParams(&params); err != nil {
		return nil, SimulateOutput{}, fmt.Errorf("invalid input: %w", err)
	}

	report := &domain.ProjectionReport{
		Params:      params,
		Result:      s.engine.Simulate(ctx, params),
		GeneratedAt: start,
	}
	in := output.AnalyzeProjection(report)

	out := SimulateOutput{
		RealReturn:         in.RealReturn.InexactFloat64(),
		TerminalMinCapital: in.TerminalMinCapital.InexactFloat64(),
		TerminalConverged:  in.TerminalConverged,
		FinalBalance:       in.FinalBalance.InexactFloat64(),
		FinalWithdrawal:    in.FinalWithdrawal.InexactFloat64(),
		TotalWithdrawn:     in.TotalWithdrawn.InexactFloat64(),
		DepletionYear:      in.DepletionYear,
		Warnings:           in.Warnings,
	}
	if in.PerpetualMinCapital != nil {
		v := in.PerpetualMinCapital.InexactFloat64()
		out.PerpetualMinCapital = &v
	}
	if args.IncludeSeries {
		out.Series = make([]YearPoint, 0, len(report.Result.Series))
		for _, yr := range report.Result.Series {
			out.Series = append(out.Series, YearPoint{
				Year:                  yr.Year,
				Balance:               yr.Balance.InexactFloat64(),
				Withdrawal:            yr.Withdrawal.InexactFloat64(),
				CumulativeWithdrawals: yr.CumulativeWithdrawals.InexactFloat64(),
			})
		}
	}

	s.logger.Debug("tool call", "tool", ToolSimulate, "years", args.HorizonYears, "duration", time.Since(start))
	return nil, out, nil
}
