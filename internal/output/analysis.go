package output

import (
	"fmt"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// Insights collects the derived figures shown next to the yearly series.
type Insights struct {
	RealReturn          decimal.Decimal  `json:"real_return"`
	PerpetualValid      bool             `json:"perpetual_valid"`
	PerpetualMinCapital *decimal.Decimal `json:"perpetual_min_capital,omitempty"`
	TerminalMinCapital  decimal.Decimal  `json:"terminal_min_capital"`
	TerminalConverged   bool             `json:"terminal_converged"`
	FinalBalance        decimal.Decimal  `json:"final_balance"`
	FinalWithdrawal     decimal.Decimal  `json:"final_withdrawal"`
	TotalWithdrawn      decimal.Decimal  `json:"total_withdrawn"`
	HorizonYears        int              `json:"horizon_years"`
	Sustainable         bool             `json:"sustainable"`
	DepletionYear       int              `json:"depletion_year,omitempty"`
	Warnings            []string         `json:"warnings,omitempty"`
}

// Warning texts shared by all formatters.
const (
	WarningNoPerpetuity = "When r ≤ g, the fund cannot sustain indefinitely regardless of initial capital."
	perpetualNote       = "The perpetual minimum is C₀ = W₁ / (r − g), the growing-perpetuity principal."
)

// AnalyzeProjection derives the summary insights of a projection report.
func AnalyzeProjection(report *domain.ProjectionReport) Insights {
	result := &report.Result
	final := result.Final()
	in := Insights{
		RealReturn:          report.Params.RealReturn(),
		PerpetualValid:      result.PerpetualMinCapital != nil && result.PerpetualMinCapital.IsPositive(),
		PerpetualMinCapital: result.PerpetualMinCapital,
		TerminalMinCapital:  result.TerminalMinCapital,
		TerminalConverged:   result.TerminalSearch.Converged,
		FinalBalance:        final.Balance,
		FinalWithdrawal:     final.Withdrawal,
		TotalWithdrawn:      final.CumulativeWithdrawals,
		HorizonYears:        final.Year,
		DepletionYear:       result.DepletionYear(),
	}
	in.Sustainable = in.FinalBalance.IsPositive()

	if !in.RealReturn.IsPositive() {
		in.Warnings = append(in.Warnings, WarningNoPerpetuity)
	}
	if !in.TerminalConverged {
		in.Warnings = append(in.Warnings, fmt.Sprintf(
			"The minimum capital search stopped after %d iterations; the terminal figure is approximate.",
			result.TerminalSearch.Iterations))
	}
	if in.DepletionYear > 0 {
		in.Warnings = append(in.Warnings, fmt.Sprintf("The fund is depleted in year %d.", in.DepletionYear))
	}
	return in
}

// Reference returns the perpetual threshold to draw on charts, or nil when it is not valid.
func (in Insights) Reference() *decimal.Decimal {
	if !in.PerpetualValid {
		return nil
	}
	return in.PerpetualMinCapital
}

// assumptionsFor returns the report assumptions followed by the perpetuity note when it applies.
func assumptionsFor(report *domain.ProjectionReport) []string {
	list := report.Params.GenerateAssumptions()
	if p := report.Result.PerpetualMinCapital; p != nil && p.IsPositive() {
		list = append(list, perpetualNote)
	}
	return list
}
