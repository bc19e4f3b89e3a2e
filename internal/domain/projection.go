package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SimulationParams holds the five scalar inputs of a withdrawal projection.
// Rates are fractions (0.07 means 7%).
type SimulationParams struct {
	InitialCapital  decimal.Decimal `yaml:"initial_capital" json:"initial_capital"`
	FirstWithdrawal decimal.Decimal `yaml:"first_withdrawal" json:"first_withdrawal"`
	AnnualRate      decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
	InflationRate   decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	HorizonYears    int             `yaml:"horizon_years" json:"horizon_years"`
}

// RealReturn is the nominal growth rate minus the withdrawal inflation rate.
func (p SimulationParams) RealReturn() decimal.Decimal {
	return p.AnnualRate.Sub(p.InflationRate)
}

// YearRecord is the state of the fund at the end of a simulated year.
// Year 0 is the initial state before any growth or withdrawal.
type YearRecord struct {
	Year                  int             `json:"year"`
	Balance               decimal.Decimal `json:"balance"`
	Withdrawal            decimal.Decimal `json:"withdrawal"`
	CumulativeWithdrawals decimal.Decimal `json:"cumulative_withdrawals"`
}

// IsDepleted reports whether the fund balance has reached zero or gone negative.
func (yr YearRecord) IsDepleted() bool {
	return !yr.Balance.IsPositive()
}

// TerminalSearch describes how the minimum terminal capital search ended.
type TerminalSearch struct {
	Iterations int  `json:"iterations"`
	Converged  bool `json:"converged"`
}

// ProjectionResult is the complete output of one engine run.
type ProjectionResult struct {
	Series []YearRecord `json:"series"`

	// PerpetualMinCapital is nil when the real return is not positive.
	PerpetualMinCapital *decimal.Decimal `json:"perpetual_min_capital,omitempty"`
	TerminalMinCapital  decimal.Decimal  `json:"terminal_min_capital"`
	TerminalSearch      TerminalSearch   `json:"terminal_search"`
}

// Final returns the last record of the series.
func (pr ProjectionResult) Final() YearRecord {
	if len(pr.Series) == 0 {
		return YearRecord{}
	}
	return pr.Series[len(pr.Series)-1]
}

// DepletionYear returns the first year whose balance is zero or negative, or 0 if the fund never depletes.
func (pr ProjectionResult) DepletionYear() int {
	for _, yr := range pr.Series {
		if yr.Year > 0 && yr.IsDepleted() {
			return yr.Year
		}
	}
	return 0
}

// ProjectionReport bundles the inputs and outputs of a run for formatters.
type ProjectionReport struct {
	Params      SimulationParams `json:"params"`
	Result      ProjectionResult `json:"result"`
	GeneratedAt time.Time        `json:"generated_at"`
}
