package calculation

import (
	"github.com/rpgo/withdrawal-simulator/internal/domain"
	money "github.com/rpgo/withdrawal-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// ProjectionEngine runs the deterministic withdrawal projection.
// It holds no state between runs; identical params always yield identical results.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a new projection engine
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the projection engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Simulate produces the year-by-year series and both capital thresholds for params.
// HorizonYears must be positive; callers validate it.
func (pe *ProjectionEngine) Simulate(params domain.SimulationParams) domain.ProjectionResult {
	terminal, search := pe.TerminalMinCapital(params)
	return domain.ProjectionResult{
		Series:              GenerateSeries(params),
		PerpetualMinCapital: PerpetualMinCapital(params),
		TerminalMinCapital:  terminal,
		TerminalSearch:      search,
	}
}

// WithdrawalForYear returns the withdrawal taken in year (1-based):
// FirstWithdrawal grown by inflation for year-1 periods.
func WithdrawalForYear(params domain.SimulationParams, year int) decimal.Decimal {
	growth := one.Add(params.InflationRate).Pow(decimal.NewFromInt(int64(year - 1)))
	return params.FirstWithdrawal.Mul(growth)
}

// GenerateSeries simulates years 0..HorizonYears starting from InitialCapital.
// The carried balance keeps full precision; emitted records are rounded to whole units.
func GenerateSeries(params domain.SimulationParams) []domain.YearRecord {
	size := params.HorizonYears + 1
	if size < 1 {
		size = 1
	}
	series := make([]domain.YearRecord, 0, size)
	series = append(series, domain.YearRecord{
		Year:                  0,
		Balance:               params.InitialCapital,
		Withdrawal:            decimal.Zero,
		CumulativeWithdrawals: decimal.Zero,
	})

	growth := one.Add(params.AnnualRate)
	balance := params.InitialCapital
	cumulative := decimal.Zero
	for year := 1; year <= params.HorizonYears; year++ {
		balance = balance.Mul(growth)
		withdrawal := WithdrawalForYear(params, year)
		balance = balance.Sub(withdrawal)
		cumulative = cumulative.Add(withdrawal)

		series = append(series, domain.YearRecord{
			Year:                  year,
			Balance:               money.RoundWhole(balance),
			Withdrawal:            money.RoundWhole(withdrawal),
			CumulativeWithdrawals: money.RoundWhole(cumulative),
		})
	}
	return series
}

// FinalBalance runs the projection from capital and returns the unrounded
// balance after the last year, without building the series.
func FinalBalance(params domain.SimulationParams, capital decimal.Decimal) decimal.Decimal {
	growth := one.Add(params.AnnualRate)
	balance := capital
	for year := 1; year <= params.HorizonYears; year++ {
		balance = balance.Mul(growth).Sub(WithdrawalForYear(params, year))
	}
	return balance
}
