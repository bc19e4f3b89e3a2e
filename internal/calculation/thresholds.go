package calculation

import (
	"github.com/rpgo/withdrawal-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// MaxSearchIterations caps the terminal capital search.
	MaxSearchIterations = 50
)

var (
	// SearchTolerance is the step size below which a positive candidate is accepted.
	SearchTolerance = decimal.NewFromInt(1000)

	halfStep = decimal.NewFromFloat(0.5)
)

// PerpetualMinCapital returns the growing-perpetuity principal FirstWithdrawal / (r - g).
// It returns nil when the real return is zero or negative: no finite capital lasts forever then.
func PerpetualMinCapital(params domain.SimulationParams) *decimal.Decimal {
	realReturn := params.RealReturn()
	if !realReturn.IsPositive() {
		return nil
	}
	capital := params.FirstWithdrawal.Div(realReturn)
	return &capital
}

// TerminalMinCapital searches for the smallest starting capital whose final-year
// balance stays positive.
//
// The search starts at FirstWithdrawal with the same step. A positive final balance
// moves the candidate down by step and halves the step; otherwise the candidate moves
// up by step with the step unchanged. It stops once a positive candidate is found
// with step below SearchTolerance, or after MaxSearchIterations.
func (pe *ProjectionEngine) TerminalMinCapital(params domain.SimulationParams) (decimal.Decimal, domain.TerminalSearch) {
	candidate := params.FirstWithdrawal
	step := params.FirstWithdrawal

	for i := 0; i < MaxSearchIterations; i++ {
		final := FinalBalance(params, candidate)

		if final.IsPositive() {
			if step.LessThan(SearchTolerance) {
				pe.Logger.Debugf("terminal capital search converged after %d iterations at %s", i+1, candidate.StringFixed(2))
				return candidate, domain.TerminalSearch{Iterations: i + 1, Converged: true}
			}
			candidate = candidate.Sub(step)
			step = step.Mul(halfStep)
		} else {
			candidate = candidate.Add(step)
		}
	}

	pe.Logger.Warnf("terminal capital search stopped after %d iterations without converging (candidate %s, step %s)",
		MaxSearchIterations, candidate.StringFixed(2), step.StringFixed(2))
	return candidate, domain.TerminalSearch{Iterations: MaxSearchIterations, Converged: false}
}
