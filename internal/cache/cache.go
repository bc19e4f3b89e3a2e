// Package cache memoizes projection results by their parameter tuple.
package cache

import (
	"context"
	"fmt"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
)

// Store keeps projection results keyed by Key(params).
// A miss is reported as (nil, false, nil).
type Store interface {
	Get(ctx context.Context, key string) (*domain.ProjectionResult, bool, error)
	Set(ctx context.Context, key string, result *domain.ProjectionResult) error
	Close() error
}

// Key returns the canonical cache key for params.
func Key(params domain.SimulationParams) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d",
		params.InitialCapital.String(),
		params.FirstWithdrawal.String(),
		params.AnnualRate.String(),
		params.InflationRate.String(),
		params.HorizonYears,
	)
}

func cloneResult(r *domain.ProjectionResult) *domain.ProjectionResult {
	out := *r
	out.Series = append([]domain.YearRecord(nil), r.Series...)
	if r.PerpetualMinCapital != nil {
		v := *r.PerpetualMinCapital
		out.PerpetualMinCapital = &v
	}
	return &out
}
