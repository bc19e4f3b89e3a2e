package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
)

func series(balances ...int64) []domain.YearRecord {
	out := make([]domain.YearRecord, len(balances))
	for i, b := range balances {
		out[i] = domain.YearRecord{Year: i, Balance: decimal.NewFromInt(b)}
	}
	return out
}

func TestNewBalanceChart(t *testing.T) {
	ref := decimal.NewFromInt(500)
	c := newBalanceChart(series(1000, 800, 600, 400, 200), &ref, 10, 20, 400, 100)

	require.Len(t, c.Points, 5)
	assert.InDelta(t, 10, c.Points[0].X, 1e-9)
	assert.InDelta(t, 410, c.Points[4].X, 1e-9)
	assert.InDelta(t, 20, c.Points[0].Y, 1e-9, "max balance sits on the top edge")
	assert.InDelta(t, 120, c.ZeroY, 1e-9, "zero sits on the bottom edge")
	assert.True(t, c.HasReference)
	assert.InDelta(t, 70, c.Reference, 1e-9)
	assert.Equal(t, "Perpetual minimum $500", c.ReferenceLabel)
	assert.Len(t, c.YTicks, chartTicks+1)
	assert.Equal(t, "$0.0M", c.YTicks[0].Label)
	assert.InDelta(t, 410, c.Right(), 1e-9)
	assert.InDelta(t, 120, c.Bottom(), 1e-9)
}

func TestNewBalanceChart_NegativeBalances(t *testing.T) {
	c := newBalanceChart(series(100, 0, -100), nil, 0, 0, 200, 100)
	assert.False(t, c.HasReference)
	assert.InDelta(t, 50, c.ZeroY, 1e-9)
	assert.InDelta(t, 100, c.Points[2].Y, 1e-9)
	assert.Equal(t, "0.0,0.0 100.0,50.0 200.0,100.0", c.Polyline())
}

func TestNewBalanceChart_Empty(t *testing.T) {
	c := newBalanceChart(nil, nil, 0, 0, 200, 100)
	assert.Empty(t, c.Points)
	assert.Equal(t, "", c.Polyline())
}
