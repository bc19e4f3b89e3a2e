package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
	money "github.com/rpgo/withdrawal-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

const chartTicks = 5

// chartPoint is a position inside the plot box; Y grows downward as in SVG and PDF.
type chartPoint struct {
	X, Y float64
}

type chartTick struct {
	Pos   float64
	Label string
}

// balanceChart is the balance-over-time line chart laid out in a fixed box.
type balanceChart struct {
	Left, Top, Width, Height float64

	Points []chartPoint
	// Reference is the y position of the perpetual threshold line when HasReference is set.
	Reference      float64
	HasReference   bool
	ReferenceLabel string
	// ZeroY is the y position of a zero balance.
	ZeroY  float64
	YTicks []chartTick
	XTicks []chartTick
}

// newBalanceChart scales series (and the optional reference level) into the box.
// The value range always includes zero so depletion is visible.
func newBalanceChart(series []domain.YearRecord, reference *decimal.Decimal, left, top, width, height float64) balanceChart {
	c := balanceChart{Left: left, Top: top, Width: width, Height: height}
	if len(series) == 0 {
		c.ZeroY = top + height
		return c
	}

	lo, hi := 0.0, 0.0
	for _, yr := range series {
		v := yr.Balance.InexactFloat64()
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if reference != nil {
		v := reference.InexactFloat64()
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	lastYear := series[len(series)-1].Year
	xScale := width
	if lastYear > 0 {
		xScale = width / float64(lastYear)
	}
	yOf := func(v float64) float64 {
		return top + height - (v-lo)/(hi-lo)*height
	}

	for _, yr := range series {
		c.Points = append(c.Points, chartPoint{X: left + float64(yr.Year)*xScale, Y: yOf(yr.Balance.InexactFloat64())})
	}
	c.ZeroY = yOf(0)
	if reference != nil {
		c.Reference = yOf(reference.InexactFloat64())
		c.HasReference = true
		c.ReferenceLabel = "Perpetual minimum " + money.FormatCurrency(*reference)
	}

	for i := 0; i <= chartTicks; i++ {
		v := lo + (hi-lo)*float64(i)/chartTicks
		c.YTicks = append(c.YTicks, chartTick{
			Pos:   yOf(v),
			Label: money.NewMoney(v).FormatMillions(),
		})
	}
	step := max(1, (lastYear+chartTicks-1)/chartTicks)
	for year := 0; year <= lastYear; year += step {
		c.XTicks = append(c.XTicks, chartTick{Pos: left + float64(year)*xScale, Label: fmt.Sprintf("%d", year)})
	}
	return c
}

// Right is the x position of the right edge of the plot box.
func (c balanceChart) Right() float64 { return c.Left + c.Width }

// Bottom is the y position of the bottom edge of the plot box.
func (c balanceChart) Bottom() float64 { return c.Top + c.Height }

// Polyline renders the points in SVG polyline format.
func (c balanceChart) Polyline() string {
	parts := make([]string, len(c.Points))
	for i, p := range c.Points {
		parts[i] = fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}
