package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report: parameters, insights,
// assumptions and the full year-by-year table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Params
	in := AnalyzeProjection(report)

	fmt.Fprintln(&buf, strings.Repeat("=", 65))
	fmt.Fprintln(&buf, "PERPETUAL WITHDRAWAL FUND PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 65))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SIMULATION PARAMETERS:")
	fmt.Fprintf(&buf, "  %-34s %s\n", "Initial Capital (C₀):", FormatCurrency(p.InitialCapital))
	fmt.Fprintf(&buf, "  %-34s %s\n", "First Year Withdrawal (W₁):", FormatCurrency(p.FirstWithdrawal))
	fmt.Fprintf(&buf, "  %-34s %s\n", "Annual Interest Rate (r):", FormatPercentage(p.AnnualRate))
	fmt.Fprintf(&buf, "  %-34s %s\n", "Inflation Rate (g):", FormatPercentage(p.InflationRate))
	fmt.Fprintf(&buf, "  %-34s %d\n", "Simulation Years:", p.HorizonYears)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY INSIGHTS:")
	fmt.Fprintf(&buf, "  %-34s %s\n", "Real Return (r − g):", FormatPercentage(in.RealReturn))
	fmt.Fprintf(&buf, "  %-34s %s\n", "Minimum C₀ (perpetual):", FormatOptionalCurrency(in.PerpetualMinCapital))
	fmt.Fprintf(&buf, "  %-34s %s\n", fmt.Sprintf("Minimum C₀ (positive in year %d):", in.HorizonYears), FormatCurrency(in.TerminalMinCapital))
	fmt.Fprintf(&buf, "  %-34s %s\n", fmt.Sprintf("Final Balance (year %d):", in.HorizonYears), FormatCurrency(in.FinalBalance))
	fmt.Fprintf(&buf, "  %-34s %s\n", fmt.Sprintf("Final Withdrawal (year %d):", in.HorizonYears), FormatCurrency(in.FinalWithdrawal))
	fmt.Fprintf(&buf, "  %-34s %s\n", "Total Withdrawn:", FormatCurrency(in.TotalWithdrawn))
	if in.Sustainable {
		fmt.Fprintf(&buf, "  %-34s %s\n", "Status:", "final balance positive")
	} else {
		fmt.Fprintf(&buf, "  %-34s depleted in year %d\n", "Status:", in.DepletionYear)
	}
	fmt.Fprintln(&buf)

	if len(in.Warnings) > 0 {
		fmt.Fprintln(&buf, "WARNINGS:")
		for _, w := range in.Warnings {
			fmt.Fprintf(&buf, "⚠ %s\n", w)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "YEAR-BY-YEAR PROJECTION:")
	fmt.Fprintln(&buf, strings.Repeat("-", 65))
	fmt.Fprintf(&buf, "%-6s %18s %18s %20s\n", "Year", "Balance", "Withdrawal", "Cumulative")
	fmt.Fprintln(&buf, strings.Repeat("-", 65))
	for _, yr := range report.Result.Series {
		marker := ""
		if yr.Year > 0 && yr.IsDepleted() {
			marker = " *"
		}
		fmt.Fprintf(&buf, "%-6d %18s %18s %20s%s\n",
			yr.Year,
			FormatCurrency(yr.Balance),
			FormatCurrency(yr.Withdrawal),
			FormatCurrency(yr.CumulativeWithdrawals),
			marker,
		)
	}
	fmt.Fprintln(&buf, strings.Repeat("-", 65))
	if in.DepletionYear > 0 {
		fmt.Fprintln(&buf, "* balance at or below zero")
	}
	return buf.Bytes(), nil
}
