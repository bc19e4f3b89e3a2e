package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Params
	in := AnalyzeProjection(report)

	fmt.Fprintln(&buf, "WITHDRAWAL PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "C0=%s W1=%s r=%s g=%s Years=%d\n",
		FormatCurrency(p.InitialCapital),
		FormatCurrency(p.FirstWithdrawal),
		FormatPercentage(p.AnnualRate),
		FormatPercentage(p.InflationRate),
		p.HorizonYears,
	)
	fmt.Fprintf(&buf, "  RealReturn=%s Perpetual=%s Terminal=%s\n",
		FormatPercentage(in.RealReturn),
		FormatOptionalCurrency(in.PerpetualMinCapital),
		FormatCurrency(in.TerminalMinCapital),
	)
	fmt.Fprintf(&buf, "  FinalBalance=%s FinalWithdrawal=%s Withdrawn=%s\n",
		FormatCurrency(in.FinalBalance),
		FormatCurrency(in.FinalWithdrawal),
		FormatCurrency(in.TotalWithdrawn),
	)
	if in.DepletionYear > 0 {
		fmt.Fprintf(&buf, "  Depleted in year %d\n", in.DepletionYear)
	}
	for _, w := range in.Warnings {
		fmt.Fprintf(&buf, "Warning: %s\n", w)
	}
	return buf.Bytes(), nil
}
