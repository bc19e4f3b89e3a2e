package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVDetailedExporter adds per-year derived columns to the series: opening balance,
// growth credited and the depletion flag.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "OpeningBalance", "Growth", "Withdrawal", "ClosingBalance", "CumulativeWithdrawals", "Depleted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	opening := decimal.Zero
	for _, yr := range report.Result.Series {
		growth := decimal.Zero
		if yr.Year > 0 {
			// rounded figures: closing = opening + growth - withdrawal
			growth = yr.Balance.Add(yr.Withdrawal).Sub(opening)
		}
		row := []string{
			strconv.Itoa(yr.Year),
			opening.StringFixed(0),
			growth.StringFixed(0),
			yr.Withdrawal.StringFixed(0),
			yr.Balance.StringFixed(0),
			yr.CumulativeWithdrawals.StringFixed(0),
			strconv.FormatBool(yr.Year > 0 && yr.IsDepleted()),
		}
		if yr.Year == 0 {
			row[1] = ""
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
		opening = yr.Balance
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
