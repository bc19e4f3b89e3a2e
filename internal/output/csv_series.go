package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
)

// CSVSeriesExporter writes the year-by-year series as it appears in the table.
type CSVSeriesExporter struct{}

func (c CSVSeriesExporter) Name() string { return "csv" }

func (c CSVSeriesExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Year", "Balance", "Withdrawal", "CumulativeWithdrawals"}); err != nil {
		return nil, err
	}
	for _, yr := range report.Result.Series {
		row := []string{
			strconv.Itoa(yr.Year),
			yr.Balance.StringFixed(0),
			yr.Withdrawal.StringFixed(0),
			yr.CumulativeWithdrawals.StringFixed(0),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
