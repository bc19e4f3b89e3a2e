package output

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
	pdfChartHeight  = 80.0
)

// core PDF fonts are cp1252; map the math glyphs used in labels to plain text first
var pdfGlyphs = strings.NewReplacer("≤", "<=", "₀", "0", "₁", "1", "−", "-", "⚠", "!")

// PDFFormatter renders a printable A4 report with the parameters, insights,
// balance chart and year-by-year table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

type pdfReport struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	report *domain.ProjectionReport
	in     Insights
}

func (p PDFFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	r := &pdfReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		report: report,
		in:     AnalyzeProjection(report),
	}
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	r.pdf.SetCreationDate(report.GeneratedAt)
	r.pdf.SetTitle("Withdrawal Projection", true)

	r.pdf.AddPage()
	r.addSummary()
	r.addChart()
	r.addSeriesTable()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) text(s string) string {
	return r.tr(pdfGlyphs.Replace(s))
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 9, r.text(title), "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(3)
}

func (r *pdfReport) keyValue(key, value string) {
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(pdfContentWidth*0.55, 6, r.text(key), "", 0, "L", false, 0, "")
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.CellFormat(pdfContentWidth*0.45, 6, r.text(value), "", 1, "R", false, 0, "")
}

func (r *pdfReport) addSummary() {
	params := r.report.Params
	in := r.in

	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 12, "Perpetual Withdrawal Fund Projection", "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.CellFormat(pdfContentWidth, 6, "Generated: "+r.report.GeneratedAt.Format("2 January 2006 15:04"), "", 1, "C", false, 0, "")
	r.pdf.Ln(4)

	r.drawSectionHeader("Simulation Parameters")
	r.keyValue("Initial Capital (C0)", FormatCurrency(params.InitialCapital))
	r.keyValue("First Year Withdrawal (W1)", FormatCurrency(params.FirstWithdrawal))
	r.keyValue("Annual Interest Rate (r)", FormatPercentage(params.AnnualRate))
	r.keyValue("Inflation Rate (g)", FormatPercentage(params.InflationRate))
	r.keyValue("Simulation Years", strconv.Itoa(params.HorizonYears))
	r.pdf.Ln(3)

	r.drawSectionHeader("Key Insights")
	r.keyValue("Real Return (r - g)", FormatPercentage(in.RealReturn))
	r.keyValue("Minimum C0 (perpetual)", FormatOptionalCurrency(in.PerpetualMinCapital))
	r.keyValue(fmt.Sprintf("Minimum C0 (positive in year %d)", in.HorizonYears), FormatCurrency(in.TerminalMinCapital))
	r.keyValue(fmt.Sprintf("Final Balance (year %d)", in.HorizonYears), FormatCurrency(in.FinalBalance))
	r.keyValue(fmt.Sprintf("Final Withdrawal (year %d)", in.HorizonYears), FormatCurrency(in.FinalWithdrawal))
	r.keyValue("Total Withdrawn", FormatCurrency(in.TotalWithdrawn))

	if len(in.Warnings) > 0 {
		r.pdf.Ln(2)
		r.pdf.SetFont("Arial", "I", 9)
		r.pdf.SetTextColor(180, 60, 0)
		for _, w := range in.Warnings {
			r.pdf.MultiCell(pdfContentWidth, 4.5, r.text(w), "", "L", false)
		}
	}
	r.pdf.Ln(4)
}

func (r *pdfReport) addChart() {
	r.drawSectionHeader("Fund Balance Over Time")

	top := r.pdf.GetY() + 2
	left := pdfMarginLeft + 18
	width := pdfContentWidth - 20
	chart := newBalanceChart(r.report.Result.Series, r.in.Reference(), left, top, width, pdfChartHeight)

	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetLineWidth(0.2)
	r.pdf.Rect(left, top, width, pdfChartHeight, "D")

	r.pdf.SetFont("Arial", "", 7)
	r.pdf.SetTextColor(100, 100, 100)
	for _, tick := range chart.YTicks {
		r.pdf.Line(left-1, tick.Pos, left, tick.Pos)
		r.pdf.Text(pdfMarginLeft, tick.Pos+1, tick.Label)
	}
	for _, tick := range chart.XTicks {
		r.pdf.Line(tick.Pos, top+pdfChartHeight, tick.Pos, top+pdfChartHeight+1)
		r.pdf.Text(tick.Pos-1.5, top+pdfChartHeight+4, tick.Label)
	}

	r.pdf.SetDrawColor(150, 150, 150)
	r.pdf.Line(left, chart.ZeroY, left+width, chart.ZeroY)

	if chart.HasReference {
		r.pdf.SetDrawColor(220, 120, 0)
		r.pdf.SetDashPattern([]float64{2, 1.5}, 0)
		r.pdf.Line(left, chart.Reference, left+width, chart.Reference)
		r.pdf.SetDashPattern([]float64{}, 0)
		r.pdf.SetTextColor(220, 120, 0)
		r.pdf.Text(left+2, chart.Reference-1, r.text(chart.ReferenceLabel))
	}

	r.pdf.SetDrawColor(0, 102, 204)
	r.pdf.SetLineWidth(0.5)
	for i := 1; i < len(chart.Points); i++ {
		a, b := chart.Points[i-1], chart.Points[i]
		r.pdf.Line(a.X, a.Y, b.X, b.Y)
	}
	r.pdf.SetLineWidth(0.2)

	r.pdf.SetXY(pdfMarginLeft, top+pdfChartHeight+8)
}

func (r *pdfReport) addSeriesTable() {
	r.pdf.AddPage()
	r.drawSectionHeader("Year-by-Year Projection")

	headers := []string{"Year", "Balance", "Withdrawal", "Cumulative"}
	widths := []float64{20, 55, 50, 55}
	drawHeader := func() {
		r.pdf.SetFillColor(0, 51, 102)
		r.pdf.SetTextColor(255, 255, 255)
		r.pdf.SetFont("Arial", "B", 9)
		for i, h := range headers {
			align := "L"
			if i > 0 {
				align = "R"
			}
			r.pdf.CellFormat(widths[i], 6, h, "1", 0, align, true, 0, "")
		}
		r.pdf.Ln(-1)
	}
	drawHeader()

	_, pageHeight := r.pdf.GetPageSize()
	r.pdf.SetFont("Arial", "", 9)
	for idx, yr := range r.report.Result.Series {
		if r.pdf.GetY()+5 > pageHeight-pdfMarginBottom {
			r.pdf.AddPage()
			drawHeader()
		}
		r.pdf.SetFont("Arial", "", 9)
		if yr.Year > 0 && yr.IsDepleted() {
			r.pdf.SetTextColor(200, 0, 0)
		} else {
			r.pdf.SetTextColor(50, 50, 50)
		}
		fill := idx%2 == 1
		r.pdf.SetFillColor(245, 247, 250)
		r.pdf.CellFormat(widths[0], 5, strconv.Itoa(yr.Year), "LR", 0, "L", fill, 0, "")
		r.pdf.CellFormat(widths[1], 5, FormatCurrency(yr.Balance), "LR", 0, "R", fill, 0, "")
		r.pdf.CellFormat(widths[2], 5, FormatCurrency(yr.Withdrawal), "LR", 0, "R", fill, 0, "")
		r.pdf.CellFormat(widths[3], 5, FormatCurrency(yr.CumulativeWithdrawals), "LR", 1, "R", fill, 0, "")
	}
	r.pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 0, "", "T", 1, "", false, 0, "")
}
