package output

import (
	"bytes"
	_ "embed"
	"html/template"

	json "github.com/goccy/go-json"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG balance chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

// SVG viewport of the balance chart.
const (
	svgWidth      = 800.0
	svgHeight     = 360.0
	svgPlotLeft   = 70.0
	svgPlotTop    = 20.0
	svgPlotRight  = 20.0
	svgPlotBottom = 40.0
	svgPlotWidth  = svgWidth - svgPlotLeft - svgPlotRight
	svgPlotHeight = svgHeight - svgPlotTop - svgPlotBottom
)

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"pct":     FormatPercentage,
	"optcurr": FormatOptionalCurrency,
	"add":     func(a, b float64) float64 { return a + b },
	"sub":     func(a, b float64) float64 { return a - b },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	in := AnalyzeProjection(report)
	data := struct {
		*domain.ProjectionReport
		Insights    Insights
		Assumptions []string
		MathNote    string
		Chart       balanceChart
		SVGWidth    float64
		SVGHeight   float64
	}{
		ProjectionReport: report,
		Insights:         in,
		Assumptions:      report.Params.GenerateAssumptions(),
		Chart: newBalanceChart(report.Result.Series, in.Reference(),
			svgPlotLeft, svgPlotTop, svgPlotWidth, svgPlotHeight),
		SVGWidth:  svgWidth,
		SVGHeight: svgHeight,
	}
	if in.PerpetualValid {
		data.MathNote = perpetualNote
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
