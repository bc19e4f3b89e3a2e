package output

import (
	json "github.com/goccy/go-json"

	"github.com/rpgo/withdrawal-simulator/internal/domain"
)

// JSONDocument is the shape written by JSONFormatter and served by the HTTP API.
type JSONDocument struct {
	*domain.ProjectionReport
	Insights    Insights `json:"insights"`
	Assumptions []string `json:"assumptions"`
}

// NewJSONDocument bundles report with its insights and assumptions.
func NewJSONDocument(report *domain.ProjectionReport) JSONDocument {
	return JSONDocument{
		ProjectionReport: report,
		Insights:         AnalyzeProjection(report),
		Assumptions:      assumptionsFor(report),
	}
}

// JSONFormatter serializes the projection report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	return json.MarshalIndent(NewJSONDocument(report), "", "  ")
}
