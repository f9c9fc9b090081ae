package report

import "context"

// ReportService builds the dashboard's aggregate views. All three role
// lists are fetched before any aggregation starts; a failed fetch fails
// the whole report rather than producing a partial view.
type ReportService interface {
	// GeneratePeriodSummary returns one row per employee across all roles
	// for the requested period.
	GeneratePeriodSummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)

	// GenerateYearGraph returns the 12-bucket target/achievement and
	// target/collection series for a calendar year.
	GenerateYearGraph(ctx context.Context, req GraphRequest) (GraphResponse, error)

	// ExportYearReport renders the yearly series and period summary as an
	// XLSX workbook.
	ExportYearReport(ctx context.Context, req GraphRequest) ([]byte, string, error)
}
