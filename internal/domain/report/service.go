package report

import "context"

// ReportService renders entity collections as downloadable spreadsheets.
type ReportService interface {
	Export(ctx context.Context, req ExportRequest) (ExportFile, error)
}
