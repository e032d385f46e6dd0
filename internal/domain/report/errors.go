package report

import "errors"

var (
	ErrUnknownKind            = errors.New("unknown export type")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
