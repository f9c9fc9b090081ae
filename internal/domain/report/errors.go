package report

import "errors"

var (
	ErrInvalidYear            = errors.New("year must be a valid year")
	ErrInvalidDateRange       = errors.New("end date must be after start date")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
