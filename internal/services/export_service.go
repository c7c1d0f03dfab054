package services

import (
	"fmt"
	"time"
)

const exportDateLayout = "2006-01-02"

// exportService builds download metadata for report exports.
//
// The spreadsheet body itself is not rendered; only the filename and download
// URL are produced. TODO: render the xlsx body once an encoder is chosen.
type exportService struct {
	reportService ReportServicer
}

// NewExportService creates a new ExportServicer.
func NewExportService(reportService ReportServicer) ExportServicer {
	return &exportService{reportService: reportService}
}

// ExportReport returns the filename and URL under which the report for
// [start, end] will be downloadable. The summary is fetched first so a broken
// store surfaces here rather than at download time.
func (s *exportService) ExportReport(start, end time.Time) (*ExportResult, error) {
	if _, err := s.reportService.GetSummary(start, end); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("financial_report_%s_to_%s.xlsx",
		start.Format(exportDateLayout), end.Format(exportDateLayout))

	return &ExportResult{
		FileURL:  "/exports/" + filename,
		Filename: filename,
	}, nil
}
