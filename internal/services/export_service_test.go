package services

import (
	"testing"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/testutil"
)

// mockReportService lets export tests control the underlying summary call.
type mockReportService struct {
	getSummaryFn        func(start, end time.Time) (*ReportSummary, error)
	getCategoryReportFn func(start, end time.Time) ([]CategoryReportRow, error)
}

func (m *mockReportService) GetSummary(start, end time.Time) (*ReportSummary, error) {
	return m.getSummaryFn(start, end)
}

func (m *mockReportService) GetCategoryReport(start, end time.Time) ([]CategoryReportRow, error) {
	return m.getCategoryReportFn(start, end)
}

func TestExportReport(t *testing.T) {
	t.Run("builds_filename_from_range", func(t *testing.T) {
		reports := &mockReportService{
			getSummaryFn: func(start, end time.Time) (*ReportSummary, error) {
				return &ReportSummary{Period: Period{StartDate: start, EndDate: end}}, nil
			},
		}
		svc := NewExportService(reports)

		result, err := svc.ExportReport(date(2024, time.March, 1), date(2024, time.March, 31))
		testutil.AssertNoError(t, err)

		expected := "financial_report_2024-03-01_to_2024-03-31.xlsx"
		if result.Filename != expected {
			t.Errorf("expected filename %q, got %q", expected, result.Filename)
		}
		if result.FileURL != "/exports/"+expected {
			t.Errorf("expected file URL %q, got %q", "/exports/"+expected, result.FileURL)
		}
	})

	t.Run("propagates_store_errors", func(t *testing.T) {
		reports := &mockReportService{
			getSummaryFn: func(start, end time.Time) (*ReportSummary, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		svc := NewExportService(reports)

		_, err := svc.ExportReport(date(2024, time.March, 1), date(2024, time.March, 31))
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")
	})

	t.Run("against_real_store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExportService(NewReportService(db))

		result, err := svc.ExportReport(date(2024, time.January, 1), date(2024, time.December, 31))
		testutil.AssertNoError(t, err)

		if result.Filename != "financial_report_2024-01-01_to_2024-12-31.xlsx" {
			t.Errorf("unexpected filename %q", result.Filename)
		}
	})
}
