package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// ReportHandler handles report and export requests.
type ReportHandler struct {
	reportService services.ReportServicer
	exportService services.ExportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer, exportService services.ExportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService, exportService: exportService}
}

// GetSummary handles the retrieval of a date-range summary report
// @Summary     Get report summary
// @Description Get total income, total expense, net amount, and transaction count for an inclusive date range
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       start_date query string true "Range start, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query string true "Range end, inclusive (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} services.ReportSummary "Summary report"
// @Failure     400 {object} ErrorResponse "Invalid date range"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.GetSummary(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetCategoryReport handles the retrieval of a per-category breakdown
// @Summary     Get category report
// @Description Get per-category amount sums and transaction counts for an inclusive date range; categories with no matches are omitted
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       start_date query string true "Range start, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query string true "Range end, inclusive (RFC3339 or YYYY-MM-DD)"
// @Success     200 {array} services.CategoryReportRow "Per-category aggregates"
// @Failure     400 {object} ErrorResponse "Invalid date range"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/categories [get]
func (h *ReportHandler) GetCategoryReport(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.GetCategoryReport(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// ExportReport handles report export requests
// @Summary     Export report
// @Description Get the download filename and URL for a date-range report export
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       start_date query string true "Range start, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query string true "Range end, inclusive (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} services.ExportResult "Export download metadata"
// @Failure     400 {object} ErrorResponse "Invalid date range"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/export [get]
func (h *ReportHandler) ExportReport(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.exportService.ExportReport(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
