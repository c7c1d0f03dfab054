package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// reportService computes date-range aggregates over transactions. Sums and
// counts are delegated to the store's GROUP BY; totals are rounded half-up to
// the cent after aggregation to counter summation drift.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// kindAggregate holds one GROUP BY kind row.
type kindAggregate struct {
	Kind  models.TransactionKind
	Total decimal.Decimal
	Count int64
}

// GetSummary computes total income, total expense, net, and transaction count
// for the inclusive date range [start, end]. The period is echoed verbatim.
func (s *reportService) GetSummary(start, end time.Time) (*ReportSummary, error) {
	var rows []kindAggregate
	err := s.db.Model(&models.Transaction{}).
		Select("kind, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("date BETWEEN ? AND ?", start, end).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &ReportSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Period:       Period{StartDate: start, EndDate: end},
	}

	for _, row := range rows {
		switch row.Kind {
		case models.TransactionKindIncome:
			summary.TotalIncome = row.Total.Round(2)
		case models.TransactionKindExpense:
			summary.TotalExpense = row.Total.Round(2)
		}
		summary.TransactionsCount += row.Count
	}

	summary.NetAmount = summary.TotalIncome.Sub(summary.TotalExpense).Round(2)
	return summary, nil
}

// GetCategoryReport computes per-category sums and counts for the inclusive
// date range [start, end]. Only categories with at least one matching
// transaction appear; callers sort as needed.
func (s *reportService) GetCategoryReport(start, end time.Time) ([]CategoryReportRow, error) {
	var rows []CategoryReportRow
	err := s.db.Table("transactions").
		Select("transactions.category_id, categories.name AS category_name, transactions.kind, "+
			"COALESCE(SUM(transactions.amount), 0) AS total_amount, COUNT(*) AS transactions_count").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.date BETWEEN ? AND ?", start, end).
		Group("transactions.category_id, categories.name, transactions.kind").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range rows {
		rows[i].TotalAmount = rows[i].TotalAmount.Round(2)
	}
	return rows, nil
}
