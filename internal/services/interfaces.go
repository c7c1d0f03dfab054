package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name string, kind models.CategoryKind) (*models.Category, error)
	GetCategories(kind *models.CategoryKind) ([]models.Category, error)
	UpdateCategory(categoryID uint, name *string, kind *models.CategoryKind) (*models.Category, error)
	DeleteCategory(categoryID uint) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
// All predicates are applied conjunctively; the date range is inclusive on
// both ends.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Kind       *models.TransactionKind
	CategoryID *uint
}

// TransactionUpdateFields holds the optional fields of a partial transaction
// update. A nil field means "leave unchanged"; only supplied fields are
// written.
type TransactionUpdateFields struct {
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
	CategoryID  *uint
	Kind        *models.TransactionKind
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(amount decimal.Decimal, description string, date time.Time, categoryID uint, kind models.TransactionKind) (*models.TransactionWithCategory, error)
	GetTransactions(filter TransactionFilter) ([]models.TransactionWithCategory, error)
	UpdateTransaction(transactionID uint, fields TransactionUpdateFields) (*models.TransactionWithCategory, error)
	DeleteTransaction(transactionID uint) (bool, error)
}

// Period is an inclusive [start, end] date range echoed back in reports.
type Period struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// ReportSummary contains aggregate totals for a date range. Totals and net
// are rounded to 2 decimal places after aggregation.
type ReportSummary struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	NetAmount         decimal.Decimal `json:"net_amount"`
	TransactionsCount int64           `json:"transactions_count"`
	Period            Period          `json:"period"`
}

// CategoryReportRow is a per-category aggregate for a date range. Categories
// with no matching transactions in the range are omitted entirely.
type CategoryReportRow struct {
	CategoryID        uint                   `json:"category_id"`
	CategoryName      string                 `json:"category_name"`
	Kind              models.TransactionKind `json:"kind"`
	TotalAmount       decimal.Decimal        `json:"total_amount"`
	TransactionsCount int64                  `json:"transactions_count"`
}

// ReportServicer defines the contract for report aggregation.
type ReportServicer interface {
	GetSummary(start, end time.Time) (*ReportSummary, error)
	GetCategoryReport(start, end time.Time) ([]CategoryReportRow, error)
}

// ExportResult contains the download metadata for an exported report.
type ExportResult struct {
	FileURL  string `json:"file_url"`
	Filename string `json:"filename"`
}

// ExportServicer defines the contract for report export.
type ExportServicer interface {
	ExportReport(start, end time.Time) (*ExportResult, error)
}
