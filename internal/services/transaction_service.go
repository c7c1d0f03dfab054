package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// transactionWithCategoryColumns selects a transaction row joined with its
// category name, matching models.TransactionWithCategory.
const transactionWithCategoryColumns = "transactions.id, transactions.amount, transactions.description, " +
	"transactions.date, transactions.category_id, categories.name AS category_name, " +
	"transactions.kind, transactions.created_at"

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction creates a new transaction referencing an existing
// category. The amount is stored at 2 fractional digits; the returned row is
// re-read from the store joined with the category name.
func (s *transactionService) CreateTransaction(
	amount decimal.Decimal,
	description string,
	date time.Time,
	categoryID uint,
	kind models.TransactionKind,
) (*models.TransactionWithCategory, error) {
	if amount.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}

	transaction := &models.Transaction{
		Amount:      amount.Round(2),
		Description: description,
		Date:        date,
		CategoryID:  categoryID,
		Kind:        kind,
	}

	// The category existence check and the insert share one store
	// transaction; a failed check persists no row.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkCategoryExists(tx, categoryID); err != nil {
			return err
		}
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.getTransactionWithCategory(transaction.ID)
}

// GetTransactions retrieves transactions joined with their category names,
// with each supplied filter predicate applied conjunctively. Rows are ordered
// by date ascending.
func (s *transactionService) GetTransactions(filter TransactionFilter) ([]models.TransactionWithCategory, error) {
	base := s.db.Table("transactions").
		Select(transactionWithCategoryColumns).
		Joins("JOIN categories ON categories.id = transactions.category_id")
	base = applyTransactionFilters(base, filter)

	var transactions []models.TransactionWithCategory
	if err := base.Order("transactions.date ASC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.StartDate != nil {
		q = q.Where("transactions.date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("transactions.date <= ?", *f.EndDate)
	}
	if f.Kind != nil {
		q = q.Where("transactions.kind = ?", *f.Kind)
	}
	if f.CategoryID != nil {
		q = q.Where("transactions.category_id = ?", *f.CategoryID)
	}
	return q
}

// UpdateTransaction applies the supplied fields to an existing transaction.
// A supplied category ID is re-validated against the category table before
// the write. The returned row is always re-read from the store after the
// write, never merged in memory.
func (s *transactionService) UpdateTransaction(transactionID uint, fields TransactionUpdateFields) (*models.TransactionWithCategory, error) {
	updates := make(map[string]interface{})
	if fields.Amount != nil {
		if fields.Amount.Sign() <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = fields.Amount.Round(2)
	}
	if fields.Description != nil {
		if *fields.Description == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description cannot be empty")
		}
		updates["description"] = *fields.Description
	}
	if fields.Date != nil {
		updates["date"] = *fields.Date
	}
	if fields.CategoryID != nil {
		updates["category_id"] = *fields.CategoryID
	}
	if fields.Kind != nil {
		updates["kind"] = *fields.Kind
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var transaction models.Transaction
		if err := tx.First(&transaction, transactionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.WithMessage(apperrors.ErrTransactionNotFound,
					fmt.Sprintf("Transaction %d not found", transactionID))
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if fields.CategoryID != nil {
			if err := checkCategoryExists(tx, *fields.CategoryID); err != nil {
				return err
			}
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&transaction).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.getTransactionWithCategory(transactionID)
}

// DeleteTransaction removes a transaction. Deleting an absent or already
// deleted ID is not an error; it reports false.
func (s *transactionService) DeleteTransaction(transactionID uint) (bool, error) {
	result := s.db.Delete(&models.Transaction{}, transactionID)
	if result.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// checkCategoryExists fails with CATEGORY_NOT_FOUND naming the offending ID.
func checkCategoryExists(db *gorm.DB, categoryID uint) error {
	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.WithMessage(apperrors.ErrCategoryNotFound,
				fmt.Sprintf("Category %d not found", categoryID))
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// getTransactionWithCategory re-reads a transaction joined with its category name.
func (s *transactionService) getTransactionWithCategory(transactionID uint) (*models.TransactionWithCategory, error) {
	var row models.TransactionWithCategory
	err := s.db.Table("transactions").
		Select(transactionWithCategoryColumns).
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.id = ?", transactionID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrTransactionNotFound,
				fmt.Sprintf("Transaction %d not found", transactionID))
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &row, nil
}
