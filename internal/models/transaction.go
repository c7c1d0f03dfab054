package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts serialize as bare JSON numbers rather than quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionKind classifies a transaction as income or expense.
//
// A transaction's kind is set independently of the kind of the category it
// references; the two are not cross-validated.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// Transaction is a single dated financial movement. Amount is a positive
// decimal stored at 2 fractional digits; Date is the user-supplied economic
// date, distinct from the record's CreatedAt.
type Transaction struct {
	Base
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CategoryID  uint            `gorm:"not null" json:"category_id"`
	Kind        TransactionKind `gorm:"type:varchar(16);not null" json:"kind"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// TransactionWithCategory is the read model used by every transaction read
// path: the transaction row joined with its category's name. It is never
// persisted separately.
type TransactionWithCategory struct {
	ID           uint            `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	CategoryID   uint            `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Kind         TransactionKind `json:"kind"`
	CreatedAt    time.Time       `json:"created_at"`
}
