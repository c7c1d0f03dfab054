package models

// CategoryKind classifies a category as grouping income or expense transactions.
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

// Category is a named, typed grouping for transactions.
//
// The kind can be changed after creation, but transactions referencing the
// category keep their own independently-set kind; there is no cascading
// re-classification.
type Category struct {
	Base
	Name string       `gorm:"not null" json:"name"`
	Kind CategoryKind `gorm:"type:varchar(16);not null" json:"kind"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}
