package models

import "time"

// Base contains common columns for all tables. IDs are store-assigned
// integer surrogates; CreatedAt is set once on insert and never mutated.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
