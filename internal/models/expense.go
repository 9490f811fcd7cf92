package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SuggestedExpenseCategories are the categories offered by the client UI.
// The category column itself is free-form text, so these are not enforced.
var SuggestedExpenseCategories = []string{
	"Food",
	"Transportation",
	"Housing",
	"Utilities",
	"Entertainment",
	"Healthcare",
	"Shopping",
	"Other",
}

// Expense represents a single expense record. Expenses are immutable once
// created; the only mutation the API offers is deletion by the owner.
type Expense struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Title    string          `gorm:"not null" json:"title"`
	Amount   decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"amount"`
	Category string          `gorm:"not null;index" json:"category"`
	Date     time.Time       `gorm:"not null;index" json:"date"`
}
