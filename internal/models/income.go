package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringFrequency represents how often a recurring income repeats.
type RecurringFrequency string

const (
	RecurringWeekly  RecurringFrequency = "weekly"
	RecurringMonthly RecurringFrequency = "monthly"
	RecurringYearly  RecurringFrequency = "yearly"
)

// Income represents an income entry. The recurrence fields are descriptive
// metadata only; the server never generates future entries from them.
type Income struct {
	Base
	UserID             string             `gorm:"type:uuid;not null;index" json:"user_id"`
	Title              string             `gorm:"not null" json:"title"`
	Amount             decimal.Decimal    `gorm:"type:decimal(20,8);not null" json:"amount"`
	Category           string             `gorm:"not null" json:"category"`
	Date               time.Time          `gorm:"not null;index" json:"date"`
	Recurring          bool               `gorm:"default:false" json:"recurring"`
	RecurringFrequency RecurringFrequency `gorm:"default:monthly" json:"recurring_frequency"`
}
