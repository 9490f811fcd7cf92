package models

import "github.com/shopspring/decimal"

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// DefaultAlertThreshold is the percentage of the allowance at which a
// warning fires when the client does not choose one.
const DefaultAlertThreshold = 80

// BudgetAlert holds the alert settings embedded in a budget.
type BudgetAlert struct {
	Enabled   bool `gorm:"column:alert_enabled;default:true" json:"enabled"`
	Threshold int  `gorm:"column:alert_threshold;default:80" json:"threshold"`
}

// Budget represents a per-category spending allowance. At most one live
// budget may exist per (user, category); migrations add a partial unique
// index and the service layer pre-checks before insert.
type Budget struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Category string          `gorm:"not null" json:"category"`
	Amount   decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"amount"`
	Period   BudgetPeriod    `gorm:"not null;default:monthly" json:"period"`
	Alert    BudgetAlert     `gorm:"embedded" json:"alert"`
}
