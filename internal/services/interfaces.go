package services

import (
	"time"

	"github.com/shopspring/decimal"

	"idkmybudget/internal/models"
	"idkmybudget/internal/pagination"
	"idkmybudget/internal/period"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID, title string, amount decimal.Decimal, category string, date time.Time) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	DeleteExpense(userID, expenseID string) error
	// AggregateSpend sums the user's expense amounts inside the window,
	// grouped by category. Categories without expenses in the window are
	// absent from the result.
	AggregateSpend(userID string, window period.Window) (map[string]decimal.Decimal, error)
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	CreateIncome(userID, title string, amount decimal.Decimal, category string, date time.Time, recurring bool, frequency models.RecurringFrequency) (*models.Income, error)
	GetUserIncomes(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
	UpdateIncome(userID, incomeID, title string, amount decimal.Decimal, category string, date time.Time, recurring bool, frequency models.RecurringFrequency) (*models.Income, error)
	DeleteIncome(userID, incomeID string) error
}

// ConsumptionLevel classifies how much of a budget's allowance is spent.
type ConsumptionLevel string

const (
	ConsumptionOK        ConsumptionLevel = "ok"
	ConsumptionWarning   ConsumptionLevel = "warning"
	ConsumptionExceeding ConsumptionLevel = "exceeding"
)

// BudgetStatus is the derived, per-request consumption report for one
// budget. It is never persisted.
type BudgetStatus struct {
	Category     string             `json:"category"`
	BudgetAmount decimal.Decimal    `json:"budget_amount"`
	Spent        decimal.Decimal    `json:"spent"`
	Percentage   float64            `json:"percentage"`
	Remaining    decimal.Decimal    `json:"remaining"`
	Status       ConsumptionLevel   `json:"status"`
	Alert        models.BudgetAlert `json:"alert"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, category string, amount decimal.Decimal, budgetPeriod models.BudgetPeriod, alert models.BudgetAlert) (*models.Budget, error)
	GetUserBudgets(userID string) ([]models.Budget, error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, amount *decimal.Decimal, budgetPeriod *models.BudgetPeriod, alert *models.BudgetAlert) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
	// GetBudgetStatus returns one status per budget the user owns, ordered
	// by category ascending, computed against the current period window.
	GetBudgetStatus(userID string) ([]BudgetStatus, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
