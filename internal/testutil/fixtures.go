package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"idkmybudget/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// MustDecimal parses a decimal string, failing the test on bad input.
func MustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense dated now.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, category, amount string) *models.Expense {
	t.Helper()
	return CreateTestExpenseAt(t, db, userID, category, amount, time.Now())
}

// CreateTestExpenseAt creates an expense with the given date.
func CreateTestExpenseAt(t *testing.T, db *gorm.DB, userID, category, amount string, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Expense %d", nextID()),
		Amount:   MustDecimal(t, amount),
		Category: category,
		Date:     date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome creates a non-recurring income entry dated now.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID, category, amount string) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID:             userID,
		Title:              fmt.Sprintf("Test Income %d", nextID()),
		Amount:             MustDecimal(t, amount),
		Category:           category,
		Date:               time.Now(),
		RecurringFrequency: models.RecurringMonthly,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestBudget creates a monthly budget with the default alert settings.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, category, amount string) *models.Budget {
	t.Helper()
	return CreateTestBudgetWithPeriod(t, db, userID, category, amount, models.BudgetPeriodMonthly)
}

// CreateTestBudgetWithPeriod creates a budget with the given period.
func CreateTestBudgetWithPeriod(t *testing.T, db *gorm.DB, userID, category, amount string, period models.BudgetPeriod) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   MustDecimal(t, amount),
		Period:   period,
		Alert:    models.BudgetAlert{Enabled: true, Threshold: models.DefaultAlertThreshold},
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
