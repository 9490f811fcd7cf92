package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "idkmybudget/internal/errors"
	"idkmybudget/internal/models"
	"idkmybudget/internal/pagination"
	"idkmybudget/internal/period"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records a new expense for the user. Expenses are immutable
// after creation; there is no update path.
func (s *expenseService) CreateExpense(userID, title string, amount decimal.Decimal, category string, date time.Time) (*models.Expense, error) {
	if title == "" || category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and category are required")
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if date.IsZero() {
		date = time.Now()
	}

	expense := &models.Expense{
		UserID:   userID,
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetUserExpenses returns a paginated list of the user's expenses, newest first.
func (s *expenseService) GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteExpense removes an expense owned by the user. A missing record and a
// record owned by someone else produce different errors.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.getOwnedExpense(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// getOwnedExpense loads an expense by ID and checks ownership. The record is
// looked up by ID alone so that "absent" and "not yours" stay distinct.
func (s *expenseService) getOwnedExpense(userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, "id = ?", expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if expense.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}
	return &expense, nil
}

// AggregateSpend sums the user's expenses inside the window, grouped by
// category. The window bounds are inclusive. Summation folds decimals in
// process so totals stay exact regardless of how many rows contribute.
func (s *expenseService) AggregateSpend(userID string, window period.Window) (map[string]decimal.Decimal, error) {
	var expenses []models.Expense
	err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, window.Start, window.End).
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	totals := make(map[string]decimal.Decimal, len(expenses))
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals, nil
}
