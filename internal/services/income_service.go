package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "idkmybudget/internal/errors"
	"idkmybudget/internal/models"
	"idkmybudget/internal/pagination"
)

// incomeService handles income-related business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncome records a new income entry for the user.
func (s *incomeService) CreateIncome(userID, title string, amount decimal.Decimal, category string, date time.Time, recurring bool, frequency models.RecurringFrequency) (*models.Income, error) {
	if title == "" || category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and category are required")
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if date.IsZero() {
		date = time.Now()
	}
	if frequency == "" {
		frequency = models.RecurringMonthly
	}

	income := &models.Income{
		UserID:             userID,
		Title:              title,
		Amount:             amount,
		Category:           category,
		Date:               date,
		Recurring:          recurring,
		RecurringFrequency: frequency,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return income, nil
}

// GetUserIncomes returns a paginated list of the user's income entries, newest first.
func (s *incomeService) GetUserIncomes(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	base := s.db.Model(&models.Income{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateIncome replaces the mutable fields of an income entry owned by the user.
func (s *incomeService) UpdateIncome(userID, incomeID, title string, amount decimal.Decimal, category string, date time.Time, recurring bool, frequency models.RecurringFrequency) (*models.Income, error) {
	income, err := s.getOwnedIncome(userID, incomeID)
	if err != nil {
		return nil, err
	}

	if title == "" || category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and category are required")
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if date.IsZero() {
		date = income.Date
	}
	if frequency == "" {
		frequency = income.RecurringFrequency
	}

	updates := map[string]interface{}{
		"title":               title,
		"amount":              amount,
		"category":            category,
		"date":                date,
		"recurring":           recurring,
		"recurring_frequency": frequency,
	}
	if err := s.db.Model(income).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return income, nil
}

// DeleteIncome removes an income entry owned by the user.
func (s *incomeService) DeleteIncome(userID, incomeID string) error {
	income, err := s.getOwnedIncome(userID, incomeID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// getOwnedIncome loads an income entry by ID and checks ownership, keeping
// "absent" and "not yours" distinct.
func (s *incomeService) getOwnedIncome(userID, incomeID string) (*models.Income, error) {
	var income models.Income
	if err := s.db.First(&income, "id = ?", incomeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if income.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}
	return &income, nil
}
