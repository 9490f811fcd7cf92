package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "idkmybudget/internal/errors"
	"idkmybudget/internal/models"
	"idkmybudget/internal/period"
)

var hundred = decimal.NewFromInt(100)

// budgetService handles budget-related business logic.
type budgetService struct {
	db             *gorm.DB
	expenseService ExpenseServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, expenseService ExpenseServicer) BudgetServicer {
	return &budgetService{db: db, expenseService: expenseService}
}

// CreateBudget creates a budget for a category the user has not budgeted
// yet. The pre-check mirrors the API contract; the store-level unique index
// on (user_id, category) closes the race between concurrent duplicates, and
// a translated duplicate-key error maps to the same conflict.
func (s *budgetService) CreateBudget(userID, category string, amount decimal.Decimal, budgetPeriod models.BudgetPeriod, alert models.BudgetAlert) (*models.Budget, error) {
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if amount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if budgetPeriod == "" {
		budgetPeriod = models.BudgetPeriodMonthly
	}
	if alert.Threshold == 0 {
		alert.Threshold = models.DefaultAlertThreshold
	}

	var count int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND category = ?", userID, category).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrBudgetExists
	}

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Period:   budgetPeriod,
		Alert:    alert,
	}

	if err := s.db.Create(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrBudgetExists
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns all of the user's budgets, category ascending.
func (s *budgetService) GetUserBudgets(userID string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.
		Where("user_id = ?", userID).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user. The lookup
// is by ID alone so "absent" (404) and "not yours" (403) stay distinct.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.First(&budget, "id = ?", budgetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if budget.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}
	return &budget, nil
}

// UpdateBudget updates an existing budget's amount, period, or alert settings.
// The category is fixed for the budget's lifetime.
func (s *budgetService) UpdateBudget(userID, budgetID string, amount *decimal.Decimal, budgetPeriod *models.BudgetPeriod, alert *models.BudgetAlert) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if amount != nil {
		if amount.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		updates["amount"] = *amount
		budget.Amount = *amount
	}
	if budgetPeriod != nil {
		updates["period"] = *budgetPeriod
		budget.Period = *budgetPeriod
	}
	if alert != nil {
		updates["alert_enabled"] = alert.Enabled
		updates["alert_threshold"] = alert.Threshold
		budget.Alert = *alert
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return budget, nil
}

// DeleteBudget removes a budget owned by the user. Budgets are never removed
// implicitly when a category's expenses disappear.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBudgetStatus computes one consumption report per budget the user owns,
// against the current period window. Spend is aggregated once per distinct
// period actually present among the budgets. The report is recomputed on
// every call and never cached.
func (s *budgetService) GetBudgetStatus(userID string) ([]BudgetStatus, error) {
	var budgets []models.Budget
	if err := s.db.
		Where("user_id = ?", userID).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	now := time.Now()
	spendByPeriod := make(map[models.BudgetPeriod]map[string]decimal.Decimal)

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		spend, ok := spendByPeriod[budget.Period]
		if !ok {
			agg, err := s.expenseService.AggregateSpend(userID, period.ForBudgetPeriod(budget.Period, now))
			if err != nil {
				return nil, err
			}
			spendByPeriod[budget.Period] = agg
			spend = agg
		}

		statuses = append(statuses, evaluateBudget(budget, spend[budget.Category]))
	}

	return statuses, nil
}

// evaluateBudget classifies a single budget against the spend aggregated for
// its category. Comparisons run in decimal so threshold boundaries are
// exact; the reported percentage is a float for the JSON surface.
func evaluateBudget(budget models.Budget, spent decimal.Decimal) BudgetStatus {
	status := BudgetStatus{
		Category:     budget.Category,
		BudgetAmount: budget.Amount,
		Spent:        spent,
		Remaining:    budget.Amount.Sub(spent),
		Status:       ConsumptionOK,
		Alert:        budget.Alert,
	}

	if budget.Amount.IsZero() {
		// Degenerate budget: any consumption ratio is unbounded. JSON has
		// no +Inf, so the percentage stays 0 while the status reports the
		// classification.
		status.Status = ConsumptionExceeding
		return status
	}

	status.Percentage = spent.Mul(hundred).Div(budget.Amount).InexactFloat64()

	threshold := decimal.NewFromInt(int64(budget.Alert.Threshold))
	switch {
	case spent.Cmp(budget.Amount) > 0:
		status.Status = ConsumptionExceeding
	case spent.Mul(hundred).Cmp(budget.Amount.Mul(threshold)) >= 0:
		status.Status = ConsumptionWarning
	}

	return status
}
