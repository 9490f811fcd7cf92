package services

import (
	"reflect"
	"testing"
	"time"

	"idkmybudget/internal/models"
	"idkmybudget/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	t.Run("valid_with_defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, "Food", testutil.MustDecimal(t, "1000"), "", models.BudgetAlert{Enabled: true})
		testutil.AssertNoError(t, err)

		if budget.ID == "" {
			t.Fatal("expected non-empty budget ID")
		}
		if budget.Period != models.BudgetPeriodMonthly {
			t.Errorf("expected default monthly period, got %s", budget.Period)
		}
		if budget.Alert.Threshold != models.DefaultAlertThreshold {
			t.Errorf("expected default threshold 80, got %d", budget.Alert.Threshold)
		}
		testutil.AssertDecimalEqual(t, budget.Amount, "1000")
	})

	t.Run("duplicate_category_conflicts_and_writes_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "Food", "1000")

		_, err := svc.CreateBudget(user.ID, "Food", testutil.MustDecimal(t, "500"), models.BudgetPeriodMonthly, models.BudgetAlert{Enabled: true, Threshold: 80})
		testutil.AssertAppError(t, err, "BUDGET_EXISTS")

		var count int64
		if err := db.Model(&models.Budget{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 budget after conflict, got %d", count)
		}
	})

	t.Run("same_category_different_owner_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user1.ID, "Food", "1000")

		_, err := svc.CreateBudget(user2.ID, "Food", testutil.MustDecimal(t, "500"), models.BudgetPeriodMonthly, models.BudgetAlert{Enabled: true, Threshold: 80})
		testutil.AssertNoError(t, err)
	})

	t.Run("negative_amount_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, "Food", testutil.MustDecimal(t, "-10"), models.BudgetPeriodMonthly, models.BudgetAlert{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("zero_amount_accepted_as_degenerate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, "Misc", testutil.MustDecimal(t, "0"), models.BudgetPeriodMonthly, models.BudgetAlert{Enabled: true, Threshold: 80})
		testutil.AssertNoError(t, err)
		if !budget.Amount.IsZero() {
			t.Errorf("expected zero amount, got %s", budget.Amount)
		}
	})
}

func TestGetUserBudgets(t *testing.T) {
	t.Run("ordered_by_category_and_owner_scoped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user1.ID, "Transport", "200")
		testutil.CreateTestBudget(t, db, user1.ID, "Food", "1000")
		testutil.CreateTestBudget(t, db, user2.ID, "Housing", "1500")

		budgets, err := svc.GetUserBudgets(user1.ID)
		testutil.AssertNoError(t, err)

		if len(budgets) != 2 {
			t.Fatalf("expected 2 budgets, got %d", len(budgets))
		}
		if budgets[0].Category != "Food" || budgets[1].Category != "Transport" {
			t.Errorf("expected [Food Transport], got [%s %s]", budgets[0].Category, budgets[1].Category)
		}
	})
}

func TestGetBudgetByID(t *testing.T) {
	t.Run("missing_budget_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetBudgetByID(user.ID, "2f8b0a1e-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("other_owners_budget_is_forbidden_not_missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, owner.ID, "Food", "1000")

		_, err := svc.GetBudgetByID(intruder.ID, budget.ID)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}

func TestUpdateBudget(t *testing.T) {
	t.Run("updates_amount_and_alert", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, "Food", "1000")

		amount := testutil.MustDecimal(t, "1500")
		alert := models.BudgetAlert{Enabled: false, Threshold: 90}
		updated, err := svc.UpdateBudget(user.ID, budget.ID, &amount, nil, &alert)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalEqual(t, updated.Amount, "1500")
		if updated.Alert.Enabled || updated.Alert.Threshold != 90 {
			t.Errorf("expected alert disabled with threshold 90, got %+v", updated.Alert)
		}

		var stored models.Budget
		if err := db.First(&stored, "id = ?", budget.ID).Error; err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		testutil.AssertDecimalEqual(t, stored.Amount, "1500")
	})

	t.Run("not_owner_leaves_record_unchanged", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, owner.ID, "Food", "1000")

		amount := testutil.MustDecimal(t, "1")
		_, err := svc.UpdateBudget(intruder.ID, budget.ID, &amount, nil, nil)
		testutil.AssertAppError(t, err, "FORBIDDEN")

		var stored models.Budget
		if err := db.First(&stored, "id = ?", budget.ID).Error; err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		testutil.AssertDecimalEqual(t, stored.Amount, "1000")
	})
}

func TestDeleteBudget(t *testing.T) {
	t.Run("owner_can_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, "Food", "1000")

		testutil.AssertNoError(t, svc.DeleteBudget(user.ID, budget.ID))

		_, err := svc.GetBudgetByID(user.ID, budget.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("not_owner_cannot_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, owner.ID, "Food", "1000")

		err := svc.DeleteBudget(intruder.ID, budget.ID)
		testutil.AssertAppError(t, err, "FORBIDDEN")

		_, err = svc.GetBudgetByID(owner.ID, budget.ID)
		testutil.AssertNoError(t, err)
	})
}

func TestGetBudgetStatus(t *testing.T) {
	t.Run("warning_at_85_percent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "Food", "1000")
		testutil.CreateTestExpense(t, db, user.ID, "Food", "500.25")
		testutil.CreateTestExpense(t, db, user.ID, "Food", "349.75")

		statuses, err := svc.GetBudgetStatus(user.ID)
		testutil.AssertNoError(t, err)

		if len(statuses) != 1 {
			t.Fatalf("expected 1 status, got %d", len(statuses))
		}
		s := statuses[0]
		testutil.AssertDecimalEqual(t, s.Spent, "850")
		testutil.AssertDecimalEqual(t, s.Remaining, "150")
		if s.Percentage != 85 {
			t.Errorf("expected percentage 85, got %v", s.Percentage)
		}
		if s.Status != ConsumptionWarning {
			t.Errorf("expected warning, got %s", s.Status)
		}
	})

	t.Run("exceeding_above_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "Food", "1000")
		testutil.CreateTestExpense(t, db, user.ID, "Food", "1100")

		statuses, err := svc.GetBudgetStatus(user.ID)
		testutil.AssertNoError(t, err)

		s := statuses[0]
		testutil.AssertDecimalEqual(t, s.Remaining, "-100")
		if s.Percentage != 110 {
			t.Errorf("expected percentage 110, got %v", s.Percentage)
		}
		if s.Status != ConsumptionExceeding {
			t.Errorf("expected exceeding, got %s", s.Status)
		}
	})

	t.Run("zero_spend_is_ok_and_still_listed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "Food", "1000")

		statuses, err := svc.GetBudgetStatus(user.ID)
		testutil.AssertNoError(t, err)

		if len(statuses) != 1 {
			t.Fatalf("expected 1 status, got %d", len(statuses))
		}
		s := statuses[0]
		testutil.AssertDecimalEqual(t, s.Spent, "0")
		testutil.AssertDecimalEqual(t, s.Remaining, "1000")
		if s.Status != ConsumptionOK {
			t.Errorf("expected ok, got %s", s.Status)
		}
	})

	t.Run("exactly_at_budget_is_warning_not_exceeding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "Food", "1000")
		testutil.CreateTestExpense(t, db, user.ID, "Food", "1000")

		statuses, err := svc.GetBudgetStatus(user.ID)
		testutil.AssertNoError(t, err)

		if statuses[0].Status != ConsumptionWarning {
			t.Errorf("expected warning at exactly 100%%, got %s", statuses[0].Status)
		}
	})

	t.Run("zero_amount_budget_is_exceeding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "Misc", "0")
		testutil.CreateTestExpense(t, db, user.ID, "Misc", "5")

		statuses, err := svc.GetBudgetStatus(user.ID)
		testutil.AssertNoError(t, err)

		if statuses[0].Status != ConsumptionExceeding {
			t.Errorf("expected exceeding for zero-amount budget, got %s", statuses[0].Status)
		}
		testutil.AssertDecimalEqual(t, statuses[0].Remaining, "-5")
	})

	t.Run("one_status_per_budget_ordered_by_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "Transport", "200")
		testutil.CreateTestBudget(t, db, user.ID, "Food", "1000")
		// Spend in a category with no budget never shows up.
		testutil.CreateTestExpense(t, db, user.ID, "Entertainment", "50")

		statuses, err := svc.GetBudgetStatus(user.ID)
		testutil.AssertNoError(t, err)

		if len(statuses) != 2 {
			t.Fatalf("expected 2 statuses, got %d", len(statuses))
		}
		if statuses[0].Category != "Food" || statuses[1].Category != "Transport" {
			t.Errorf("expected [Food Transport], got [%s %s]", statuses[0].Category, statuses[1].Category)
		}
	})

	t.Run("other_owners_spend_never_counted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "Food", "1000")
		testutil.CreateTestExpense(t, db, other.ID, "Food", "999")

		statuses, err := svc.GetBudgetStatus(user.ID)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalEqual(t, statuses[0].Spent, "0")
	})

	t.Run("expense_outside_month_excluded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "Food", "1000")
		testutil.CreateTestExpenseAt(t, db, user.ID, "Food", "400", time.Now().AddDate(0, -2, 0))

		statuses, err := svc.GetBudgetStatus(user.ID)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalEqual(t, statuses[0].Spent, "0")
	})

	t.Run("yearly_budget_uses_calendar_year_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudgetWithPeriod(t, db, user.ID, "Travel", "5000", models.BudgetPeriodYearly)

		// Mid-January of the current year: always inside the yearly window.
		now := time.Now()
		jan := time.Date(now.Year(), time.January, 15, 12, 0, 0, 0, now.Location())
		testutil.CreateTestExpenseAt(t, db, user.ID, "Travel", "1200", jan)

		statuses, err := svc.GetBudgetStatus(user.ID)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalEqual(t, statuses[0].Spent, "1200")
	})

	t.Run("idempotent_without_writes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewExpenseService(db))
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "Food", "1000")
		testutil.CreateTestExpense(t, db, user.ID, "Food", "123.45")

		first, err := svc.GetBudgetStatus(user.ID)
		testutil.AssertNoError(t, err)
		second, err := svc.GetBudgetStatus(user.ID)
		testutil.AssertNoError(t, err)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("expected identical results, got %+v then %+v", first, second)
		}
	})
}

func TestEvaluateBudget(t *testing.T) {
	budget := models.Budget{
		Category: "Food",
		Amount:   testutil.MustDecimal(t, "1000"),
		Alert:    models.BudgetAlert{Enabled: true, Threshold: 80},
	}

	cases := []struct {
		name      string
		spent     string
		want      ConsumptionLevel
		remaining string
	}{
		{"well_under", "100", ConsumptionOK, "900"},
		{"just_under_threshold", "799.99", ConsumptionOK, "200.01"},
		{"exactly_at_threshold", "800", ConsumptionWarning, "200"},
		{"at_limit", "1000", ConsumptionWarning, "0"},
		{"just_over_limit", "1000.01", ConsumptionExceeding, "-0.01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := evaluateBudget(budget, testutil.MustDecimal(t, tc.spent))
			if got.Status != tc.want {
				t.Errorf("spent %s: expected %s, got %s", tc.spent, tc.want, got.Status)
			}
			testutil.AssertDecimalEqual(t, got.Remaining, tc.remaining)
		})
	}
}
