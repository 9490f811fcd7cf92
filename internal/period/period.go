// Package period computes the calendar windows that budget consumption is
// aggregated over. Windows are inclusive on both ends: an expense dated
// exactly at Start or End belongs to the window.
package period

import (
	"time"

	"idkmybudget/internal/models"
)

// Window is a closed time interval [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Month returns the window for the calendar month containing now, in now's
// location: the first instant of day 1 through the last instant of the last
// day.
func Month(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, now.Location())
	return Window{Start: start, End: end}
}

// Year returns the window for the calendar year containing now.
func Year(now time.Time) Window {
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), 12, 31, 23, 59, 59, 999999999, now.Location())
	return Window{Start: start, End: end}
}

// ForBudgetPeriod returns the current window for the given budget period.
// Unknown period values fall back to the monthly window.
func ForBudgetPeriod(p models.BudgetPeriod, now time.Time) Window {
	if p == models.BudgetPeriodYearly {
		return Year(now)
	}
	return Month(now)
}
