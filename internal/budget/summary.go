package budget

import "github.com/jankerzone/tagihan-serampangan-v2/internal/models"

// Summary holds the four dashboard totals for one month.
type Summary struct {
	TotalIncome           int64
	TotalBudgetedExpenses int64
	TotalSpending         int64
	TotalSavings          float64
}

// Summarize computes the dashboard totals: income amounts, budget
// allocations, budget realizations, and savings values.
func Summarize(month *models.MonthData) Summary {
	var s Summary
	for _, income := range month.IncomeSources {
		s.TotalIncome += income.Amount
	}
	for _, item := range month.BudgetingList {
		s.TotalBudgetedExpenses += item.Allocation
		s.TotalSpending += item.Realization
	}
	for _, saving := range month.SavingList {
		s.TotalSavings += saving.Amount
	}
	return s
}

// RealizationPercent returns item realization as a percentage of its
// allocation, or 0 for a zero allocation.
func RealizationPercent(item models.BudgetItem) float64 {
	if item.Allocation == 0 {
		return 0
	}
	return float64(item.Realization) / float64(item.Allocation) * 100
}
