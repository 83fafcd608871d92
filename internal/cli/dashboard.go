package cli

import (
	"context"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/money"
)

func (c *Cli) runShow(ctx context.Context) error {
	uc, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	month := uc.store.LoadMonthData(ctx, uc.monthKey)
	summary := budget.Summarize(month)

	c.io.Printf("=== %s: %s %d ===\n", uc.t("appName", nil), uc.settings.CurrentMonth, uc.settings.CurrentYear)
	c.io.Println()
	c.io.Printf("%-20s %s\n", uc.t("totalIncome", nil)+":", money.FormatCurrency(float64(summary.TotalIncome)))
	c.io.Printf("%-20s %s\n", uc.t("budgetedExpenses", nil)+":", money.FormatCurrency(float64(summary.TotalBudgetedExpenses)))
	c.io.Printf("%-20s %s\n", uc.t("totalSpending", nil)+":", money.FormatCurrency(float64(summary.TotalSpending)))
	c.io.Printf("%-20s %s\n", uc.t("totalSavings", nil)+":", money.FormatCurrency(summary.TotalSavings))

	if len(month.IncomeSources) > 0 {
		c.io.Println()
		c.io.Println("Income:")
		for _, income := range month.IncomeSources {
			c.io.Printf("  %-14s %-24s %s\n", income.ID, income.Name, money.FormatCurrency(float64(income.Amount)))
		}
	}

	if len(month.SavingList) > 0 {
		c.io.Println()
		c.io.Println("Savings:")
		for _, saving := range month.SavingList {
			c.io.Printf("  %-14s %-24s %-8s %s\n", saving.ID, saving.Name, saving.Type, money.FormatCurrency(saving.Amount))
		}
	}

	if len(month.BudgetingList) > 0 {
		c.io.Println()
		c.io.Println("Budget:")
		for _, item := range month.BudgetingList {
			c.io.Printf("  %-14s %-24s %-12s %s / %s (%.0f%%)\n",
				item.ID, item.Name, item.Category,
				money.FormatCurrency(float64(item.Realization)),
				money.FormatCurrency(float64(item.Allocation)),
				budget.RealizationPercent(item))
		}
	}

	return nil
}
