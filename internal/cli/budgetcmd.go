package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/money"
)

func (c *Cli) runBudget(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: tagihan budget <add|delete|realize|realize-all|bulk>")
	}

	uc, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	switch args[0] {
	case "add":
		return c.runBudgetAdd(ctx, args[1:], uc)

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("missing id. Usage: tagihan budget delete ID")
		}
		if err := uc.store.DeleteBudgetItem(ctx, uc.monthKey, args[1]); err != nil {
			return err
		}
		c.io.Println("✓ deleted")
		return nil

	case "realize":
		if len(args) < 3 {
			return fmt.Errorf("missing arguments. Usage: tagihan budget realize ID AMOUNT")
		}
		amount, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return errors.New(uc.t("requiredFields", nil))
		}
		if err := uc.store.SetRealization(ctx, uc.monthKey, args[1], amount); err != nil {
			return err
		}
		c.io.Println("✓ realization updated")
		return nil

	case "realize-all":
		return c.runBudgetRealizeAll(ctx, args[1:], uc)

	case "bulk":
		return c.runBudgetBulk(ctx, args[1:], uc)

	default:
		return fmt.Errorf("unknown subcommand: %s. Use: add, delete, realize, realize-all, or bulk", args[0])
	}
}

// defaultCategory is the fallback applied when a budget line names no
// category, or names one that is not configured.
func defaultCategory(categories []string) string {
	if len(categories) > 0 {
		return categories[0]
	}
	return "Lainnya"
}

func (c *Cli) runBudgetAdd(ctx context.Context, args []string, uc *userContext) error {
	if len(args) < 2 {
		return errors.New(uc.t("requiredFields", nil))
	}
	name := args[0]
	allocation, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || allocation < 0 || name == "" {
		return errors.New(uc.t("requiredFields", nil))
	}

	category := defaultCategory(uc.settings.Categories)
	if len(args) > 2 {
		category = args[2]
	}

	item, err := uc.store.AddBudgetItem(ctx, uc.monthKey, name, allocation, category)
	if err != nil {
		return err
	}
	c.io.Printf("✓ %s: %s [%s] (%s)\n", item.Name, money.FormatCurrency(float64(item.Allocation)), item.Category, item.ID)
	return nil
}

func (c *Cli) runBudgetRealizeAll(ctx context.Context, args []string, uc *userContext) error {
	if len(args) < 1 {
		return fmt.Errorf("missing percentage. Usage: tagihan budget realize-all PERCENT")
	}
	percentage, err := strconv.ParseFloat(args[0], 64)
	if err != nil || percentage < 0 || percentage > 100 {
		return errors.New(uc.t("invalidPercentage", nil))
	}

	month := uc.store.LoadMonthData(ctx, uc.monthKey)
	if len(month.BudgetingList) == 0 {
		return errors.New(uc.t("noExpensesToUpdate", nil))
	}

	if err := uc.store.SetAllRealizations(ctx, uc.monthKey, percentage); err != nil {
		return err
	}
	c.io.Println(uc.t("bulkRealizationSuccess", nil))
	return nil
}

// runBudgetBulk reads tab-separated NAME\tALLOCATION[\tCATEGORY] lines from a
// file (or stdin) and appends the parseable rows to the current month.
func (c *Cli) runBudgetBulk(ctx context.Context, args []string, uc *userContext) error {
	var input []byte
	var err error
	if len(args) > 0 {
		input, err = os.ReadFile(args[0])
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	items, messages := budget.ParseBudgetLines(string(input), uc.settings.Categories, defaultCategory(uc.settings.Categories), uc.lang)
	for _, msg := range messages {
		c.io.Println(msg)
	}
	if len(items) == 0 {
		return errors.New(uc.t("bulkAddError", nil))
	}

	if err := uc.store.AppendBudgetItems(ctx, uc.monthKey, items); err != nil {
		return err
	}
	c.io.Printf("%s (%d)\n", uc.t("bulkAddSuccess", nil), len(items))
	return nil
}
