package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
)

func (c *Cli) runSettings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: tagihan settings <show|lang|color>")
	}

	uc, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	switch args[0] {
	case "show":
		c.io.Printf("Month:      %s %d (%s)\n", uc.settings.CurrentMonth, uc.settings.CurrentYear, uc.monthKey)
		c.io.Printf("Language:   %s\n", uc.settings.Lang)
		c.io.Printf("Categories: %s\n", strings.Join(uc.settings.Categories, ", "))
		c.io.Println("Colors:")
		c.io.Printf("  income:            %s\n", uc.settings.Colors.Income)
		c.io.Printf("  budgeted_expenses: %s\n", uc.settings.Colors.BudgetedExpenses)
		c.io.Printf("  spending:          %s\n", uc.settings.Colors.Spending)
		c.io.Printf("  savings:           %s\n", uc.settings.Colors.Savings)
		return nil

	case "lang":
		if len(args) < 2 {
			return fmt.Errorf("missing language. Usage: tagihan settings lang en|id")
		}
		lang := args[1]
		if lang != "en" && lang != "id" {
			return fmt.Errorf("unsupported language: %s. Use: en or id", lang)
		}
		uc.settings.Lang = lang
		if err := uc.store.SaveSettings(ctx, uc.settings); err != nil {
			return err
		}
		c.io.Printf("✓ Language: %s\n", lang)
		return nil

	case "color":
		if len(args) < 3 {
			return fmt.Errorf("missing arguments. Usage: tagihan settings color PANEL TOKEN")
		}
		panel, token := args[1], args[2]
		switch panel {
		case "income":
			uc.settings.Colors.Income = token
		case "budgeted_expenses":
			uc.settings.Colors.BudgetedExpenses = token
		case "spending":
			uc.settings.Colors.Spending = token
		case "savings":
			uc.settings.Colors.Savings = token
		default:
			return fmt.Errorf("unknown panel: %s. Use: income, budgeted_expenses, spending, or savings", panel)
		}
		if err := uc.store.SaveSettings(ctx, uc.settings); err != nil {
			return err
		}
		c.io.Printf("✓ %s: %s\n", panel, token)
		return nil

	default:
		return fmt.Errorf("unknown subcommand: %s. Use: show, lang, or color", args[0])
	}
}

func (c *Cli) runCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: tagihan category <add|rename|delete>")
	}

	uc, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return errors.New(uc.t("requiredFields", nil))
		}
		if err := uc.store.AddCategory(ctx, args[1]); err != nil {
			if errors.Is(err, budget.ErrCategoryExists) {
				return errors.New(uc.t("categoryExists", nil))
			}
			return err
		}
		c.io.Println(uc.t("categoryAdded", nil))
		return nil

	case "rename":
		if len(args) < 3 {
			return fmt.Errorf("missing arguments. Usage: tagihan category rename OLD NEW")
		}
		if err := uc.store.RenameCategory(ctx, args[1], args[2]); err != nil {
			if errors.Is(err, budget.ErrCategoryExists) {
				return errors.New(uc.t("categoryExists", nil))
			}
			return err
		}
		c.io.Println(uc.t("categoryUpdated", nil))
		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("missing name. Usage: tagihan category delete NAME")
		}
		if err := uc.store.DeleteCategory(ctx, args[1]); err != nil {
			return err
		}
		c.io.Println(uc.t("categoryDeleted", nil))
		return nil

	default:
		return fmt.Errorf("unknown subcommand: %s. Use: add, rename, or delete", args[0])
	}
}
