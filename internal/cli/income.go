package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/money"
)

func (c *Cli) runIncome(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: tagihan income <add|delete>")
	}

	uc, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			return errors.New(uc.t("requiredFields", nil))
		}
		name := args[1]
		amount, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil || amount < 0 || name == "" {
			return errors.New(uc.t("requiredFields", nil))
		}

		income, err := uc.store.AddIncome(ctx, uc.monthKey, name, amount)
		if err != nil {
			return err
		}
		c.io.Printf("✓ %s: %s (%s)\n", income.Name, money.FormatCurrency(float64(income.Amount)), income.ID)
		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("missing id. Usage: tagihan income delete ID")
		}
		if err := uc.store.DeleteIncome(ctx, uc.monthKey, args[1]); err != nil {
			return err
		}
		c.io.Println("✓ deleted")
		return nil

	default:
		return fmt.Errorf("unknown subcommand: %s. Use: add or delete", args[0])
	}
}
