package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/models"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/money"
)

func (c *Cli) runSaving(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: tagihan saving <add|delete>")
	}

	uc, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	switch args[0] {
	case "add":
		return c.runSavingAdd(ctx, args[1:], uc)

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("missing id. Usage: tagihan saving delete ID")
		}
		if err := uc.store.DeleteSaving(ctx, uc.monthKey, args[1]); err != nil {
			return err
		}
		c.io.Println("✓ deleted")
		return nil

	default:
		return fmt.Errorf("unknown subcommand: %s. Use: add or delete", args[0])
	}
}

func (c *Cli) runSavingAdd(ctx context.Context, args []string, uc *userContext) error {
	if len(args) < 3 {
		return errors.New(uc.t("requiredFields", nil))
	}

	savingType := models.SavingType(args[0])
	name := args[1]
	if name == "" {
		return errors.New(uc.t("requiredFields", nil))
	}

	var saving models.Saving
	switch savingType {
	case models.SavingTypeMoney:
		amount, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return errors.New(uc.t("requiredFields", nil))
		}
		saving = budget.NewMoneySaving(name, amount)

	case models.SavingTypeGold, models.SavingTypeCrypto, models.SavingTypeStock:
		if len(args) < 4 {
			return errors.New(uc.t("requiredFields", nil))
		}
		quantity, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return errors.New(uc.t("requiredFields", nil))
		}
		pricePerUnit, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return errors.New(uc.t("requiredFields", nil))
		}

		var unit, ticker string
		if len(args) > 4 {
			unit = args[4]
		}
		if len(args) > 5 {
			ticker = args[5]
		}
		saving = budget.NewAssetSaving(name, savingType, quantity, pricePerUnit, unit, ticker, uc.lang)

	default:
		return fmt.Errorf("unknown saving type: %s. Use: money, gold, crypto, or stock", args[0])
	}

	if err := uc.store.AddSaving(ctx, uc.monthKey, saving); err != nil {
		return err
	}
	c.io.Printf("✓ %s: %s (%s)\n", saving.Name, money.FormatCurrency(saving.Amount), saving.ID)
	return nil
}
