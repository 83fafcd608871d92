package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
)

func (c *Cli) runMonth(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: tagihan month <set|copy-prev>")
	}

	uc, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	switch args[0] {
	case "set":
		if len(args) < 2 {
			return fmt.Errorf("missing month. Usage: tagihan month set MONTH [YEAR]")
		}
		month := args[1]
		if !budget.IsValidMonthName(month) {
			return fmt.Errorf("unknown month: %s", month)
		}

		year := uc.settings.CurrentYear
		if len(args) > 2 {
			year, err = strconv.Atoi(args[2])
			if err != nil || year < 1 {
				return fmt.Errorf("invalid year: %s", args[2])
			}
		}

		uc.settings.CurrentMonth = month
		uc.settings.CurrentYear = year
		if err := uc.store.SaveSettings(ctx, uc.settings); err != nil {
			return err
		}
		c.io.Printf("✓ Working month: %s %d (%s)\n", month, year, budget.MonthKey(year, month))
		return nil

	case "copy-prev":
		if err := uc.store.CopyFromPreviousMonth(ctx, uc.monthKey); err != nil {
			if errors.Is(err, budget.ErrEmptyPreviousMonth) {
				return errors.New(uc.t("copyError", nil))
			}
			return err
		}
		c.io.Println(uc.t("copySuccess", nil))
		return nil

	default:
		return fmt.Errorf("unknown subcommand: %s. Use: set or copy-prev", args[0])
	}
}
