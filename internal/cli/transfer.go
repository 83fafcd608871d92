package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
)

func (c *Cli) runExport(ctx context.Context, args []string) error {
	uc, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	month := uc.store.LoadMonthData(ctx, uc.monthKey)
	data, err := budget.ExportMonth(uc.monthKey, month)
	if err != nil {
		return fmt.Errorf("%s: %w", uc.t("exportError", nil), err)
	}

	path := budget.ExportFilename(uc.monthKey)
	if len(args) > 0 {
		path = args[0]
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("%s: %w", uc.t("exportError", nil), err)
	}

	c.io.Printf("%s: %s\n", uc.t("exportSuccess", nil), path)
	return nil
}

func (c *Cli) runImport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing file. Usage: tagihan import FILE")
	}

	uc, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	month, err := budget.ParseImport(data)
	if err != nil {
		if errors.Is(err, budget.ErrImportTooLarge) {
			return errors.New(uc.t("fileTooLarge", nil))
		}
		return errors.New(uc.t("invalidJsonFile", nil))
	}

	ok, err := c.io.Confirm(uc.t("confirmOverwrite", nil))
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Aborted.")
		return nil
	}

	if err := uc.store.SaveMonthData(ctx, uc.monthKey, month); err != nil {
		return err
	}
	c.io.Println(uc.t("importSuccess", nil))
	return nil
}
