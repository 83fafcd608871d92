package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/validation"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: tagihan profile <show|name|avatar|password>")
	}

	uc, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	switch args[0] {
	case "show":
		profile, err := uc.store.EnsureProfile(ctx)
		if err != nil {
			return err
		}
		c.io.Printf("Username: %s\n", uc.store.Username())
		c.io.Printf("Name:     %s\n", profile.Name)
		c.io.Printf("Avatar:   %s\n", profile.Avatar)
		return nil

	case "name":
		if len(args) < 2 || args[1] == "" {
			return errors.New(uc.t("requiredFields", nil))
		}
		profile, err := uc.store.EnsureProfile(ctx)
		if err != nil {
			return err
		}
		profile.Name = args[1]
		if err := uc.store.SaveProfile(ctx, profile); err != nil {
			return err
		}
		c.io.Println(uc.t("nameUpdated", nil))
		return nil

	case "avatar":
		profile, err := uc.store.EnsureProfile(ctx)
		if err != nil {
			return err
		}
		// A fresh timestamp seed gives a new random-looking avatar each time.
		profile.Avatar = budget.DefaultAvatarURL(strconv.FormatInt(time.Now().UnixMilli(), 10))
		if err := uc.store.SaveProfile(ctx, profile); err != nil {
			return err
		}
		c.io.Println(uc.t("avatarUpdated", nil))
		c.io.Println(profile.Avatar)
		return nil

	case "password":
		return c.runProfilePassword(ctx, uc)

	default:
		return fmt.Errorf("unknown subcommand: %s. Use: show, name, avatar, or password", args[0])
	}
}

func (c *Cli) runProfilePassword(ctx context.Context, uc *userContext) error {
	current, err := c.io.ReadPassword("Current password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	next, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(next); err != nil {
		return err
	}
	confirm, err := c.io.ReadPassword("Confirm new password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if next != confirm {
		return errors.New(uc.t("passwordsMismatch", nil))
	}

	if err := c.users.ChangePassword(ctx, uc.store.Username(), current, next); err != nil {
		if errors.Is(err, budget.ErrInvalidCredentials) {
			return errors.New(uc.t("invalidCurrentPassword", nil))
		}
		return fmt.Errorf("%s: %w", uc.t("passwordUpdateFailed", nil), err)
	}
	c.io.Println(uc.t("passwordUpdated", nil))
	return nil
}
