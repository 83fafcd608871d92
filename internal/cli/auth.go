package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/i18n"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/session"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/validation"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirm {
		return errors.New(i18n.T("en", "passwordsMismatch", nil))
	}

	if err := c.users.Register(ctx, username, password); err != nil {
		if errors.Is(err, budget.ErrUserExists) {
			return errors.New(i18n.T("en", "usernameExists", nil))
		}
		return err
	}

	if err := c.sessions.Login(ctx, username); err != nil {
		return err
	}
	if _, err := budget.NewStore(c.kv, username).EnsureProfile(ctx); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ " + i18n.T("en", "passwordSetSuccess", nil))
	c.io.Printf("Logged in as %s\n", username)
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if username == "" || password == "" {
		return errors.New(i18n.T("en", "requiredFields", nil))
	}

	// Unknown username and wrong password are reported identically.
	if !c.users.Verify(ctx, username, password) {
		return errors.New(i18n.T("en", "loginFailed", nil))
	}

	if err := c.sessions.Login(ctx, username); err != nil {
		return err
	}
	if _, err := budget.NewStore(c.kv, username).EnsureProfile(ctx); err != nil {
		return err
	}

	c.io.Println("✓ " + i18n.T("en", "loginSuccess", nil))
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.sessions.Logout(ctx); err != nil {
		return err
	}
	c.io.Println(i18n.T("en", "logoutSuccess", nil))
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	username, err := c.sessions.CurrentUser(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNotAuthenticated) {
			return err
		}
		c.io.Println("Not logged in.")
		if c.users.Count(ctx) == 0 {
			c.io.Println("No accounts exist yet. Run 'tagihan register' to create one.")
		} else {
			c.io.Println("Run 'tagihan login' to log in.")
		}
		return nil
	}

	store := budget.NewStore(c.kv, username)
	settings := store.LoadSettings(ctx)

	c.io.Printf("Logged in as: %s\n", username)
	if profile := store.LoadProfile(ctx); profile != nil {
		c.io.Printf("Display name: %s\n", profile.Name)
	}
	c.io.Printf("Working month: %s %d (%s)\n",
		settings.CurrentMonth, settings.CurrentYear,
		budget.MonthKey(settings.CurrentYear, settings.CurrentMonth))
	c.io.Printf("Language: %s\n", settings.Lang)
	return nil
}
