package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/i18n"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/models"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/session"
)

// userContext is everything an authenticated command needs: the user's
// store, their settings, and the month key they are currently working on.
type userContext struct {
	store    *budget.Store
	settings *models.GlobalSettings
	monthKey string
	lang     string
}

// requireUser resolves the current session into a userContext.
func (c *Cli) requireUser(ctx context.Context) (*userContext, error) {
	username, err := c.sessions.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			return nil, fmt.Errorf("not logged in. Please run 'tagihan login' first")
		}
		return nil, err
	}

	store := budget.NewStore(c.kv, username)
	settings := store.LoadSettings(ctx)

	return &userContext{
		store:    store,
		settings: settings,
		monthKey: budget.MonthKey(settings.CurrentYear, settings.CurrentMonth),
		lang:     settings.Lang,
	}, nil
}

// t translates key for the context's language.
func (uc *userContext) t(key string, vars map[string]string) string {
	return i18n.T(uc.lang, key, vars)
}
