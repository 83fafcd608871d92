package cli

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/crypto"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/session"
)

func newEmptyCli(fio *fakeIO) *Cli {
	kv := newMemoryKV()
	users := budget.NewUserStore(kv, crypto.SchemeSHA256)
	sessions := session.NewManager(kv, time.Hour)
	return New(fio, kv, users, sessions, slog.Default())
}

func TestRunRegister_CreatesAccountAndLogsIn(t *testing.T) {
	ctx := context.Background()
	fio := &fakeIO{
		inputs:    []string{"siti"},
		passwords: []string{"rahasia1", "rahasia1"},
	}
	c := newEmptyCli(fio)

	require.NoError(t, c.runRegister(ctx))
	assert.Contains(t, fio.output(), "Account created successfully")

	username, err := c.sessions.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "siti", username)

	// The default profile exists right after registration.
	profile := budget.NewStore(c.kv, "siti").LoadProfile(ctx)
	require.NotNil(t, profile)
	assert.Equal(t, "siti", profile.Name)
}

func TestRunRegister_PasswordMismatch(t *testing.T) {
	ctx := context.Background()
	fio := &fakeIO{
		inputs:    []string{"siti"},
		passwords: []string{"rahasia1", "rahasia2"},
	}
	c := newEmptyCli(fio)

	err := c.runRegister(ctx)
	require.Error(t, err)
	assert.Equal(t, "Passwords do not match", err.Error())
	assert.Zero(t, c.users.Count(ctx))
}

func TestRunRegister_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	fio := &fakeIO{
		inputs:    []string{"siti"},
		passwords: []string{"rahasia1", "rahasia1"},
	}
	c := newEmptyCli(fio)
	require.NoError(t, c.users.Register(ctx, "siti", "lainnya"))

	err := c.runRegister(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Username already exists")
}

func TestRunRegister_InvalidUsername(t *testing.T) {
	ctx := context.Background()
	fio := &fakeIO{
		inputs:    []string{"s!"},
		passwords: []string{"rahasia1", "rahasia1"},
	}
	c := newEmptyCli(fio)

	require.Error(t, c.runRegister(ctx))
}

func TestRunLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	fio := &fakeIO{
		inputs:    []string{"siti"},
		passwords: []string{"salah"},
	}
	c := newEmptyCli(fio)
	require.NoError(t, c.users.Register(ctx, "siti", "rahasia1"))

	err := c.runLogin(ctx)
	require.Error(t, err)
	assert.Equal(t, "Invalid username or password", err.Error())
}

func TestRunLogin_UnknownUserSameError(t *testing.T) {
	ctx := context.Background()
	fio := &fakeIO{
		inputs:    []string{"tidak-ada"},
		passwords: []string{"apapun"},
	}
	c := newEmptyCli(fio)

	err := c.runLogin(ctx)
	require.Error(t, err)
	assert.Equal(t, "Invalid username or password", err.Error())
}

func TestRunStatus_LoggedOut(t *testing.T) {
	ctx := context.Background()
	fio := &fakeIO{}
	c := newEmptyCli(fio)

	require.NoError(t, c.runStatus(ctx))
	out := fio.output()
	assert.Contains(t, out, "Not logged in")
	assert.Contains(t, out, "register")
}

func TestRunStatus_LoggedIn(t *testing.T) {
	ctx := context.Background()
	c, fio := newTestCli(t)

	require.NoError(t, c.runStatus(ctx))
	out := fio.output()
	assert.Contains(t, out, "budi")
	assert.Contains(t, out, "Working month")
}

func TestRunLogout(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCli(t)

	require.NoError(t, c.runLogout(ctx))
	_, err := c.sessions.CurrentUser(ctx)
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
}
