package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/storage"
)

// memoryKV is an in-memory storage.KV for tests.
type memoryKV struct {
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string][]byte{}}
}

func (m *memoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return value, nil
}

func (m *memoryKV) Put(ctx context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *memoryKV) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memoryKV) Keys(ctx context.Context) ([]string, error) { return nil, nil }
func (m *memoryKV) Close() error                               { return nil }

func TestLoginCurrentUser(t *testing.T) {
	mgr := NewManager(newMemoryKV(), time.Hour)
	ctx := context.Background()

	require.NoError(t, mgr.Login(ctx, "budi"))

	username, err := mgr.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "budi", username)
}

func TestCurrentUser_NoSession(t *testing.T) {
	mgr := NewManager(newMemoryKV(), time.Hour)

	_, err := mgr.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLogout(t *testing.T) {
	mgr := NewManager(newMemoryKV(), time.Hour)
	ctx := context.Background()

	require.NoError(t, mgr.Login(ctx, "budi"))
	require.NoError(t, mgr.Logout(ctx))

	_, err := mgr.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	// Logging out twice is fine.
	assert.NoError(t, mgr.Logout(ctx))
}

func TestLogin_ReplacesPreviousSession(t *testing.T) {
	mgr := NewManager(newMemoryKV(), time.Hour)
	ctx := context.Background()

	require.NoError(t, mgr.Login(ctx, "budi"))
	require.NoError(t, mgr.Login(ctx, "sari"))

	username, err := mgr.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sari", username)
}

func TestCurrentUser_ExpiredToken(t *testing.T) {
	// Bypass the constructor's TTL default to issue an already-expired token.
	mgr := &Manager{kv: newMemoryKV(), ttl: -time.Minute}
	ctx := context.Background()

	require.NoError(t, mgr.Login(ctx, "budi"))

	_, err := mgr.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestCurrentUser_CorruptSession(t *testing.T) {
	kv := newMemoryKV()
	mgr := NewManager(kv, time.Hour)
	ctx := context.Background()

	kv.data[budget.KeySession] = []byte("garbage")
	_, err := mgr.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestCurrentUser_TamperedToken(t *testing.T) {
	kv := newMemoryKV()
	mgr := NewManager(kv, time.Hour)
	ctx := context.Background()

	require.NoError(t, mgr.Login(ctx, "budi"))

	// Re-signing under a different secret must be rejected.
	delete(kv.data, budget.KeySessionSecret)
	_, err := mgr.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSecret_StableAcrossManagers(t *testing.T) {
	kv := newMemoryKV()
	ctx := context.Background()

	require.NoError(t, NewManager(kv, time.Hour).Login(ctx, "budi"))

	// A new manager over the same store validates the existing session.
	username, err := NewManager(kv, time.Hour).CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "budi", username)
}
