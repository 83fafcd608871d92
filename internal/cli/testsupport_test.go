package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/crypto"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/session"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/storage"
)

// fakeIO scripts terminal input and records everything printed.
type fakeIO struct {
	lines     []string
	inputs    []string
	passwords []string
	confirms  []bool
}

func (f *fakeIO) Println(a ...any) {
	f.lines = append(f.lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
}

func (f *fakeIO) Printf(format string, a ...any) {
	f.lines = append(f.lines, fmt.Sprintf(format, a...))
}

func (f *fakeIO) ReadInput(prompt string) (string, error) {
	if len(f.inputs) == 0 {
		return "", io.EOF
	}
	v := f.inputs[0]
	f.inputs = f.inputs[1:]
	return v, nil
}

func (f *fakeIO) ReadPassword(prompt string) (string, error) {
	if len(f.passwords) == 0 {
		return "", io.EOF
	}
	v := f.passwords[0]
	f.passwords = f.passwords[1:]
	return v, nil
}

func (f *fakeIO) Confirm(prompt string) (bool, error) {
	if len(f.confirms) == 0 {
		return false, io.EOF
	}
	v := f.confirms[0]
	f.confirms = f.confirms[1:]
	return v, nil
}

func (f *fakeIO) output() string {
	return strings.Join(f.lines, "\n")
}

// memoryKV is an in-memory storage.KV for command tests.
type memoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return value, nil
}

func (m *memoryKV) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryKV) Keys(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *memoryKV) Close() error { return nil }

// newTestCli builds a Cli against in-memory storage with budi already
// registered and logged in.
func newTestCli(t *testing.T) (*Cli, *fakeIO) {
	t.Helper()

	ctx := context.Background()
	kv := newMemoryKV()
	fio := &fakeIO{}
	users := budget.NewUserStore(kv, crypto.SchemeSHA256)
	sessions := session.NewManager(kv, time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, users.Register(ctx, "budi", "rahasia"))
	require.NoError(t, sessions.Login(ctx, "budi"))
	_, err := budget.NewStore(kv, "budi").EnsureProfile(ctx)
	require.NoError(t, err)

	return New(fio, kv, users, sessions, logger), fio
}
