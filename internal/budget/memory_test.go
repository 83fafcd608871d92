package budget

import (
	"context"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/storage"
)

// memoryKV is an in-memory storage.KV for tests.
type memoryKV struct {
	data map[string][]byte
}

var _ storage.KV = (*memoryKV)(nil)

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

func (m *memoryKV) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *memoryKV) Close() error { return nil }
