package storage

import (
	"context"
	"sync"

	"github.com/litoraledu/gestordoc/internal/common"
)

// MemorySubstrate keeps blobs in a map. Used in tests and as a scratch
// substrate when no durability is wanted.
type MemorySubstrate struct {
	mu   sync.RWMutex
	data map[string][]byte

	// SetCalls counts successful Set invocations so tests can assert the
	// persist-on-every-mutation contract.
	SetCalls int
}

func NewMemorySubstrate() *MemorySubstrate {
	return &MemorySubstrate{data: make(map[string][]byte)}
}

func (m *MemorySubstrate) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemorySubstrate) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	m.SetCalls++
	return nil
}
