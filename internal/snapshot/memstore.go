package snapshot

import (
	"context"
	"sync"
)

// memstore is the in-memory Store used when no Redis is configured.
type memstore struct {
	mu  sync.Mutex
	rec *Record
}

// NewMemoryStore returns a Store backed by process memory.
func NewMemoryStore() Store {
	return &memstore{}
}

func (m *memstore) Save(ctx context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *rec
	cp.Captures = append([]string(nil), rec.Captures...)
	m.rec = &cp
	return nil
}

func (m *memstore) Load(ctx context.Context) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return nil, nil
	}
	cp := *m.rec
	cp.Captures = append([]string(nil), m.rec.Captures...)
	return &cp, nil
}

func (m *memstore) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.rec = nil
	m.mu.Unlock()
	return nil
}

func (m *memstore) Close() error { return nil }
