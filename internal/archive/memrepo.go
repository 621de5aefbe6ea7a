package archive

import (
	"context"
	"sort"
	"sync"
)

// memrepo is the in-memory repository used when no database is configured.
type memrepo struct {
	mu    sync.RWMutex
	byID  map[string]*FinishedGame
	order []*FinishedGame // append order
}

// NewMemoryRepository returns a Repository backed by process memory.
func NewMemoryRepository() Repository {
	return &memrepo{byID: make(map[string]*FinishedGame)}
}

func (m *memrepo) SaveResult(ctx context.Context, g *FinishedGame) error {
	if g == nil {
		return ErrDuplicateGame
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byID[g.GameID]; exists {
		return ErrDuplicateGame
	}
	cp := *g
	cp.Captures = append([]string(nil), g.Captures...)
	m.byID[g.GameID] = &cp
	m.order = append(m.order, &cp)
	return nil
}

func (m *memrepo) RecentResults(ctx context.Context, limit int) ([]*FinishedGame, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := append([]*FinishedGame(nil), m.order...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EndedAt.After(items[j].EndedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]*FinishedGame, 0, len(items))
	for _, g := range items {
		cp := *g
		cp.Captures = append([]string(nil), g.Captures...)
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memrepo) Close() error { return nil }
