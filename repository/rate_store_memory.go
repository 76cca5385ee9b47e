package repository

import (
	"context"
	"sync"

	"rate-tracker/domain"
)

type MemoryRateStore struct {
	mu       sync.RWMutex
	snapshot domain.MarketRateSnapshot
	saved    bool
}

func NewMemoryRateStore() *MemoryRateStore {
	return &MemoryRateStore{}
}

func (m *MemoryRateStore) Load(ctx context.Context) (domain.MarketRateSnapshot, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.saved {
		return domain.MarketRateSnapshot{}, false, nil
	}
	return domain.MarketRateSnapshot{
		Rates:     m.snapshot.Rates.Clone(),
		UpdatedAt: m.snapshot.UpdatedAt,
	}, true, nil
}

func (m *MemoryRateStore) Save(ctx context.Context, snapshot domain.MarketRateSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshot = domain.MarketRateSnapshot{
		Rates:     snapshot.Rates.Clone(),
		UpdatedAt: snapshot.UpdatedAt,
	}
	m.saved = true
	return nil
}
