package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rate-tracker/domain"
	"rate-tracker/repository"
)

type MockRateStore struct {
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockRateStore) Load(ctx context.Context) (domain.MarketRateSnapshot, bool, error) {
	return domain.MarketRateSnapshot{}, false, m.LoadErr
}

func (m *MockRateStore) Save(ctx context.Context, snapshot domain.MarketRateSnapshot) error {
	m.SaveCalls++
	return m.SaveErr
}

func newTestRateService(store repository.RateStore) *RateService {
	s := NewRateService(store, zap.NewNop())
	s.now = func() time.Time { return time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC) }
	return s
}

func TestRateService_DefaultsBeforeFirstUpdate(t *testing.T) {
	s := newTestRateService(repository.NewMemoryRateStore())

	got := s.Current(context.Background())

	assert.Equal(t, DefaultMarketRates, got.Rates)
	assert.True(t, got.UpdatedAt.IsZero())
}

func TestRateService_UpdateMergesPrograms(t *testing.T) {
	ctx := context.Background()
	s := newTestRateService(repository.NewMemoryRateStore())

	snapshot, err := s.Update(ctx, domain.MarketRateTable{domain.ProgramJumbo: 6.0})
	require.NoError(t, err)

	assert.Equal(t, 6.0, snapshot.Rates[domain.ProgramJumbo])
	assert.Equal(t, 6.048, snapshot.Rates[domain.ProgramConventional])
	assert.Equal(t, time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC), snapshot.UpdatedAt)
	assert.Equal(t, snapshot, s.Current(ctx))

	// Defaults are never modified through a snapshot.
	assert.Equal(t, 6.361, DefaultMarketRates[domain.ProgramJumbo])
}

func TestRateService_RejectsInvalidRates(t *testing.T) {
	cases := map[string]domain.MarketRateTable{
		"empty":           {},
		"zero":            {domain.ProgramFHA: 0},
		"negative":        {domain.ProgramFHA: -1},
		"nan":             {domain.ProgramFHA: math.NaN()},
		"infinite":        {domain.ProgramFHA: math.Inf(1)},
		"absurd":          {domain.ProgramFHA: 250},
		"unknown program": {domain.Program("USDA"): 6},
		"one bad of two":  {domain.ProgramVA: 5.5, domain.ProgramFHA: -2},
	}

	for name, rates := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newTestRateService(repository.NewMemoryRateStore())

			_, err := s.Update(ctx, rates)

			assert.ErrorIs(t, err, ErrInvalidRate)
			assert.Equal(t, DefaultMarketRates, s.Current(ctx).Rates)
		})
	}
}

func TestRateService_SaveFailure(t *testing.T) {
	store := &MockRateStore{SaveErr: errors.New("connection refused")}
	s := newTestRateService(store)

	_, err := s.Update(context.Background(), domain.MarketRateTable{domain.ProgramVA: 5.5})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidRate)
	assert.Equal(t, 1, store.SaveCalls)
}

func TestRateService_LoadFailureFallsBackToDefaults(t *testing.T) {
	s := newTestRateService(&MockRateStore{LoadErr: errors.New("timeout")})

	assert.Equal(t, DefaultMarketRates, s.Current(context.Background()).Rates)
}

// flakyRateStore fails the next Load when failNext is set, and can stall
// every Load to widen the read-modify-write window.
type flakyRateStore struct {
	*repository.MemoryRateStore
	failNext  error
	loadDelay time.Duration
}

func (f *flakyRateStore) Load(ctx context.Context) (domain.MarketRateSnapshot, bool, error) {
	if err := f.failNext; err != nil {
		f.failNext = nil
		return domain.MarketRateSnapshot{}, false, err
	}
	time.Sleep(f.loadDelay)
	return f.MemoryRateStore.Load(ctx)
}

func TestRateService_UpdateKeepsStoredRatesWhenLoadFails(t *testing.T) {
	ctx := context.Background()
	store := &flakyRateStore{MemoryRateStore: repository.NewMemoryRateStore()}
	s := newTestRateService(store)

	_, err := s.Update(ctx, domain.MarketRateTable{domain.ProgramJumbo: 7.25, domain.ProgramConventional: 7.0})
	require.NoError(t, err)

	store.failNext = errors.New("i/o timeout")
	_, err = s.Update(ctx, domain.MarketRateTable{domain.ProgramVA: 5.5})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidRate)

	got := s.Current(ctx).Rates
	assert.Equal(t, 7.25, got[domain.ProgramJumbo])
	assert.Equal(t, 7.0, got[domain.ProgramConventional])
	assert.Equal(t, 5.690, got[domain.ProgramVA])
}

func TestRateService_ConcurrentUpdatesAllApply(t *testing.T) {
	ctx := context.Background()
	store := &flakyRateStore{MemoryRateStore: repository.NewMemoryRateStore(), loadDelay: 20 * time.Millisecond}
	s := newTestRateService(store)

	updates := []domain.MarketRateTable{
		{domain.ProgramJumbo: 7.25},
		{domain.ProgramVA: 5.25},
		{domain.ProgramFHA: 5.5},
		{domain.ProgramConventional: 6.5},
	}

	var wg sync.WaitGroup
	for _, u := range updates {
		wg.Add(1)
		go func(rates domain.MarketRateTable) {
			defer wg.Done()
			_, err := s.Update(ctx, rates)
			assert.NoError(t, err)
		}(u)
	}
	wg.Wait()

	assert.Equal(t, domain.MarketRateTable{
		domain.ProgramJumbo:        7.25,
		domain.ProgramVA:           5.25,
		domain.ProgramFHA:          5.5,
		domain.ProgramConventional: 6.5,
	}, s.Current(ctx).Rates)
}
