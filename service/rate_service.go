package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"rate-tracker/domain"
	"rate-tracker/repository"
)

var ErrInvalidRate = errors.New("invalid market rate")

// RateService owns the market-rate snapshot the pipeline is analyzed against.
type RateService struct {
	mu     sync.Mutex // serializes Update's load-merge-save
	store  repository.RateStore
	logger *zap.Logger
	now    func() time.Time
}

func NewRateService(store repository.RateStore, logger *zap.Logger) *RateService {
	return &RateService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Current returns the stored snapshot, or the default rates when nothing has
// been published yet. A store read failure also falls back to the defaults.
func (s *RateService) Current(ctx context.Context) domain.MarketRateSnapshot {
	snapshot, ok, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to load market rates, using defaults", zap.Error(err))
	}
	if err != nil || !ok {
		return domain.MarketRateSnapshot{Rates: DefaultMarketRates.Clone()}
	}
	return snapshot
}

// Update merges the given programs into the stored table. Programs not in
// rates keep their value. Nothing is applied if any rate is invalid or the
// stored table cannot be read.
func (s *RateService) Update(ctx context.Context, rates domain.MarketRateTable) (domain.MarketRateSnapshot, error) {
	if len(rates) == 0 {
		return domain.MarketRateSnapshot{}, fmt.Errorf("%w: no rates given", ErrInvalidRate)
	}
	for program, rate := range rates {
		if err := validateRate(program, rate); err != nil {
			return domain.MarketRateSnapshot{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok, err := s.store.Load(ctx)
	if err != nil {
		return domain.MarketRateSnapshot{}, fmt.Errorf("load market rates: %w", err)
	}
	if !ok {
		current = domain.MarketRateSnapshot{Rates: DefaultMarketRates}
	}
	next := domain.MarketRateSnapshot{
		Rates:     current.Rates.Clone(),
		UpdatedAt: s.now().UTC(),
	}
	for program, rate := range rates {
		next.Rates[program] = rate
	}

	if err := s.store.Save(ctx, next); err != nil {
		return domain.MarketRateSnapshot{}, fmt.Errorf("save market rates: %w", err)
	}

	s.logger.Info("market rates updated", zap.Any("rates", next.Rates))
	return next, nil
}

func validateRate(program domain.Program, rate float64) error {
	known := false
	for _, p := range domain.Programs {
		if p == program {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown program %q", ErrInvalidRate, program)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 || rate > MaxMarketRate {
		return fmt.Errorf("%w: %s rate %v", ErrInvalidRate, program, rate)
	}
	return nil
}
