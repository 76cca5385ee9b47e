package repository

import (
	"context"

	"rate-tracker/domain"
)

// RateStore keeps the latest market-rate snapshot. Load reports false when
// nothing has been saved yet.
type RateStore interface {
	Load(ctx context.Context) (domain.MarketRateSnapshot, bool, error)
	Save(ctx context.Context, snapshot domain.MarketRateSnapshot) error
}
