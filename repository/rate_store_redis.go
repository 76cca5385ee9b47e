package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"rate-tracker/domain"
)

const (
	ratesKey       = "rate-tracker:market-rates"
	updatedAtField = "updated_at"
)

// RedisRateStore keeps the snapshot in a single hash: one field per program
// plus the update timestamp.
type RedisRateStore struct {
	client *redis.Client
}

func NewRedisRateStore(addr string) *RedisRateStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisRateStore{client: rdb}
}

func (r *RedisRateStore) Load(ctx context.Context) (domain.MarketRateSnapshot, bool, error) {
	fields, err := r.client.HGetAll(ctx, ratesKey).Result()
	if err != nil {
		return domain.MarketRateSnapshot{}, false, fmt.Errorf("read market rates: %w", err)
	}
	if len(fields) == 0 {
		return domain.MarketRateSnapshot{}, false, nil
	}

	snapshot := domain.MarketRateSnapshot{Rates: domain.MarketRateTable{}}
	for field, val := range fields {
		if field == updatedAtField {
			ts, err := time.Parse(time.RFC3339Nano, val)
			if err != nil {
				return domain.MarketRateSnapshot{}, false, fmt.Errorf("parse %s %q: %w", updatedAtField, val, err)
			}
			snapshot.UpdatedAt = ts
			continue
		}
		rate, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return domain.MarketRateSnapshot{}, false, fmt.Errorf("parse rate for %s %q: %w", field, val, err)
		}
		snapshot.Rates[domain.Program(field)] = rate
	}
	return snapshot, true, nil
}

func (r *RedisRateStore) Save(ctx context.Context, snapshot domain.MarketRateSnapshot) error {
	values := make(map[string]interface{}, len(snapshot.Rates)+1)
	for program, rate := range snapshot.Rates {
		values[string(program)] = strconv.FormatFloat(rate, 'f', -1, 64)
	}
	values[updatedAtField] = snapshot.UpdatedAt.UTC().Format(time.RFC3339Nano)

	if err := r.client.HSet(ctx, ratesKey, values).Err(); err != nil {
		return fmt.Errorf("write market rates: %w", err)
	}
	return nil
}

func (r *RedisRateStore) Close() error {
	return r.client.Close()
}
