package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mkowalczyk/kantor/internal/logger"
	"github.com/mkowalczyk/kantor/internal/models"
)

const rateSnapshotKey = "rates:snapshot"

// RateSnapshotCacheRepository keeps the last good external feed snapshot in
// Redis so a restart can bootstrap rates even when the feed is down.
// Wallet state itself is never cached; only the feed snapshot is.
type RateSnapshotCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for the cached snapshot
}

// NewRateSnapshotCacheRepository creates a cache repository with a TTL for
// the stored snapshot.
func NewRateSnapshotCacheRepository(client *redis.Client, expiration time.Duration) *RateSnapshotCacheRepository {
	return &RateSnapshotCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRates returns the cached rate table, or an error when the cache is
// empty, expired, or unreadable.
func (r *RateSnapshotCacheRepository) GetRates(ctx context.Context) (models.RateTable, error) {
	val, err := r.client.Get(ctx, rateSnapshotKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("rate snapshot not found in cache")
		}
		logger.Log.Errorw("failed to read rate snapshot from cache", "key", rateSnapshotKey, "error", err)
		return nil, err
	}

	var rates models.RateTable
	if err := json.Unmarshal([]byte(val), &rates); err != nil {
		logger.Log.Errorw("failed to decode cached rate snapshot", "key", rateSnapshotKey, "error", err)
		return nil, err
	}

	logger.Log.Infow("rate snapshot loaded from cache", "key", rateSnapshotKey, "currencies", len(rates))
	return rates, nil
}

// SetRates stores a rate table as the current snapshot with expiration.
func (r *RateSnapshotCacheRepository) SetRates(ctx context.Context, rates models.RateTable) error {
	data, err := json.Marshal(rates)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, rateSnapshotKey, data, r.exp).Err()

	logger.Log.Infow("rate snapshot cached",
		"key", rateSnapshotKey,
		"currencies", len(rates),
		"error", err,
	)

	return err
}
