package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	portsrepo "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/repositories"
	"golang.org/x/sync/singleflight"
)

// DefaultSnapshotTTL is how long a rate snapshot is served before the
// repository is consulted again.
const DefaultSnapshotTTL = 5 * time.Minute

// RateSnapshotCache hands out immutable point-in-time rate snapshots with a
// TTL. Concurrent refreshes collapse into a single repository query via
// singleflight. The conversion engine never sees this type; it receives the
// snapshot slice as a plain argument, and callers must not mutate it.
type RateSnapshotCache struct {
	currencyRepo portsrepo.CurrencyReader
	ttl          time.Duration
	now          func() time.Time

	group singleflight.Group

	mu        sync.RWMutex
	snapshot  []domain.CurrencyRate
	fetchedAt time.Time
}

// NewRateSnapshotCache creates a snapshot cache over the currency repository.
// A non-positive ttl falls back to DefaultSnapshotTTL.
func NewRateSnapshotCache(currencyRepo portsrepo.CurrencyReader, ttl time.Duration) *RateSnapshotCache {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &RateSnapshotCache{
		currencyRepo: currencyRepo,
		ttl:          ttl,
		now:          time.Now,
	}
}

// Snapshot returns the current rate snapshot, refreshing from the repository
// when the cached one is stale or forceRefresh is set. When a refresh fails
// and a stale snapshot exists, the stale snapshot is served rather than
// failing the conversion.
func (c *RateSnapshotCache) Snapshot(ctx context.Context, forceRefresh bool) ([]domain.CurrencyRate, error) {
	if !forceRefresh {
		if snapshot, ok := c.fresh(); ok {
			return snapshot, nil
		}
	}

	result, err, _ := c.group.Do("snapshot", func() (interface{}, error) {
		// Another caller may have refreshed while this one waited.
		if !forceRefresh {
			if snapshot, ok := c.fresh(); ok {
				return snapshot, nil
			}
		}

		currencies, err := c.currencyRepo.ListCurrencies(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh rate snapshot: %w", err)
		}

		c.mu.Lock()
		c.snapshot = currencies
		c.fetchedAt = c.now()
		c.mu.Unlock()

		return currencies, nil
	})
	if err != nil {
		if stale := c.any(); stale != nil {
			return stale, nil
		}
		return nil, err
	}

	return result.([]domain.CurrencyRate), nil
}

// Invalidate drops the cached snapshot so the next call refetches.
func (c *RateSnapshotCache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

func (c *RateSnapshotCache) fresh() ([]domain.CurrencyRate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.snapshot, true
}

func (c *RateSnapshotCache) any() []domain.CurrencyRate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}
