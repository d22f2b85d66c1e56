package cache

import (
	"context"
	"time"
)

// StatsCache is a read-through cache for computed analytics payloads.
// Caching is a pure performance layer: entries carry a TTL and are versioned
// by a generation counter that mutations bump, so a cached value never
// outlives the ledger snapshot it was computed from.
type StatsCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Generation returns the current ledger generation counter.
	Generation(ctx context.Context) (int64, error)
	// BumpGeneration invalidates all versioned entries by advancing the counter.
	BumpGeneration(ctx context.Context) error
}

// NoopStatsCache disables caching; every read recomputes from the ledger.
type NoopStatsCache struct{}

func (NoopStatsCache) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopStatsCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

func (NoopStatsCache) Generation(_ context.Context) (int64, error) {
	return 0, nil
}

func (NoopStatsCache) BumpGeneration(_ context.Context) error {
	return nil
}
