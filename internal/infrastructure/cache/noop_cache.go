package cache

import (
	"context"
	"time"
)

// NoopCache is used when Redis is not configured or unreachable. Every read
// misses; the dashboard just recomputes.
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Ping(context.Context) error { return nil }

func (NoopCache) Close() error { return nil }

func (NoopCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}
