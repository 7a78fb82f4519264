package cache

import (
	"context"
	"time"
)

// Cache defines the key/value operations the export manifest relies on
type Cache interface {
	// Basic operations
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// Pattern operations
	Keys(ctx context.Context, pattern string) ([]string, error)
	DeleteByPattern(ctx context.Context, pattern string) error

	// Metrics
	GetMetrics() *Metrics

	// Lifecycle
	Close() error
}

// Metrics tracks cache usage
type Metrics struct {
	Hits    uint64
	Misses  uint64
	Sets    uint64
	Deletes uint64
	Size    uint64
	Keys    uint64
}
