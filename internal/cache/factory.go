package cache

import (
	"fmt"
	"time"
)

// Config holds configuration for cache creation
type Config struct {
	// Enabled determines if caching is enabled
	Enabled bool

	// InMemory keeps everything in RAM; Path is ignored
	InMemory bool

	BadgerPath           string
	BadgerMaxMemoryMB    int
	BadgerValueLogMaxMB  int
	BadgerCompactL0      bool
	BadgerNumGoroutines  int
	BadgerGCInterval     time.Duration
	BadgerGCDiscardRatio float64
}

// DefaultConfig returns a small on-disk configuration suited to a page manifest
func DefaultConfig() *Config {
	return &Config{
		Enabled:              true,
		BadgerPath:           "./cache/manifest",
		BadgerMaxMemoryMB:    16,
		BadgerValueLogMaxMB:  64,
		BadgerCompactL0:      true,
		BadgerNumGoroutines:  2,
		BadgerGCInterval:     10 * time.Minute,
		BadgerGCDiscardRatio: 0.5,
	}
}

// New creates a new BadgerCache based on the configuration
// Returns nil if caching is disabled
func New(config *Config) (Cache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if !config.Enabled {
		return nil, nil
	}

	if config.BadgerPath == "" && !config.InMemory {
		return nil, fmt.Errorf("BadgerPath is required when cache is enabled")
	}

	return NewBadgerCache(&BadgerConfig{
		Path:             config.BadgerPath,
		InMemory:         config.InMemory,
		MaxMemoryMB:      config.BadgerMaxMemoryMB,
		ValueLogMaxMB:    config.BadgerValueLogMaxMB,
		CompactL0OnClose: config.BadgerCompactL0,
		NumGoroutines:    config.BadgerNumGoroutines,
		GCInterval:       config.BadgerGCInterval,
		GCDiscardRatio:   config.BadgerGCDiscardRatio,
	})
}
