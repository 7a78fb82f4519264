package cache

import (
	"context"
	"errors"
	"fmt"
)

// Manifest remembers the content hash of every exported page so an
// incremental export can skip pages whose output has not changed.
type Manifest struct {
	cache Cache
	keys  *KeyGenerator
}

// NewManifest creates a manifest stored in c
func NewManifest(c Cache) *Manifest {
	return &Manifest{cache: c, keys: NewKeyGenerator("site")}
}

// Unchanged reports whether page was last recorded with exactly content
func (m *Manifest) Unchanged(ctx context.Context, page string, content []byte) (bool, error) {
	stored, err := m.cache.Get(ctx, m.keys.PageKey(page))
	if errors.Is(err, ErrMiss) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("manifest lookup %s: %w", page, err)
	}
	return string(stored) == m.keys.ContentHash(content), nil
}

// Record stores the hash of content for page
func (m *Manifest) Record(ctx context.Context, page string, content []byte) error {
	if err := m.cache.Set(ctx, m.keys.PageKey(page), []byte(m.keys.ContentHash(content)), 0); err != nil {
		return fmt.Errorf("manifest record %s: %w", page, err)
	}
	return nil
}

// Pages lists every recorded page
func (m *Manifest) Pages(ctx context.Context) ([]string, error) {
	keys, err := m.cache.Keys(ctx, m.keys.PagePattern())
	if err != nil {
		return nil, err
	}

	pages := make([]string, 0, len(keys))
	for _, k := range keys {
		if p, ok := m.keys.PageFromKey(k); ok {
			pages = append(pages, p)
		}
	}
	return pages, nil
}

// Forget removes page from the manifest
func (m *Manifest) Forget(ctx context.Context, page string) error {
	return m.cache.Delete(ctx, m.keys.PageKey(page))
}

// Reset drops every recorded page
func (m *Manifest) Reset(ctx context.Context) error {
	return m.cache.DeleteByPattern(ctx, m.keys.PagePattern())
}
