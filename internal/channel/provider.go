package channel

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// defaultSlugTTL bounds how stale the cached default channel may get.
// Changing the default channel is rare and a short window is acceptable.
const defaultSlugTTL = 30 * time.Second

// Store looks up the configured default channel, typically backed by the
// channel DAO. It must return ErrNoDefaultChannel when none is configured.
type Store interface {
	DefaultSlug(ctx context.Context) (string, error)
}

// Provider caches the default channel slug. Concurrent cache misses are
// collapsed into a single store lookup.
type Provider struct {
	store Store
	group singleflight.Group

	mu      sync.Mutex
	slug    string
	expires time.Time
}

// NewProvider creates a default-channel provider over the given store.
func NewProvider(store Store) *Provider {
	return &Provider{store: store}
}

// DefaultSlug returns the configured default channel slug.
func (p *Provider) DefaultSlug(ctx context.Context) (string, error) {
	p.mu.Lock()
	if p.slug != "" && time.Now().Before(p.expires) {
		slug := p.slug
		p.mu.Unlock()
		return slug, nil
	}
	p.mu.Unlock()

	v, err, _ := p.group.Do("default-slug", func() (interface{}, error) {
		slug, err := p.store.DefaultSlug(ctx)
		if err != nil {
			return "", err
		}
		p.mu.Lock()
		p.slug = slug
		p.expires = time.Now().Add(defaultSlugTTL)
		p.mu.Unlock()
		return slug, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
