// Package quote maintains the cached motivational quotation. A cached value
// younger than the staleness window is served as is; otherwise the provider
// is called, and on any failure a local fallback is used instead. Either
// outcome is cached with a fresh timestamp, so a failed fetch is not retried
// until the next window elapses. Availability over freshness.
package quote

import (
	"context"
	"time"

	"github.com/julianstephens/zenone/internal/constants"
	"github.com/julianstephens/zenone/internal/logger"
	"github.com/julianstephens/zenone/internal/models"
	"github.com/julianstephens/zenone/internal/storage"
)

// Provider fetches a fresh quotation from the external collaborator.
type Provider interface {
	Fetch(ctx context.Context) (models.QuoteData, error)
}

// Cache wraps a Provider with the staleness policy, backed by the global
// quote-cache storage key.
type Cache struct {
	store    storage.Provider
	provider Provider
	maxAge   time.Duration
	now      func() time.Time
}

// NewCache returns a cache with the standard staleness window.
func NewCache(store storage.Provider, provider Provider) *Cache {
	return &Cache{
		store:    store,
		provider: provider,
		maxAge:   constants.QuoteStaleness,
		now:      time.Now,
	}
}

// Get returns the cached quote, refreshing it first when absent or stale.
// It never fails: every refresh error degrades to the local fallback list.
func (c *Cache) Get(ctx context.Context) models.QuoteData {
	cached, ok, err := c.store.GetQuote()
	if err != nil {
		logger.Warn("Failed to read quote cache", "error", err)
	}
	if ok && !cached.Stale(c.now(), c.maxAge) {
		return cached
	}
	return c.Refresh(ctx)
}

// Refresh fetches a new quote regardless of staleness and caches the result.
// Provider failures of every kind collapse into the fallback path; the
// fallback is cached exactly like a success.
func (c *Cache) Refresh(ctx context.Context) models.QuoteData {
	now := c.now()

	fetched, err := c.provider.Fetch(ctx)
	if err != nil {
		logger.Warn("Quote provider failed, using fallback", "error", err)
		fetched = Fallback(now)
	}
	fetched.FetchedAt = now

	if err := c.store.SaveQuote(fetched); err != nil {
		logger.Warn("Failed to cache quote", "error", err)
	}
	return fetched
}
