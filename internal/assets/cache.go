package assets

import (
	"context"
	"encoding/json"
	"log/slog"
)

// FetchFunc produces the bytes for a cache miss.
type FetchFunc func(ctx context.Context) ([]byte, error)

// Cache memoizes successful fetches by key for the lifetime of its Store.
// Entries are never refreshed or evicted, so it is only suitable for a small
// fixed set of URLs. Two concurrent misses on the same key may both fetch;
// the first stored value wins.
type Cache struct {
	store   Store
	fetcher *Fetcher
	logger  *slog.Logger
}

// NewCache wires a store to the fetcher used by JSON and Bytes.
func NewCache(store Store, fetcher *Fetcher, logger *slog.Logger) *Cache {
	if store == nil {
		store = NewMemoryStore()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{store: store, fetcher: fetcher, logger: logger}
}

// GetOrFetch returns the stored value for key, calling fetch only on a miss.
// Failed fetches are not stored. A broken store behaves like an empty one.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch FetchFunc) ([]byte, error) {
	value, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Debug("asset cache read failed", "key", key, "error", err)
	}
	if ok {
		return value, nil
	}

	value, err = fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.store.Set(ctx, key, value); err != nil {
		c.logger.Debug("asset cache write failed", "key", key, "error", err)
	}
	return value, nil
}

// JSON returns the decoded JSON document at url. Only bodies that parse are
// cached.
func (c *Cache) JSON(ctx context.Context, url string) (any, error) {
	raw, err := c.GetOrFetch(ctx, jsonKey(url), func(ctx context.Context) ([]byte, error) {
		body, err := c.fetcher.FetchBytes(ctx, url)
		if err != nil {
			return nil, err
		}
		if !json.Valid(body) {
			_, err := DecodeJSON(body)
			return nil, err
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return DecodeJSON(raw)
}

// Bytes returns the raw body at url.
func (c *Cache) Bytes(ctx context.Context, url string) ([]byte, error) {
	return c.GetOrFetch(ctx, bytesKey(url), func(ctx context.Context) ([]byte, error) {
		return c.fetcher.FetchBytes(ctx, url)
	})
}
