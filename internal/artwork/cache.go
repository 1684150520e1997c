package artwork

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Cache memoizes extracted gradients by image path. Safe for concurrent
// use; extraction itself never fails, so the cache never holds errors.
type Cache struct {
	mu        sync.RWMutex
	gradients map[string]Gradient
}

// NewCache returns an empty gradient cache.
func NewCache() *Cache {
	return &Cache{gradients: make(map[string]Gradient)}
}

// Get returns the gradient for path, extracting and memoizing on first use.
func (c *Cache) Get(path string) Gradient {
	if path == "" {
		return DefaultGradient
	}

	c.mu.RLock()
	g, ok := c.gradients[path]
	c.mu.RUnlock()
	if ok {
		return g
	}

	g = Extract(path)

	c.mu.Lock()
	c.gradients[path] = g
	c.mu.Unlock()
	return g
}

// preloadConcurrency bounds parallel image decodes during warmup.
const preloadConcurrency = 4

// Preload extracts gradients for all paths ahead of first render so view
// switches never block on image decode. Cancellation stops scheduling;
// gradients already extracted stay cached.
func (c *Cache) Preload(ctx context.Context, paths []string) {
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(preloadConcurrency)

	for _, path := range paths {
		if path == "" {
			continue
		}
		grp.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			c.Get(path)
			return nil
		})
	}
	_ = grp.Wait()
}
