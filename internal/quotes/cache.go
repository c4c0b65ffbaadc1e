package quotes

import (
	"context"
	"math/rand"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

// Service produces a fresh batch of quote texts for a mode. The contract
// is total in practice: implementations substitute fallback pools on any
// transport or parse failure.
type Service interface {
	QuoteBatch(ctx context.Context, mode model.Mode, lang model.Language) []string
}

// CommitFunc observes every committed pool change, for persistence.
type CommitFunc func(model.QuotePools)

// Cache holds the per-mode quote pools and the current selection index.
// Single-writer, like the rest of the core state.
type Cache struct {
	pools    model.QuotePools
	index    int
	rng      *rand.Rand
	onCommit CommitFunc
}

type Option func(*Cache)

// WithRand overrides the selection source, for tests.
func WithRand(rng *rand.Rand) Option {
	return func(c *Cache) { c.rng = rng }
}

func WithCommit(fn CommitFunc) Option {
	return func(c *Cache) { c.onCommit = fn }
}

// NewCache builds a cache from persisted pools; any missing or empty mode
// pool is re-seeded from the built-in defaults.
func NewCache(pools model.QuotePools, opts ...Option) *Cache {
	defaults := DefaultPools()
	seeded := model.QuotePools{}
	for _, mode := range model.Modes {
		pool := pools[mode]
		if len(pool) == 0 {
			pool = defaults[mode]
		}
		if len(pool) > model.MaxQuotePoolSize {
			pool = pool[:model.MaxQuotePoolSize]
		}
		seeded[mode] = append([]model.QuoteEntry(nil), pool...)
	}
	c := &Cache{pools: seeded}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) intn(n int) int {
	if c.rng != nil {
		return c.rng.Intn(n)
	}
	return rand.Intn(n)
}

// Pools returns a deep copy for persistence or inspection.
func (c *Cache) Pools() model.QuotePools {
	out := model.QuotePools{}
	for mode, pool := range c.pools {
		out[mode] = append([]model.QuoteEntry(nil), pool...)
	}
	return out
}

func (c *Cache) PoolSize(mode model.Mode) int {
	return len(c.pools[mode])
}

// Current returns the entry at the current selection index, clamped into
// the pool.
func (c *Cache) Current(mode model.Mode) model.QuoteEntry {
	pool := c.pools[mode]
	if c.index >= 0 && c.index < len(pool) {
		return pool[c.index]
	}
	return pool[0]
}

func (c *Cache) CurrentIndex() int { return c.index }

// PickRandom selects a uniformly random entry of the mode's pool and
// makes it current. Pools are never empty, so this is total.
func (c *Cache) PickRandom(mode model.Mode) model.QuoteEntry {
	pool := c.pools[mode]
	c.index = c.intn(len(pool))
	return pool[c.index]
}

// ToggleLike flips the liked flag at index in the mode's pool; out of
// range indices are ignored.
func (c *Cache) ToggleLike(mode model.Mode, index int) {
	pool := c.pools[mode]
	if index < 0 || index >= len(pool) {
		return
	}
	pool[index].IsLiked = !pool[index].IsLiked
	if c.onCommit != nil {
		c.onCommit(c.Pools())
	}
}

// Refresh fetches a batch from the service and applies it to the mode's
// pool. The fetch blocks; callers that must not block run the fetch
// themselves and hand the batch to ApplyBatch.
func (c *Cache) Refresh(ctx context.Context, svc Service, mode model.Mode, lang model.Language) {
	c.ApplyBatch(mode, svc.QuoteBatch(ctx, mode, lang))
}

// ApplyBatch rebuilds the mode's pool from a fetched batch: liked entries
// are preserved in their existing order, fetched texts are appended
// unliked, and the result is capped. A new random index is selected
// within the resulting pool. An empty batch leaves the pool untouched.
func (c *Cache) ApplyBatch(mode model.Mode, fetched []string) {
	if len(fetched) == 0 {
		return
	}

	next := make([]model.QuoteEntry, 0, model.MaxQuotePoolSize)
	for _, entry := range c.pools[mode] {
		if entry.IsLiked {
			next = append(next, entry)
		}
	}
	for _, text := range fetched {
		if text == "" {
			continue
		}
		next = append(next, model.QuoteEntry{Text: text})
	}
	if len(next) > model.MaxQuotePoolSize {
		next = next[:model.MaxQuotePoolSize]
	}
	if len(next) == 0 {
		return
	}

	c.pools[mode] = next
	c.index = c.intn(len(next))
	if c.onCommit != nil {
		c.onCommit(c.Pools())
	}
}
