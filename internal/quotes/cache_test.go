package quotes

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

type staticService struct {
	batch []string
}

func (s staticService) QuoteBatch(context.Context, model.Mode, model.Language) []string {
	return s.batch
}

func TestNewCacheSeedsEveryMode(t *testing.T) {
	cache := NewCache(nil)
	for _, mode := range model.Modes {
		if cache.PoolSize(mode) == 0 {
			t.Fatalf("pool for %s is empty", mode)
		}
	}
}

func TestPickRandomNeverFailsOnFreshCache(t *testing.T) {
	cache := NewCache(nil, WithRand(rand.New(rand.NewSource(1))))
	for _, mode := range model.Modes {
		for i := 0; i < 50; i++ {
			entry := cache.PickRandom(mode)
			if entry.Text == "" {
				t.Fatalf("empty quote picked for %s", mode)
			}
			if idx := cache.CurrentIndex(); idx < 0 || idx >= cache.PoolSize(mode) {
				t.Fatalf("index %d out of range for %s", idx, mode)
			}
		}
	}
}

func TestToggleLike(t *testing.T) {
	cache := NewCache(nil)
	cache.ToggleLike(model.ModeWork, 2)
	if !cache.Pools()[model.ModeWork][2].IsLiked {
		t.Fatal("expected entry liked")
	}
	cache.ToggleLike(model.ModeWork, 2)
	if cache.Pools()[model.ModeWork][2].IsLiked {
		t.Fatal("expected like toggled off")
	}

	before := cache.Pools()
	cache.ToggleLike(model.ModeWork, 99)
	cache.ToggleLike(model.ModeWork, -1)
	after := cache.Pools()
	for i := range before[model.ModeWork] {
		if before[model.ModeWork][i] != after[model.ModeWork][i] {
			t.Fatal("out-of-range toggle mutated the pool")
		}
	}
}

func TestRefreshPreservesLikedAndCapsPool(t *testing.T) {
	cache := NewCache(nil, WithRand(rand.New(rand.NewSource(7))))
	cache.ToggleLike(model.ModeWork, 0)
	cache.ToggleLike(model.ModeWork, 3)
	likedA := cache.Pools()[model.ModeWork][0].Text
	likedB := cache.Pools()[model.ModeWork][3].Text

	batch := make([]string, 25)
	for i := range batch {
		batch[i] = fmt.Sprintf("fresh quote %d", i)
	}
	cache.Refresh(context.Background(), staticService{batch: batch}, model.ModeWork, model.LanguageEN)

	pool := cache.Pools()[model.ModeWork]
	if len(pool) != model.MaxQuotePoolSize {
		t.Fatalf("expected pool capped at %d, got %d", model.MaxQuotePoolSize, len(pool))
	}
	if pool[0].Text != likedA || pool[1].Text != likedB {
		t.Fatalf("liked entries not preserved in order: %+v", pool[:2])
	}
	if !pool[0].IsLiked || !pool[1].IsLiked {
		t.Fatal("liked flags lost on refresh")
	}
	for _, entry := range pool[2:] {
		if entry.IsLiked {
			t.Fatalf("fetched entry must start unliked: %+v", entry)
		}
	}
	if idx := cache.CurrentIndex(); idx < 0 || idx >= len(pool) {
		t.Fatalf("selection index %d outside resulting pool", idx)
	}
}

func TestRefreshWithEmptyBatchLeavesPoolUnchanged(t *testing.T) {
	cache := NewCache(nil)
	before := cache.Pools()[model.ModeShortBreak]

	cache.Refresh(context.Background(), staticService{}, model.ModeShortBreak, model.LanguageZH)

	after := cache.Pools()[model.ModeShortBreak]
	if len(before) != len(after) {
		t.Fatalf("pool changed on failed refresh: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("pool entries changed on failed refresh")
		}
	}
}

func TestRefreshCommitsPools(t *testing.T) {
	var committed model.QuotePools
	cache := NewCache(nil, WithCommit(func(p model.QuotePools) { committed = p }))

	cache.Refresh(context.Background(), staticService{batch: []string{"one", "two"}}, model.ModeLongBreak, model.LanguageEN)
	if committed == nil {
		t.Fatal("expected commit on refresh")
	}
	if len(committed[model.ModeLongBreak]) != 2 {
		t.Fatalf("unexpected committed pool: %+v", committed[model.ModeLongBreak])
	}
}

func TestNewCacheTruncatesOversizedPersistedPool(t *testing.T) {
	oversized := make([]model.QuoteEntry, 30)
	for i := range oversized {
		oversized[i] = model.QuoteEntry{Text: fmt.Sprintf("q%d", i)}
	}
	cache := NewCache(model.QuotePools{model.ModeWork: oversized})
	if got := cache.PoolSize(model.ModeWork); got != model.MaxQuotePoolSize {
		t.Fatalf("expected truncation to %d, got %d", model.MaxQuotePoolSize, got)
	}
}
