// Package transactions orchestrates the fetch-normalize-enrich cycle and the
// 30-second memory cache every metric route reads from.
package transactions

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/singleflight"

	"finwell/internal/cache"
	"finwell/internal/core"
	"finwell/internal/enrich"
	"finwell/internal/source"
)

// DefaultCacheTTL is the freshness window for the enriched list.
const DefaultCacheTTL = 30 * time.Second

// DefaultWindowDays is how far back transactions are fetched.
const DefaultWindowDays = 90

// ErrNoAccessToken is returned by FetchWindow when no credential was stored.
var ErrNoAccessToken = errors.New("no access token stored")

// Service fetches, normalizes and enriches transactions, caching the result.
// The cache is a single slot shared by all callers: a second caller inside
// the freshness window receives the first caller's data regardless of
// credential (single-tenant demo semantics; a multi-tenant rewrite must key
// the cache by credential).
type Service struct {
	src        source.TransactionSource
	tokens     *TokenStore
	slot       *cache.Slot[[]core.Transaction]
	group      singleflight.Group
	windowDays int
}

// NewService wires a source, a token store and a fresh cache slot.
func NewService(src source.TransactionSource, tokens *TokenStore, ttl time.Duration, windowDays int) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Service{
		src:        src,
		tokens:     tokens,
		slot:       cache.NewSlot[[]core.Transaction](ttl),
		windowDays: windowDays,
	}
}

// Fetch returns the enriched transaction list, from cache when fresh.
// Concurrent cache misses share a single upstream fetch. Any upstream
// failure, including a missing credential, degrades to an empty list so
// metric routes never fail.
func (s *Service) Fetch(ctx context.Context) []core.Transaction {
	if cached, ok := s.slot.Get(); ok {
		slog.DebugContext(ctx, "Using cached transactions", "count", len(cached))
		return cached
	}

	v, _, _ := s.group.Do("transactions", func() (any, error) {
		return s.refresh(ctx), nil
	})
	return v.([]core.Transaction)
}

func (s *Service) refresh(ctx context.Context) []core.Transaction {
	cleaned, err := s.FetchWindow(ctx)
	if err != nil {
		if errors.Is(err, ErrNoAccessToken) {
			slog.WarnContext(ctx, "No aggregator access token stored")
		} else {
			slog.ErrorContext(ctx, "Aggregator fetch failed", "error", err)
		}
		return []core.Transaction{}
	}

	enhanced := enrich.Enhance(cleaned)
	sortByDateDesc(enhanced)

	s.slot.Set(enhanced)
	slog.InfoContext(ctx, "Transactions fetched", "cleaned", len(cleaned), "enhanced", len(enhanced))
	return enhanced
}

// FetchWindow fetches and normalizes the raw transaction window without the
// deterministic enrichment or caching. The raw transactions route uses this
// to apply its own legacy variation pass.
func (s *Service) FetchWindow(ctx context.Context) ([]core.Transaction, error) {
	token, ok := s.tokens.Get()
	if !ok {
		return nil, ErrNoAccessToken
	}

	end := time.Now()
	start := end.AddDate(0, 0, -s.windowDays)

	raw, err := s.src.Transactions(ctx, token, start, end)
	if err != nil {
		return nil, err
	}

	cleaned := core.CleanTransactions(raw)
	sortByDateDesc(cleaned)
	return cleaned, nil
}

func sortByDateDesc(list []core.Transaction) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date > list[j].Date
	})
}
