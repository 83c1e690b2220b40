package pricing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang/groupcache/lru"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/txproof/txproof-api/internal/db"
	"github.com/txproof/txproof-api/internal/logger"
)

const sourceRetries = 2

// HotCacheEntries bounds the in-process quote cache. A worker sees a rolling
// window of recent hour buckets, so LRU eviction keeps the working set small
// without the cache growing for the life of the process.
const HotCacheEntries = 4096

// Resolver resolves historical unit prices with source fallback, a durable
// write-once cache, and in-flight coalescing. The price_cache table is the
// source of truth; a bounded in-process LRU fronts it for quotes that came
// from the primary source and can therefore never be superseded.
type Resolver struct {
	queries db.Querier
	sources []Source
	group   singleflight.Group
	log     *zap.Logger

	// mu guards hot; lru.Cache is not safe for concurrent use.
	mu  sync.Mutex
	hot *lru.Cache
}

// NewResolver creates a resolver trying sources in rank order.
func NewResolver(queries db.Querier, sources ...Source) *Resolver {
	return &Resolver{
		queries: queries,
		sources: sources,
		log:     logger.Log,
		hot:     lru.New(HotCacheEntries),
	}
}

// BucketTimestamp coarsens a unix timestamp to the containing hour.
// Upstream sources report at hourly granularity, so finer cache keys would
// only multiply upstream calls without adding accuracy.
func BucketTimestamp(unixTS int64) time.Time {
	return time.Unix(unixTS, 0).UTC().Truncate(time.Hour)
}

// GetPrice resolves the USD price of an asset at a timestamp. Concurrent
// lookups for the same (chain, asset, hour-bucket) key coalesce into a
// single upstream call. Returns ErrPriceUnavailable when every source is
// exhausted.
func (r *Resolver) GetPrice(ctx context.Context, chainID int64, assetID string, unixTS int64) (*Quote, error) {
	bucket := BucketTimestamp(unixTS)
	key := cacheKey(chainID, assetID, bucket)

	r.mu.Lock()
	hit, ok := r.hot.Get(key)
	r.mu.Unlock()
	if ok {
		return hit.(*Quote), nil
	}

	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		return r.resolve(ctx, chainID, assetID, bucket)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Quote), nil
}

func cacheKey(chainID int64, assetID string, bucket time.Time) string {
	return fmt.Sprintf("%d:%s:%d", chainID, assetID, bucket.Unix())
}

func (r *Resolver) resolve(ctx context.Context, chainID int64, assetID string, bucket time.Time) (*Quote, error) {
	var cached *Quote

	entry, err := r.queries.GetPriceCacheEntry(ctx, db.GetPriceCacheEntryParams{
		ChainID:  chainID,
		AssetID:  assetID,
		BucketTs: bucket,
	})
	switch {
	case err == nil:
		quote, convErr := quoteFromEntry(entry)
		if convErr != nil {
			return nil, convErr
		}
		if quote.SourceRank == 0 {
			r.remember(quote)
			return quote, nil
		}
		// A degraded-source quote stays eligible for upgrade by a
		// higher-priority source.
		cached = quote
	case errors.Is(err, pgx.ErrNoRows):
		// not cached yet
	default:
		return nil, fmt.Errorf("failed to read price cache: %w", err)
	}

	for _, source := range r.sources {
		if cached != nil && source.Rank() >= cached.SourceRank {
			continue
		}

		price, err := r.quoteWithRetry(ctx, source, chainID, assetID, bucket)
		if err != nil {
			if !errors.Is(err, errAssetNotSupported) {
				r.log.Warn("Price source failed",
					zap.String("source", source.Name()),
					zap.Int64("chain_id", chainID),
					zap.String("asset_id", assetID),
					zap.Error(err),
				)
			}
			continue
		}

		quote := &Quote{
			ChainID:    chainID,
			AssetID:    assetID,
			BucketTs:   bucket,
			Price:      price,
			Source:     source.Name(),
			SourceRank: source.Rank(),
		}
		if err := r.store(ctx, quote); err != nil {
			r.log.Warn("Failed to persist price quote", zap.Error(err))
		}
		if quote.SourceRank == 0 {
			r.remember(quote)
		}
		return quote, nil
	}

	if cached != nil {
		return cached, nil
	}
	return nil, ErrPriceUnavailable
}

// quoteWithRetry retries transient source failures with capped exponential
// backoff before the resolver falls through to the next source.
func (r *Resolver) quoteWithRetry(ctx context.Context, source Source, chainID int64, assetID string, bucket time.Time) (decimal.Decimal, error) {
	operation := func() (decimal.Decimal, error) {
		price, err := source.Quote(ctx, chainID, assetID, bucket)
		if errors.Is(err, errAssetNotSupported) {
			return decimal.Zero, backoff.Permanent(err)
		}
		return price, err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), sourceRetries), ctx)
	return backoff.RetryWithData(operation, policy)
}

// store persists a quote. Losing the conditional upsert means a
// higher-priority row already exists; that row wins.
func (r *Resolver) store(ctx context.Context, quote *Quote) error {
	_, err := r.queries.UpsertPriceCacheEntry(ctx, db.UpsertPriceCacheEntryParams{
		ChainID:    quote.ChainID,
		AssetID:    quote.AssetID,
		BucketTs:   quote.BucketTs,
		Price:      quote.Price.String(),
		Source:     quote.Source,
		SourceRank: quote.SourceRank,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return err
}

func (r *Resolver) remember(quote *Quote) {
	r.mu.Lock()
	r.hot.Add(cacheKey(quote.ChainID, quote.AssetID, quote.BucketTs), quote)
	r.mu.Unlock()
}

func quoteFromEntry(entry db.PriceCacheEntry) (*Quote, error) {
	price, err := decimal.NewFromString(entry.Price)
	if err != nil {
		return nil, fmt.Errorf("corrupt price cache entry for %s: %w", entry.AssetID, err)
	}
	return &Quote{
		ChainID:    entry.ChainID,
		AssetID:    entry.AssetID,
		BucketTs:   entry.BucketTs,
		Price:      price,
		Source:     entry.Source,
		SourceRank: entry.SourceRank,
	}, nil
}
