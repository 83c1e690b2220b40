package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// NativeAsset is the sentinel asset id for a chain's native currency; any
// other asset id is a token contract address.
const NativeAsset = "native"

// ErrPriceUnavailable is returned when no upstream source has data for the
// requested (chain, asset, timestamp) triple.
var ErrPriceUnavailable = errors.New("pricing: no source has a price for this asset at this timestamp")

// errAssetNotSupported is an internal per-source condition: the source has
// no mapping for the asset, so retrying it is pointless.
var errAssetNotSupported = errors.New("pricing: asset not supported by source")

// Source is a single upstream price provider. Quote returns the USD price of
// the asset at (or nearest prior to) the given time. Rank is the source's
// fixed priority (0 is primary): persisted quotes carry it so a cache entry
// can only ever be superseded by a strictly better source, regardless of
// which sources happen to be configured on a given deployment.
type Source interface {
	Name() string
	Rank() int32
	Quote(ctx context.Context, chainID int64, assetID string, at time.Time) (decimal.Decimal, error)
}

// Quote is a resolved historical price. SourceRank records the priority of
// the source that produced it; rank 0 is the primary source.
type Quote struct {
	ChainID    int64
	AssetID    string
	BucketTs   time.Time
	Price      decimal.Decimal
	Source     string
	SourceRank int32
}
