package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const coingeckoTimeout = 10 * time.Second

// coingeckoIDs maps tickers to CoinGecko coin ids.
var coingeckoIDs = map[string]string{
	"ETH":  "ethereum",
	"BNB":  "binancecoin",
	"POL":  "polygon-ecosystem-token",
	"AVAX": "avalanche-2",
	"WETH": "weth",
	"WBTC": "wrapped-bitcoin",
	"USDC": "usd-coin",
	"USDT": "tether",
	"DAI":  "dai",
}

// CoinGeckoSource is the secondary aggregator in the fallback chain.
type CoinGeckoSource struct {
	baseURL    string
	httpClient *http.Client
}

func NewCoinGeckoSource(baseURL string) *CoinGeckoSource {
	return &CoinGeckoSource{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: coingeckoTimeout,
		},
	}
}

func (s *CoinGeckoSource) Name() string { return "coingecko" }

func (s *CoinGeckoSource) Rank() int32 { return 1 }

type coingeckoRangeResponse struct {
	Prices [][2]float64 `json:"prices"`
}

// Quote fetches the market chart around the requested time and returns the
// closest data point within the window.
func (s *CoinGeckoSource) Quote(ctx context.Context, chainID int64, assetID string, at time.Time) (decimal.Decimal, error) {
	symbol, ok := symbolFor(chainID, assetID)
	if !ok {
		return decimal.Zero, errAssetNotSupported
	}
	coinID, ok := coingeckoIDs[symbol]
	if !ok {
		return decimal.Zero, errAssetNotSupported
	}

	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("from", strconv.FormatInt(at.Add(-time.Hour).Unix(), 10))
	params.Set("to", strconv.FormatInt(at.Add(time.Hour).Unix(), 10))

	endpoint := fmt.Sprintf("%s/api/v3/coins/%s/market_chart/range?%s", s.baseURL, coinID, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get market chart from CoinGecko: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("CoinGecko returned status %d: %s", resp.StatusCode, string(body))
	}

	var chart coingeckoRangeResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return decimal.Zero, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(chart.Prices) == 0 {
		return decimal.Zero, fmt.Errorf("no market data for %s at %s", coinID, at.Format(time.RFC3339))
	}

	// Pick the point closest to the requested time.
	target := float64(at.UnixMilli())
	best := chart.Prices[0]
	for _, point := range chart.Prices[1:] {
		if abs(point[0]-target) < abs(best[0]-target) {
			best = point
		}
	}
	return decimal.NewFromFloat(best[1]), nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
