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

const (
	cmcBaseURL = "https://pro-api.coinmarketcap.com"
	cmcTimeout = 10 * time.Second
)

// CoinMarketCapSource resolves historical quotes from the CoinMarketCap
// Pro API. It is the primary source in the default fallback chain.
type CoinMarketCapSource struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewCoinMarketCapSource creates a CoinMarketCap source. Calls fail without
// a valid API key.
func NewCoinMarketCapSource(apiKey string) *CoinMarketCapSource {
	return &CoinMarketCapSource{
		apiKey:  apiKey,
		baseURL: cmcBaseURL,
		httpClient: &http.Client{
			Timeout: cmcTimeout,
		},
	}
}

func (s *CoinMarketCapSource) Name() string { return "coinmarketcap" }

func (s *CoinMarketCapSource) Rank() int32 { return 0 }

// --- CMC API response structs ---

type cmcHistoricalQuote struct {
	Timestamp string `json:"timestamp"`
	Quote     map[string]struct {
		Price float64 `json:"price"`
	} `json:"quote"`
}

type cmcHistoricalData struct {
	Symbol string               `json:"symbol"`
	Quotes []cmcHistoricalQuote `json:"quotes"`
}

type cmcStatus struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

type cmcHistoricalResponse struct {
	Status cmcStatus                      `json:"status"`
	Data   map[string][]cmcHistoricalData `json:"data"`
}

// Error represents an API error returned by CoinMarketCap.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("CoinMarketCap API error: status %d, message: %s", e.StatusCode, e.Message)
}

// Quote fetches the hourly historical quote covering the requested time.
func (s *CoinMarketCapSource) Quote(ctx context.Context, chainID int64, assetID string, at time.Time) (decimal.Decimal, error) {
	symbol, ok := symbolFor(chainID, assetID)
	if !ok {
		return decimal.Zero, errAssetNotSupported
	}

	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("time_start", strconv.FormatInt(at.Unix(), 10))
	params.Set("time_end", strconv.FormatInt(at.Add(time.Hour).Unix(), 10))
	params.Set("interval", "1h")
	params.Set("convert", "USD")

	endpoint := s.baseURL + "/v2/cryptocurrency/quotes/historical?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-CMC_PRO_API_KEY", s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get historical quotes from CoinMarketCap: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp cmcHistoricalResponse
		_ = json.Unmarshal(body, &errResp)
		msg := fmt.Sprintf("status code %d", resp.StatusCode)
		if errResp.Status.ErrorMessage != "" {
			msg = errResp.Status.ErrorMessage
		}
		return decimal.Zero, &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	var apiResponse cmcHistoricalResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return decimal.Zero, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if apiResponse.Status.ErrorCode != 0 {
		return decimal.Zero, &Error{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("API error %d: %s", apiResponse.Status.ErrorCode, apiResponse.Status.ErrorMessage),
		}
	}

	series, ok := apiResponse.Data[symbol]
	if !ok || len(series) == 0 || len(series[0].Quotes) == 0 {
		return decimal.Zero, fmt.Errorf("no historical data for %s at %s", symbol, at.Format(time.RFC3339))
	}

	quote, ok := series[0].Quotes[0].Quote["USD"]
	if !ok {
		return decimal.Zero, fmt.Errorf("no USD quote for %s", symbol)
	}
	return decimal.NewFromFloat(quote.Price), nil
}
