package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/tdngo/holdscan/internal/metrics"
)

// CoinGeckoClient fetches USD token prices from the CoinGecko
// simple/token_price endpoint.
type CoinGeckoClient struct {
	baseURL    string
	platform   string
	httpClient *http.Client
}

// NewCoinGeckoClient creates a price client for one asset platform
// (e.g. "ethereum").
func NewCoinGeckoClient(baseURL, platform string, timeout time.Duration) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		platform:   platform,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// TokenPrice returns the USD unit price for token, or nil when the
// platform does not list it. Transient failures (network, 429, 5xx)
// are retried with exponential backoff before giving up.
func (c *CoinGeckoClient) TokenPrice(ctx context.Context, token string) (*big.Rat, error) {
	url := fmt.Sprintf("%s/simple/token_price/%s?contract_addresses=%s&vs_currencies=usd",
		c.baseURL, c.platform, strings.ToLower(token))

	var prices map[string]map[string]json.Number
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return retry.RetryableError(fmt.Errorf("price api http %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("price api http %d", resp.StatusCode)
		}

		prices = nil
		if err := json.NewDecoder(resp.Body).Decode(&prices); err != nil {
			return retry.RetryableError(fmt.Errorf("decode price response: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	usd, ok := prices[strings.ToLower(token)]["usd"]
	if !ok {
		metrics.PriceLookupsTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}

	price, ok := new(big.Rat).SetString(usd.String())
	if !ok {
		return nil, fmt.Errorf("invalid price %q for token %s", usd, token)
	}
	metrics.PriceLookupsTotal.WithLabelValues("hit").Inc()
	return price, nil
}
