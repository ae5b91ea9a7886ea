package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
	"github.com/shopspring/decimal"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoingeckoAdapter quotes ETH in USD from the Coingecko simple price API
type CoingeckoAdapter struct {
	http *resty.Client
}

// NewCoingeckoAdapter creates a new CoingeckoAdapter
func NewCoingeckoAdapter(cfg *config.RuntimeConfig) *CoingeckoAdapter {
	return newCoingeckoAdapter(coingeckoBaseURL)
}

func newCoingeckoAdapter(baseURL string) *CoingeckoAdapter {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)
	return &CoingeckoAdapter{http: rc}
}

// EthUSD returns the current ETH price in USD
func (c *CoingeckoAdapter) EthUSD(ctx context.Context) (decimal.Decimal, error) {
	var out map[string]map[string]decimal.Decimal
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"ids": "ethereum", "vs_currencies": "usd"}).
		SetResult(&out).
		Get("/simple/price")
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch ETH price: %w", err)
	}
	if resp.IsError() {
		return decimal.Zero, fmt.Errorf("coingecko error: status=%d body=%q", resp.StatusCode(), resp.String())
	}

	price, ok := out["ethereum"]["usd"]
	if !ok {
		return decimal.Zero, fmt.Errorf("coingecko response has no ethereum/usd price")
	}
	return price, nil
}

// Ensure the adapter implements the interface
var _ usecase.PriceFeed = (*CoingeckoAdapter)(nil)
