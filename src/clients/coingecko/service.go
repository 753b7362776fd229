package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"tracker/src/config"
	"tracker/src/utils/requests"
)

const quoteCurrency = "usd"

// ErrPriceNotFound is returned when CoinGecko resolves the request but has no
// price for the given coin id.
var ErrPriceNotFound = fmt.Errorf("price not found for coin")

type CoinGeckoServiceClientI interface {
	GetSimplePrice(ctx context.Context, coinID string) (float64, error)
	GetMarkets(ctx context.Context) ([]CoinMarket, error)
	Search(ctx context.Context, query string) (*SearchResponse, error)
	GetMarketChart(ctx context.Context, coinID string, days int) (*MarketChartResponse, error)
}

type CoinGeckoServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
	APIKey  string
}

// NewClient creates a new instance of CoinGeckoServiceClient
func NewClient(cfg *config.Config) *CoinGeckoServiceClient {
	api := requests.NewExternalAPIService()
	return &CoinGeckoServiceClient{
		API:     api,
		BaseURL: cfg.ExternalClients.CoinGecko.BaseURL,
		APIKey:  cfg.ExternalClients.CoinGecko.APIKey,
	}
}

func (c *CoinGeckoServiceClient) headers() map[string]string {
	if c.APIKey == "" {
		return nil
	}
	return map[string]string{"x-cg-pro-api-key": c.APIKey}
}

// GetSimplePrice fetches the current price of a single coin in the quote currency
func (c *CoinGeckoServiceClient) GetSimplePrice(ctx context.Context, coinID string) (float64, error) {
	endpoint := fmt.Sprintf("%s/simple/price", c.BaseURL)

	params := url.Values{}
	params.Add("ids", coinID)
	params.Add("vs_currencies", quoteCurrency)

	resp, err := c.API.Get(ctx, endpoint, params, c.headers())
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("coingecko simple/price returned status %d", resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var priceResponse SimplePriceResponse
	err = json.Unmarshal(responseBody, &priceResponse)
	if err != nil {
		return 0, err
	}

	price, ok := priceResponse[coinID][quoteCurrency]
	if !ok || price == 0 {
		return 0, ErrPriceNotFound
	}

	return price, nil
}

// GetMarkets fetches the top coins ordered by market cap
func (c *CoinGeckoServiceClient) GetMarkets(ctx context.Context) ([]CoinMarket, error) {
	endpoint := fmt.Sprintf("%s/coins/markets", c.BaseURL)

	params := url.Values{}
	params.Add("vs_currency", quoteCurrency)
	params.Add("order", "market_cap_desc")
	params.Add("per_page", "10")
	params.Add("page", "1")
	params.Add("sparkline", "false")

	resp, err := c.API.Get(ctx, endpoint, params, c.headers())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko coins/markets returned status %d", resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var markets []CoinMarket
	err = json.Unmarshal(responseBody, &markets)
	if err != nil {
		return nil, err
	}

	return markets, nil
}

// Search looks up coins by name or symbol. This endpoint needs no API key.
func (c *CoinGeckoServiceClient) Search(ctx context.Context, query string) (*SearchResponse, error) {
	endpoint := fmt.Sprintf("%s/search", c.BaseURL)

	params := url.Values{}
	params.Add("query", query)

	resp, err := c.API.Get(ctx, endpoint, params, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko search returned status %d", resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var searchResponse SearchResponse
	err = json.Unmarshal(responseBody, &searchResponse)
	if err != nil {
		return nil, err
	}

	return &searchResponse, nil
}

// GetMarketChart fetches the price history of a coin over the given number of days
func (c *CoinGeckoServiceClient) GetMarketChart(ctx context.Context, coinID string, days int) (*MarketChartResponse, error) {
	endpoint := fmt.Sprintf("%s/coins/%s/market_chart", c.BaseURL, coinID)

	params := url.Values{}
	params.Add("vs_currency", quoteCurrency)
	params.Add("days", strconv.Itoa(days))

	resp, err := c.API.Get(ctx, endpoint, params, c.headers())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko market_chart returned status %d", resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var chartResponse MarketChartResponse
	err = json.Unmarshal(responseBody, &chartResponse)
	if err != nil {
		return nil, err
	}

	return &chartResponse, nil
}
