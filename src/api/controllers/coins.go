package controllers

import (
	"context"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"
)

const marketsCacheTTL = time.Minute

// GetTopCoins returns the top coins by market cap, cached briefly in memory so
// dashboard reloads do not hammer CoinGecko.
func (c *Controller) GetTopCoins(ctx context.Context) ([]schemas.Coin, error) {
	if coins, ok := c.marketsCache.Get(); ok {
		return coins, nil
	}

	markets, err := c.CoinGecko.GetMarkets(ctx)
	if err != nil {
		return nil, utils.BadGateway("Failed to fetch data from CoinGecko")
	}

	coins := make([]schemas.Coin, 0, len(markets))
	for _, m := range markets {
		coins = append(coins, schemas.Coin{
			ID:             m.ID,
			Symbol:         m.Symbol,
			Name:           m.Name,
			Image:          m.Image,
			CurrentPrice:   m.CurrentPrice,
			MarketCap:      m.MarketCap,
			MarketCapRank:  m.MarketCapRank,
			PriceChange24h: m.PriceChange24h,
		})
	}

	c.marketsCache.Set(coins, marketsCacheTTL)
	return coins, nil
}

// SearchCoins looks up coins matching the query.
func (c *Controller) SearchCoins(ctx context.Context, query string) ([]schemas.SearchResult, error) {
	if query == "" {
		return nil, utils.BadRequest("Query parameter is required.")
	}

	response, err := c.CoinGecko.Search(ctx, query)
	if err != nil {
		return nil, utils.BadGateway("Failed to search for coins")
	}

	results := make([]schemas.SearchResult, 0, len(response.Coins))
	for _, coin := range response.Coins {
		results = append(results, schemas.SearchResult{
			ID:            coin.ID,
			Symbol:        coin.Symbol,
			Name:          coin.Name,
			Thumb:         coin.Thumb,
			MarketCapRank: coin.MarketCapRank,
		})
	}
	return results, nil
}

// GetMarketChart returns the price history of a coin over the given number of
// days (default 7).
func (c *Controller) GetMarketChart(ctx context.Context, coinID string, days int) (*schemas.MarketChartResponse, error) {
	if coinID == "" {
		return nil, utils.BadRequest("coin id is required")
	}
	if days <= 0 {
		days = 7
	}

	chart, err := c.CoinGecko.GetMarketChart(ctx, coinID, days)
	if err != nil {
		return nil, utils.BadGateway("Failed to fetch chart data")
	}

	points := make([]schemas.ChartPoint, 0, len(chart.Prices))
	for _, pair := range chart.Prices {
		if len(pair) < 2 {
			continue
		}
		points = append(points, schemas.ChartPoint{
			Timestamp: int64(pair[0]),
			Price:     pair[1],
		})
	}

	return &schemas.MarketChartResponse{
		CoinID: coinID,
		Days:   days,
		Prices: points,
	}, nil
}
