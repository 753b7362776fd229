package coingecko

// SimplePriceResponse maps coin id -> currency -> price, e.g.
// {"bitcoin": {"usd": 64000.12}}.
type SimplePriceResponse map[string]map[string]float64

type CoinMarket struct {
	ID             string  `json:"id"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Image          string  `json:"image"`
	CurrentPrice   float64 `json:"current_price"`
	MarketCap      float64 `json:"market_cap"`
	MarketCapRank  int     `json:"market_cap_rank"`
	PriceChange24h float64 `json:"price_change_percentage_24h"`
}

type SearchCoin struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Thumb         string `json:"thumb"`
	MarketCapRank int    `json:"market_cap_rank"`
}

type SearchResponse struct {
	Coins []SearchCoin `json:"coins"`
}

// MarketChartResponse carries [timestamp-ms, value] pairs as CoinGecko returns
// them.
type MarketChartResponse struct {
	Prices       [][]float64 `json:"prices"`
	MarketCaps   [][]float64 `json:"market_caps"`
	TotalVolumes [][]float64 `json:"total_volumes"`
}
