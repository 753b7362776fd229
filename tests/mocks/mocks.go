package mocks

import (
	"context"
	"sort"
	"sync"

	"tracker/src/clients/coingecko"
	"tracker/src/clients/newsapi"
	"tracker/src/models"
	"tracker/src/repositories"
)

// FakeUserRepository is an in-memory repositories.UserRepository.
type FakeUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: map[string]models.User{}}
}

func (r *FakeUserRepository) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.Username]; exists {
		return repositories.ErrDuplicateUsername
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.Username] = *u
	return nil
}

func (r *FakeUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (r *FakeUserRepository) GetAllIDs(_ context.Context) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []int64
	for _, u := range r.users {
		ids = append(ids, u.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// FakeHoldingRepository is an in-memory repositories.HoldingRepository whose
// Upsert merges under a single lock, mirroring the atomicity of the SQL
// ON CONFLICT statement.
type FakeHoldingRepository struct {
	mu       sync.Mutex
	nextID   int64
	holdings map[int64]models.Holding
}

func NewFakeHoldingRepository() *FakeHoldingRepository {
	return &FakeHoldingRepository{holdings: map[int64]models.Holding{}}
}

func (r *FakeHoldingRepository) GetAllByUserID(_ context.Context, userID int64) ([]models.Holding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []models.Holding
	for _, h := range r.holdings {
		if h.UserID == userID {
			result = append(result, h)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *FakeHoldingRepository) Upsert(_ context.Context, h *models.Holding) (*models.Holding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.holdings {
		if existing.UserID == h.UserID && existing.CoinID == h.CoinID {
			existing.Units += h.Units
			existing.BoughtPrice = h.BoughtPrice
			existing.CurrentPrice = h.CurrentPrice
			r.holdings[id] = existing
			return &existing, nil
		}
	}

	r.nextID++
	stored := *h
	stored.ID = r.nextID
	r.holdings[stored.ID] = stored
	return &stored, nil
}

func (r *FakeHoldingRepository) UpdateByID(_ context.Context, userID, holdingID int64, units, boughtPrice *float64) (*models.Holding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.holdings[holdingID]
	if !ok || h.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	if units != nil {
		h.Units = *units
	}
	if boughtPrice != nil {
		h.BoughtPrice = *boughtPrice
	}
	r.holdings[holdingID] = h
	return &h, nil
}

func (r *FakeHoldingRepository) UpdateCurrentPrice(_ context.Context, holdingID int64, price float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.holdings[holdingID]
	if !ok {
		return repositories.ErrNotFound
	}
	h.CurrentPrice = price
	r.holdings[holdingID] = h
	return nil
}

func (r *FakeHoldingRepository) DeleteByID(_ context.Context, userID, holdingID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.holdings[holdingID]
	if !ok || h.UserID != userID {
		return repositories.ErrNotFound
	}
	delete(r.holdings, holdingID)
	return nil
}

// FakeCoinGeckoClient is a canned coingecko.CoinGeckoServiceClientI.
type FakeCoinGeckoClient struct {
	mu         sync.Mutex
	Prices     map[string]float64
	Markets    []coingecko.CoinMarket
	SearchData *coingecko.SearchResponse
	Chart      *coingecko.MarketChartResponse
	Err        error
	PriceCalls int
}

func (c *FakeCoinGeckoClient) GetSimplePrice(_ context.Context, coinID string) (float64, error) {
	c.mu.Lock()
	c.PriceCalls++
	c.mu.Unlock()

	if c.Err != nil {
		return 0, c.Err
	}
	price, ok := c.Prices[coinID]
	if !ok {
		return 0, coingecko.ErrPriceNotFound
	}
	return price, nil
}

func (c *FakeCoinGeckoClient) GetMarkets(_ context.Context) ([]coingecko.CoinMarket, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Markets, nil
}

func (c *FakeCoinGeckoClient) Search(_ context.Context, _ string) (*coingecko.SearchResponse, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.SearchData, nil
}

func (c *FakeCoinGeckoClient) GetMarketChart(_ context.Context, _ string, _ int) (*coingecko.MarketChartResponse, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Chart, nil
}

// FakeNewsClient is a canned newsapi.NewsAPIServiceClientI.
type FakeNewsClient struct {
	Response *newsapi.EverythingResponse
	Err      error
}

func (c *FakeNewsClient) GetEverything(_ context.Context) (*newsapi.EverythingResponse, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Response, nil
}
