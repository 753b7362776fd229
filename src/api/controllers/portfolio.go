package controllers

import (
	"context"
	"errors"

	"tracker/src/clients/coingecko"
	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/src/schemas"
	"tracker/src/utils"
)

// GetPortfolio lists the caller's holdings. An empty portfolio is a valid result.
func (c *Controller) GetPortfolio(ctx context.Context, userID int64) ([]models.Holding, error) {
	holdings, err := c.Holdings.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if holdings == nil {
		holdings = []models.Holding{}
	}
	return holdings, nil
}

// AddHolding validates the request, stamps the current market price and inserts
// or merges the holding. Input is rejected before any external call or write.
// A repeated add for the same coin increases units and overwrites the cost
// basis with the new value, it does not average.
func (c *Controller) AddHolding(ctx context.Context, userID int64, req *schemas.AddHoldingRequest) (*models.Holding, error) {
	if req.CoinID == "" || req.Units == 0 || req.BoughtPrice == 0 {
		return nil, utils.BadRequest("coin_id, units, and bought_price are required")
	}
	if req.Units < 0 || req.BoughtPrice < 0 {
		return nil, utils.BadRequest("units and bought_price must be positive")
	}

	price, err := c.CoinGecko.GetSimplePrice(ctx, req.CoinID)
	if err != nil {
		if errors.Is(err, coingecko.ErrPriceNotFound) {
			return nil, utils.BadRequest("Invalid coin_id or unable to fetch current price")
		}
		return nil, utils.BadGateway("Unable to fetch current price")
	}

	holding := &models.Holding{
		UserID:       userID,
		CoinID:       req.CoinID,
		Units:        req.Units,
		BoughtPrice:  req.BoughtPrice,
		CurrentPrice: price,
	}
	return c.Holdings.Upsert(ctx, holding)
}

// UpdateHolding edits units and/or bought_price. The price snapshot is left
// untouched. An id owned by another user reports not-found.
func (c *Controller) UpdateHolding(ctx context.Context, userID, holdingID int64, req *schemas.UpdateHoldingRequest) (*models.Holding, error) {
	if req.Units == nil && req.BoughtPrice == nil {
		return nil, utils.BadRequest("At least one of units or bought_price must be provided")
	}
	if req.Units != nil && *req.Units <= 0 {
		return nil, utils.BadRequest("units must be positive")
	}
	if req.BoughtPrice != nil && *req.BoughtPrice <= 0 {
		return nil, utils.BadRequest("bought_price must be positive")
	}

	holding, err := c.Holdings.UpdateByID(ctx, userID, holdingID, req.Units, req.BoughtPrice)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NotFound("Portfolio entry not found")
		}
		return nil, err
	}
	return holding, nil
}

// DeleteHolding removes a holding permanently once ownership is confirmed.
func (c *Controller) DeleteHolding(ctx context.Context, userID, holdingID int64) error {
	err := c.Holdings.DeleteByID(ctx, userID, holdingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFound("Portfolio entry not found")
		}
		return err
	}
	return nil
}

// RefreshPortfolio re-stamps the price snapshot of every holding. A coin whose
// price cannot be fetched keeps its previous snapshot.
func (c *Controller) RefreshPortfolio(ctx context.Context, userID int64) ([]models.Holding, error) {
	holdings, err := c.Holdings.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	logger := utils.LoggerFromContext(ctx)
	for _, h := range holdings {
		price, err := c.CoinGecko.GetSimplePrice(ctx, h.CoinID)
		if err != nil {
			logger.WithField("coin_id", h.CoinID).Warn("price refresh skipped: ", err)
			continue
		}
		if err := c.Holdings.UpdateCurrentPrice(ctx, h.ID, price); err != nil {
			return nil, err
		}
	}

	return c.GetPortfolio(ctx, userID)
}

// GetPortfolioSummary returns the holdings together with their aggregate value
// and profit/loss.
func (c *Controller) GetPortfolioSummary(ctx context.Context, userID int64) (*schemas.PortfolioSummaryResponse, error) {
	holdings, err := c.GetPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &schemas.PortfolioSummaryResponse{
		TotalValue: PortfolioValue(holdings),
		TotalPNL:   PortfolioPNL(holdings),
		Holdings:   holdings,
	}, nil
}
