package controllers

import (
	"context"

	"tracker/src/utils"
)

// RefreshUser re-stamps the price snapshot of every holding of one user.
// Prices already fetched this run are reused via the supplied cache. A coin
// whose price cannot be resolved keeps its previous snapshot.
func (c *Controller) RefreshUser(ctx context.Context, userID int64, priceCache map[string]float64) (int, error) {
	holdings, err := c.Holdings.GetAllByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	if priceCache == nil {
		priceCache = map[string]float64{}
	}

	refreshed := 0
	for _, h := range holdings {
		price, ok := priceCache[h.CoinID]
		if !ok {
			price, err = c.CoinGecko.GetSimplePrice(ctx, h.CoinID)
			if err != nil {
				c.Logger.WithField("coin_id", h.CoinID).Warn("price refresh skipped: ", err)
				continue
			}
			priceCache[h.CoinID] = price
		}

		if err := c.Holdings.UpdateCurrentPrice(ctx, h.ID, price); err != nil {
			return refreshed, err
		}
		refreshed++
	}
	return refreshed, nil
}

// RefreshAll re-stamps price snapshots for every user. Only one full refresh
// runs at a time; an overlapping call reports a conflict instead of piling up.
func (c *Controller) RefreshAll(ctx context.Context) (int, error) {
	if !c.refreshMu.TryLock() {
		return 0, utils.NewHTTPError(409, "refresh already in progress")
	}
	defer c.refreshMu.Unlock()

	userIDs, err := c.Users.GetAllIDs(ctx)
	if err != nil {
		return 0, err
	}

	priceCache := map[string]float64{}
	total := 0
	for _, userID := range userIDs {
		refreshed, err := c.RefreshUser(ctx, userID, priceCache)
		total += refreshed
		if err != nil {
			c.Logger.WithField("user_id", userID).Error("portfolio refresh failed: ", err)
		}
	}

	c.Logger.WithField("holdings", total).Info("portfolio refresh completed")
	return total, nil
}
