package controllers

import "tracker/src/models"

// PortfolioValue sums current_price times units across the holdings. A holding
// without a positive price snapshot or positive units contributes zero.
func PortfolioValue(holdings []models.Holding) float64 {
	var total float64
	for _, h := range holdings {
		if h.CurrentPrice > 0 && h.Units > 0 {
			total += h.CurrentPrice * h.Units
		}
	}
	return total
}

// PortfolioPNL sums units times (current_price - bought_price). A holding is
// counted only when units, bought_price and current_price are all positive;
// anything else contributes exactly zero.
func PortfolioPNL(holdings []models.Holding) float64 {
	var total float64
	for _, h := range holdings {
		if h.CurrentPrice > 0 && h.BoughtPrice > 0 && h.Units > 0 {
			total += h.Units * (h.CurrentPrice - h.BoughtPrice)
		}
	}
	return total
}
