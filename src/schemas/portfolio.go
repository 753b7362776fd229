package schemas

import "tracker/src/models"

type AddHoldingRequest struct {
	CoinID      string  `json:"coin_id"`
	Units       float64 `json:"units"`
	BoughtPrice float64 `json:"bought_price"`
}

// UpdateHoldingRequest carries a partial edit. Pointer fields distinguish
// "absent" from zero, an absent field keeps its stored value.
type UpdateHoldingRequest struct {
	Units       *float64 `json:"units,omitempty"`
	BoughtPrice *float64 `json:"bought_price,omitempty"`
}

type PortfolioSummaryResponse struct {
	TotalValue float64          `json:"total_value"`
	TotalPNL   float64          `json:"total_pnl"`
	Holdings   []models.Holding `json:"holdings"`
}
