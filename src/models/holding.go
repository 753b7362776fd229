package models

import "time"

// Holding is one user's position in one coin. CurrentPrice is a snapshot in USD
// captured at the last add or refresh, not a live quote.
type Holding struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	CoinID       string    `db:"coin_id" json:"coin_id"`
	Units        float64   `db:"units" json:"units"`
	BoughtPrice  float64   `db:"bought_price" json:"bought_price"`
	CurrentPrice float64   `db:"current_price" json:"current_price"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
