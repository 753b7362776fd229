package controllers_test

import (
	"testing"

	"tracker/src/api/controllers"
	"tracker/src/models"

	"github.com/stretchr/testify/assert"
)

func TestPortfolioValue(t *testing.T) {
	t.Run("empty portfolio is worth zero", func(t *testing.T) {
		assert.Equal(t, 0.0, controllers.PortfolioValue(nil))
		assert.Equal(t, 0.0, controllers.PortfolioValue([]models.Holding{}))
	})

	t.Run("sums price times units", func(t *testing.T) {
		holdings := []models.Holding{
			{Units: 2, CurrentPrice: 100},
			{Units: 0, CurrentPrice: 50},
		}
		assert.Equal(t, 200.0, controllers.PortfolioValue(holdings))
	})

	t.Run("missing price snapshot contributes zero", func(t *testing.T) {
		holdings := []models.Holding{
			{Units: 3, CurrentPrice: 0},
			{Units: 1, CurrentPrice: 10},
		}
		assert.Equal(t, 10.0, controllers.PortfolioValue(holdings))
	})
}

func TestPortfolioPNL(t *testing.T) {
	t.Run("single profitable holding", func(t *testing.T) {
		holdings := []models.Holding{
			{Units: 3, BoughtPrice: 10, CurrentPrice: 15},
		}
		assert.Equal(t, 15.0, controllers.PortfolioPNL(holdings))
	})

	t.Run("loss is negative", func(t *testing.T) {
		holdings := []models.Holding{
			{Units: 2, BoughtPrice: 100, CurrentPrice: 60},
		}
		assert.Equal(t, -80.0, controllers.PortfolioPNL(holdings))
	})

	t.Run("missing price snapshot contributes zero, not a negative skew", func(t *testing.T) {
		holdings := []models.Holding{
			{Units: 3, BoughtPrice: 10, CurrentPrice: 15},
			// Without the skip this would add 5 * (0 - 1000) = -5000.
			{Units: 5, BoughtPrice: 1000, CurrentPrice: 0},
		}
		assert.Equal(t, 15.0, controllers.PortfolioPNL(holdings))
	})

	t.Run("missing bought price contributes zero", func(t *testing.T) {
		holdings := []models.Holding{
			{Units: 2, BoughtPrice: 0, CurrentPrice: 40},
		}
		assert.Equal(t, 0.0, controllers.PortfolioPNL(holdings))
	})

	t.Run("empty portfolio", func(t *testing.T) {
		assert.Equal(t, 0.0, controllers.PortfolioPNL(nil))
	})
}
