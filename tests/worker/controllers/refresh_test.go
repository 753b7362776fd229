package controllers_test

import (
	"context"
	"io"
	"testing"

	"tracker/src/models"
	workercontrollers "tracker/src/worker/controllers"
	"tracker/tests/mocks"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkerController(gecko *mocks.FakeCoinGeckoClient) (*workercontrollers.Controller, *mocks.FakeUserRepository, *mocks.FakeHoldingRepository) {
	users := mocks.NewFakeUserRepository()
	holdings := mocks.NewFakeHoldingRepository()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return workercontrollers.NewController(users, holdings, gecko, logger), users, holdings
}

func seedUser(t *testing.T, users *mocks.FakeUserRepository, name string) int64 {
	t.Helper()
	u := &models.User{Username: name, PasswordHash: "x"}
	require.NoError(t, users.Create(context.Background(), u))
	return u.ID
}

func seedHolding(t *testing.T, holdings *mocks.FakeHoldingRepository, userID int64, coinID string, price float64) {
	t.Helper()
	_, err := holdings.Upsert(context.Background(), &models.Holding{
		UserID: userID, CoinID: coinID, Units: 1, BoughtPrice: price, CurrentPrice: price,
	})
	require.NoError(t, err)
}

func TestRefreshUser(t *testing.T) {
	ctx := context.Background()

	t.Run("updates every resolvable snapshot", func(t *testing.T) {
		gecko := &mocks.FakeCoinGeckoClient{Prices: map[string]float64{"bitcoin": 120, "ethereum": 20}}
		c, users, holdings := newWorkerController(gecko)

		alice := seedUser(t, users, "alice")
		seedHolding(t, holdings, alice, "bitcoin", 100)
		seedHolding(t, holdings, alice, "ethereum", 10)

		refreshed, err := c.RefreshUser(ctx, alice, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, refreshed)

		rows, err := holdings.GetAllByUserID(ctx, alice)
		require.NoError(t, err)
		prices := map[string]float64{}
		for _, h := range rows {
			prices[h.CoinID] = h.CurrentPrice
		}
		assert.Equal(t, 120.0, prices["bitcoin"])
		assert.Equal(t, 20.0, prices["ethereum"])
	})

	t.Run("unresolvable coin keeps its snapshot", func(t *testing.T) {
		gecko := &mocks.FakeCoinGeckoClient{Prices: map[string]float64{"bitcoin": 120}}
		c, users, holdings := newWorkerController(gecko)

		alice := seedUser(t, users, "alice")
		seedHolding(t, holdings, alice, "bitcoin", 100)
		seedHolding(t, holdings, alice, "delisted-coin", 5)

		refreshed, err := c.RefreshUser(ctx, alice, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, refreshed)

		rows, err := holdings.GetAllByUserID(ctx, alice)
		require.NoError(t, err)
		for _, h := range rows {
			if h.CoinID == "delisted-coin" {
				assert.Equal(t, 5.0, h.CurrentPrice)
			}
		}
	})

	t.Run("price cache suppresses repeat lookups", func(t *testing.T) {
		gecko := &mocks.FakeCoinGeckoClient{Prices: map[string]float64{"bitcoin": 120}}
		c, users, holdings := newWorkerController(gecko)

		alice := seedUser(t, users, "alice")
		seedHolding(t, holdings, alice, "bitcoin", 100)

		cache := map[string]float64{"bitcoin": 130}
		refreshed, err := c.RefreshUser(ctx, alice, cache)
		require.NoError(t, err)
		assert.Equal(t, 1, refreshed)
		assert.Equal(t, 0, gecko.PriceCalls)

		rows, err := holdings.GetAllByUserID(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, 130.0, rows[0].CurrentPrice)
	})
}

func TestRefreshAll(t *testing.T) {
	ctx := context.Background()

	t.Run("one lookup per coin across users", func(t *testing.T) {
		gecko := &mocks.FakeCoinGeckoClient{Prices: map[string]float64{"bitcoin": 120}}
		c, users, holdings := newWorkerController(gecko)

		alice := seedUser(t, users, "alice")
		bob := seedUser(t, users, "bob")
		seedHolding(t, holdings, alice, "bitcoin", 100)
		seedHolding(t, holdings, bob, "bitcoin", 90)

		total, err := c.RefreshAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Equal(t, 1, gecko.PriceCalls)
	})

	t.Run("empty user set is a no-op", func(t *testing.T) {
		c, _, _ := newWorkerController(&mocks.FakeCoinGeckoClient{})

		total, err := c.RefreshAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})
}
