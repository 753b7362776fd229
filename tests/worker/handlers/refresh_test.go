package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tracker/src/models"
	"tracker/src/worker"
	"tracker/src/worker/controllers"
	"tracker/src/worker/handlers"
	"tracker/tests/mocks"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, gecko *mocks.FakeCoinGeckoClient) (*httptest.Server, *mocks.FakeUserRepository, *mocks.FakeHoldingRepository) {
	t.Helper()

	users := mocks.NewFakeUserRepository()
	holdings := mocks.NewFakeHoldingRepository()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	controller := controllers.NewController(users, holdings, gecko, logger)
	server := worker.NewServerWithHandler(&handlers.Handler{Controller: controller})

	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)
	return ts, users, holdings
}

func TestPostRefreshAll(t *testing.T) {
	gecko := &mocks.FakeCoinGeckoClient{Prices: map[string]float64{"bitcoin": 120}}
	ts, users, holdings := newTestServer(t, gecko)

	u := &models.User{Username: "alice", PasswordHash: "x"}
	require.NoError(t, users.Create(context.Background(), u))
	_, err := holdings.Upsert(context.Background(), &models.Holding{
		UserID: u.ID, CoinID: "bitcoin", Units: 1, BoughtPrice: 100, CurrentPrice: 100,
	})
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/refresh/all", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body["refreshed"])

	rows, err := holdings.GetAllByUserID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, rows[0].CurrentPrice)
}

func TestPostRefreshUser(t *testing.T) {
	gecko := &mocks.FakeCoinGeckoClient{Prices: map[string]float64{"bitcoin": 120}}
	ts, users, holdings := newTestServer(t, gecko)

	u := &models.User{Username: "alice", PasswordHash: "x"}
	require.NoError(t, users.Create(context.Background(), u))
	_, err := holdings.Upsert(context.Background(), &models.Holding{
		UserID: u.ID, CoinID: "bitcoin", Units: 1, BoughtPrice: 100, CurrentPrice: 100,
	})
	require.NoError(t, err)

	t.Run("refreshes one user", func(t *testing.T) {
		resp, err := http.Post(fmt.Sprintf("%s/api/refresh/%d", ts.URL, u.ID), "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]int
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 1, body["refreshed"])
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/refresh/abc", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
