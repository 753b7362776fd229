package newsapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tracker/src/clients/newsapi"
	"tracker/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL, apiKey string) *newsapi.NewsAPIServiceClient {
	cfg := &config.Config{}
	cfg.ExternalClients.News.BaseURL = baseURL
	cfg.ExternalClients.News.APIKey = apiKey
	return newsapi.NewClient(cfg)
}

func TestGetEverything(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the crypto query and parses articles", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/everything", r.URL.Path)
			assert.Equal(t, "cryptocurrency AND (bitcoin OR ethereum OR blockchain)", r.URL.Query().Get("q"))
			assert.Equal(t, "en", r.URL.Query().Get("language"))
			assert.Equal(t, "publishedAt", r.URL.Query().Get("sortBy"))
			assert.Equal(t, "5", r.URL.Query().Get("pageSize"))
			assert.Equal(t, "news-key", r.URL.Query().Get("apiKey"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": "ok",
				"totalResults": 1,
				"articles": [{
					"source": {"id": null, "name": "CoinDesk"},
					"author": "A. Writer",
					"title": "Bitcoin climbs",
					"description": "Markets move.",
					"url": "https://example.com/article",
					"urlToImage": "https://example.com/image.png",
					"publishedAt": "2026-08-30T12:00:00Z"
				}]
			}`))
		}))
		defer upstream.Close()

		resp, err := newClient(upstream.URL, "news-key").GetEverything(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Status)
		require.Len(t, resp.Articles, 1)
		assert.Equal(t, "CoinDesk", resp.Articles[0].Source.Name)
		assert.Equal(t, "Bitcoin climbs", resp.Articles[0].Title)
	})

	t.Run("non-200 upstream is an error", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status": "error", "code": "apiKeyInvalid"}`))
		}))
		defer upstream.Close()

		_, err := newClient(upstream.URL, "bad-key").GetEverything(ctx)
		assert.Error(t, err)
	})
}
