package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"tracker/src/config"
	"tracker/src/utils/requests"
)

const cryptoQuery = "cryptocurrency AND (bitcoin OR ethereum OR blockchain)"

type NewsAPIServiceClientI interface {
	GetEverything(ctx context.Context) (*EverythingResponse, error)
}

type NewsAPIServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
	APIKey  string
}

// NewClient creates a new instance of NewsAPIServiceClient
func NewClient(cfg *config.Config) *NewsAPIServiceClient {
	api := requests.NewExternalAPIService()
	return &NewsAPIServiceClient{
		API:     api,
		BaseURL: cfg.ExternalClients.News.BaseURL,
		APIKey:  cfg.ExternalClients.News.APIKey,
	}
}

// GetEverything fetches the latest crypto news articles
func (c *NewsAPIServiceClient) GetEverything(ctx context.Context) (*EverythingResponse, error) {
	endpoint := fmt.Sprintf("%s/everything", c.BaseURL)

	params := url.Values{}
	params.Add("q", cryptoQuery)
	params.Add("language", "en")
	params.Add("sortBy", "publishedAt")
	params.Add("pageSize", "5")
	params.Add("apiKey", c.APIKey)

	resp, err := c.API.Get(ctx, endpoint, params, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi everything returned status %d", resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var everythingResponse EverythingResponse
	err = json.Unmarshal(responseBody, &everythingResponse)
	if err != nil {
		return nil, err
	}

	return &everythingResponse, nil
}
