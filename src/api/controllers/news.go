package controllers

import (
	"context"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"
)

const (
	newsCacheKey = "tracker:news:latest"
	newsCacheTTL = 5 * time.Minute
)

// GetNews returns recent crypto news articles, served from Redis when a cached
// copy exists.
func (c *Controller) GetNews(ctx context.Context) ([]schemas.NewsArticle, error) {
	if c.Redis != nil {
		var cached []schemas.NewsArticle
		if err := c.Redis.Get(ctx, newsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	response, err := c.News.GetEverything(ctx)
	if err != nil {
		return nil, utils.BadGateway("Failed to fetch news data")
	}

	articles := make([]schemas.NewsArticle, 0, len(response.Articles))
	for _, a := range response.Articles {
		articles = append(articles, schemas.NewsArticle{
			Source:      a.Source.Name,
			Author:      a.Author,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
		})
	}

	if c.Redis != nil {
		if err := c.Redis.Set(ctx, newsCacheKey, articles, newsCacheTTL); err != nil {
			utils.LoggerFromContext(ctx).Warn("failed to cache news: ", err)
		}
	}

	return articles, nil
}
