package controllers

import (
	"time"

	"tracker/src/clients/coingecko"
	"tracker/src/clients/newsapi"
	"tracker/src/config"
	"tracker/src/repositories"
	"tracker/src/schemas"
	"tracker/src/utils"
	redis_utils "tracker/src/utils/redis"

	"github.com/go-chi/jwtauth"
)

type Controller struct {
	Users     repositories.UserRepository
	Holdings  repositories.HoldingRepository
	CoinGecko coingecko.CoinGeckoServiceClientI
	News      newsapi.NewsAPIServiceClientI
	TokenAuth *jwtauth.JWTAuth
	TokenTTL  time.Duration

	// Redis is optional, news responses fall back to direct fetches without it.
	Redis *redis_utils.RedisHandler

	marketsCache *utils.Cache[[]schemas.Coin]
}

func NewController(
	users repositories.UserRepository,
	holdings repositories.HoldingRepository,
	coinGeckoClient coingecko.CoinGeckoServiceClientI,
	newsClient newsapi.NewsAPIServiceClientI,
	redisHandler *redis_utils.RedisHandler,
	cfg *config.Config,
) *Controller {
	return &Controller{
		Users:        users,
		Holdings:     holdings,
		CoinGecko:    coinGeckoClient,
		News:         newsClient,
		TokenAuth:    jwtauth.New("HS256", []byte(cfg.Auth.JWTSecret), nil),
		TokenTTL:     time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
		Redis:        redisHandler,
		marketsCache: utils.NewCache[[]schemas.Coin](),
	}
}
