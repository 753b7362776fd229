package controllers

import (
	"sync"

	"tracker/src/clients/coingecko"
	"tracker/src/repositories"

	"github.com/sirupsen/logrus"
)

type Controller struct {
	Users     repositories.UserRepository
	Holdings  repositories.HoldingRepository
	CoinGecko coingecko.CoinGeckoServiceClientI
	Logger    *logrus.Logger

	// refreshMu makes full refreshes single-flight so a slow run and the next
	// cron tick never interleave.
	refreshMu sync.Mutex
}

func NewController(
	users repositories.UserRepository,
	holdings repositories.HoldingRepository,
	coinGeckoClient coingecko.CoinGeckoServiceClientI,
	logger *logrus.Logger,
) *Controller {
	return &Controller{
		Users:     users,
		Holdings:  holdings,
		CoinGecko: coinGeckoClient,
		Logger:    logger,
	}
}
