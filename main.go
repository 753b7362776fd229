package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"tracker/src/api"
	"tracker/src/config"
	"tracker/src/scheduler"
	"tracker/src/utils"
	aws_handler "tracker/src/utils/aws"
	"tracker/src/worker"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Local runs keep secrets in a .env file; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}

	logger := utils.NewLogger(logrus.InfoLevel)

	if cfg.AWS.SecretID != "" {
		if err := loadAWSSecrets(cfg); err != nil {
			logger.Fatal("Error while loading secrets: ", err)
		}
	}

	errC, err := run(cfg, logger)
	if err != nil {
		logger.Fatal("Couldn't run: ", err)
	}

	if err := <-errC; err != nil {
		logger.Error("Error while running: ", err)
	}
}

func loadAWSSecrets(cfg *config.Config) error {
	awsHandler, err := aws_handler.NewAWSHandler(cfg.AWS.Region)
	if err != nil {
		return err
	}
	secrets, err := awsHandler.SecretManager.GetServiceSecrets(cfg.AWS.SecretID)
	if err != nil {
		return err
	}
	if secrets.JWTSecret != "" {
		cfg.Auth.JWTSecret = secrets.JWTSecret
	}
	if secrets.CoinGeckoAPIKey != "" {
		cfg.ExternalClients.CoinGecko.APIKey = secrets.CoinGeckoAPIKey
	}
	if secrets.NewsAPIKey != "" {
		cfg.ExternalClients.News.APIKey = secrets.NewsAPIKey
	}
	return nil
}

func run(cfg *config.Config, logger *logrus.Logger) (<-chan error, error) {
	errC := make(chan error, 1)

	var httpServer *http.Server
	if cfg.Service.Type == config.WORKER {
		server, err := worker.NewServer(cfg, logger)
		if err != nil {
			return nil, err
		}
		httpServer = worker.NewHTTPServer(server, cfg)

		if cfg.Worker.RefreshCron != "" {
			_, err = scheduler.NewScheduledTask(cfg.Worker.RefreshCron, logger, func() {
				if _, err := server.Handler.Controller.RefreshAll(context.Background()); err != nil {
					logger.Error("scheduled refresh failed: ", err)
				}
			})
			if err != nil {
				return nil, err
			}
			logger.Info("scheduled portfolio refresh on: ", cfg.Worker.RefreshCron)
		}
	} else {
		server, err := api.NewServer(cfg, logger)
		if err != nil {
			return nil, err
		}
		httpServer = api.NewHTTPServer(server, cfg)
	}

	go func() {
		logger.Info("Starting server on port ", cfg.Service.Port)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
