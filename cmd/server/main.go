package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"roomrate/server/config"
	"roomrate/server/internal/api"
	"roomrate/server/internal/predictor"
	"roomrate/server/internal/session"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Load model and scaler once; they stay read-only for the process
	// lifetime. A missing or incompatible artifact means no prediction can
	// ever succeed, so refuse to start rather than serve defaults.
	pred, err := predictor.Load(cfg.Artifacts.ModelPath, cfg.Artifacts.ScalerPath, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load prediction artifacts")
	}

	store := session.NewStore(logger)
	handler := api.NewHandler(store, pred, logger)

	router := gin.Default()
	api.SetupRoutes(router, handler, cfg)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
