package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"latina/config"
	"latina/di"
	"latina/helper"
	"latina/internal/catalog"
	"latina/shared/logger"
)

// @title Latina Grill API
// @version 1.0
// @description Reservation requests for the Latina Grill site.
// @BasePath /
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetOutput(cfg, os.Stdout)
	logger.SetLogLevel(cfg)

	if err := catalog.CheckParity(); err != nil {
		log.Fatal().Err(err).Msg("Translation catalogs are out of sync")
	}

	if cfg.DB.Postgres.Enable && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate reservation journal")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
