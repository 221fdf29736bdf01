package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"latina/config"
	"latina/helper"
	"latina/shared/logger"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down/step-up/drop) is required")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg("Migration failed. Use 'up', 'down', 'drop' or 'step-up'")
	}
}
