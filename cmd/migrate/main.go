package main

import (
	"github.com/rs/zerolog/log"

	"tudu/cmd/migrate/commands"
	"tudu/config"
	"tudu/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)
	logger.SetLogLevel(cfg)

	if err := commands.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
