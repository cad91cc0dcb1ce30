package main

import (
	"github.com/rs/zerolog/log"

	"tudu/config"
	"tudu/di"
	"tudu/helper"
	"tudu/shared/logger"
	"tudu/shared/timezone"
)

// @title						tudu API
// @version					1.0
// @description				Shared to-do items plus account sign-up and sign-in.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)
	logger.SetLogLevel(cfg)
	timezone.Init(cfg.App.Timezone)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
