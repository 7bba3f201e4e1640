package main

import (
	"io"
	"os"

	"github.com/cofrinho-app/backend/internal/config"
	"github.com/cofrinho-app/backend/internal/models"
	"github.com/cofrinho-app/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = cfg.Validate()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if cfg.UsePostgres() {
		err = models.ConnectPostgres(cfg.PostgresDSN())
	} else {
		err = os.MkdirAll(cfg.DataDir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		err = models.Connect(cfg.SQLitePath())
	}
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(cfg, r.Group("/"))

	log.Info().Msg("backend startup complete")

	if err := r.Run(); err != nil {
		log.Error().Msg(err.Error())
	}
}
