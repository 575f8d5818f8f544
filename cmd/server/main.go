package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/go-bic/bic-bank/cmd/httpserver"
	"github.com/go-bic/bic-bank/internal/middleware"
	"github.com/go-bic/bic-bank/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	server, err := httpserver.New(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	if err := http.ListenAndServe(config.ServerAddress, server); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
