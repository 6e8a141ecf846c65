// Package main starts the transaction API as a long-running http server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/go-petr/transaction-api/cmd/httpserver"
	"github.com/go-petr/transaction-api/internal/middleware"
	"github.com/go-petr/transaction-api/internal/transactionrepo"
	"github.com/go-petr/transaction-api/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := transactionrepo.Open(ctx, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	server := httpserver.New(store.Repo, logger, config)

	logger.Info().Str("driver", config.DBDriver).Msg("TRANSACTION API SERVER HAS STARTED")

	if err := server.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
	}

	if err := store.Close(); err != nil {
		logger.Error().Err(err).Msg("cannot close database")
	}

	logger.Info().Msg("TRANSACTION API SERVER HAS STOPPED")
}
