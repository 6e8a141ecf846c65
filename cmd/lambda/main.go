// Package main serves the transaction API as an AWS Lambda function behind API Gateway.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/transaction-api/cmd/httpserver"
	"github.com/go-petr/transaction-api/internal/lambdadelivery"
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

	// The pool is opened once per cold start and reused by warm invocations.
	store, err := transactionrepo.Open(context.Background(), config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	server := httpserver.New(store.Repo, logger, config)
	proxy := lambdadelivery.NewProxy(server, logger)

	lambda.StartWithOptions(proxy.Handle, lambda.WithEnableSIGTERM(func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("cannot close database")
		}
	}))
}
