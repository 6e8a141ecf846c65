// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/transaction-api/internal/middleware"
	"github.com/go-petr/transaction-api/internal/transactiondelivery"
	"github.com/go-petr/transaction-api/internal/transactionservice"
	"github.com/go-petr/transaction-api/pkg/configpkg"
)

// Server holds handlers router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
	logger zerolog.Logger
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(repo transactionservice.Repo, logger zerolog.Logger, config configpkg.Config) *Server {
	transactionService := transactionservice.New(repo)
	transactionHandler := transactiondelivery.NewHandler(transactionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Unmatched paths answer 400 instead of redirecting.
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Recovery())

	engine.GET("/transaction", transactionHandler.List)
	engine.POST("/transaction", transactionHandler.Create)
	engine.GET("/transaction/:id", transactionHandler.Get)
	engine.DELETE("/transaction/:id", transactionHandler.Delete)

	engine.NoRoute(transactiondelivery.InvalidRequest)

	return &Server{
		Engine: engine,
		Config: config,
		logger: logger,
	}
}

// Run serves requests on Config.ServerAddress until ctx is cancelled,
// then drains in-flight requests within Config.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Config.ServerAddress,
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("address", srv.Addr).Msg("starting http server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}
