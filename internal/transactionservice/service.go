// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/transaction-api/internal/domain"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Get(ctx context.Context, id int64) (domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo Repo
}

// New returns transaction service struct to manage transaction bussines logic.
func New(tr Repo) *Service {
	return &Service{repo: tr}
}

// Create stores a new transaction and returns it with the assigned id.
func (s *Service) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	if err := arg.Validate(); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		return domain.Transaction{}, err
	}

	arg.Date = arg.Date.UTC()

	return s.repo.Create(ctx, arg)
}

// Get returns transaction for the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Transaction, error) {
	return s.repo.Get(ctx, id)
}

// List returns every stored transaction.
func (s *Service) List(ctx context.Context) ([]domain.Transaction, error) {
	return s.repo.List(ctx)
}

// Delete removes the transaction with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if !deleted {
		return domain.ErrTransactionNotFound
	}

	return nil
}
