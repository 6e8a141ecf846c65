// Package test provides shared test helpers.
package test

import (
	"github.com/go-petr/transaction-api/internal/domain"
	"github.com/go-petr/transaction-api/pkg/randompkg"
)

// RandomCreateParams returns random valid input for a new transaction.
func RandomCreateParams() domain.CreateTransactionParams {
	return domain.CreateTransactionParams{
		Details: randompkg.Details(),
		Amount:  randompkg.MoneyAmountBetween(-1_000, 1_000),
		Account: randompkg.Account(),
		Type:    randompkg.Type(),
		Date:    randompkg.Date(),
	}
}

// RandomTransaction returns a random transaction as if it were already stored.
func RandomTransaction() domain.Transaction {
	p := RandomCreateParams()

	return domain.Transaction{
		ID:      randompkg.IntBetween(1, 1_000),
		Details: p.Details,
		Amount:  p.Amount,
		Account: p.Account,
		Type:    p.Type,
		Date:    p.Date,
	}
}
