// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrTransactionNotFound indicates that no transaction matches the given id.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidInput indicates that a required transaction field is missing.
	ErrInvalidInput = errors.New("invalid input data")
)

// Transaction holds a single ledger entry.
type Transaction struct {
	ID      int64     `json:"id"`
	Details string    `json:"details"`
	Amount  float64   `json:"amount"` // sign is not enforced
	Account string    `json:"account"`
	Type    string    `json:"type"`
	Date    time.Time `json:"date"`
}

// CreateTransactionParams is the input data to create a transaction.
type CreateTransactionParams struct {
	Details string
	Amount  float64
	Account string
	Type    string
	Date    time.Time
}

// Validate reports ErrInvalidInput when any text field is empty or the date is unset.
func (p CreateTransactionParams) Validate() error {
	if p.Details == "" || p.Account == "" || p.Type == "" || p.Date.IsZero() {
		return ErrInvalidInput
	}

	return nil
}
