// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/transaction-api/internal/domain"
	"github.com/go-petr/transaction-api/pkg/dbpkg"
	"github.com/go-petr/transaction-api/pkg/errorspkg"
)

// RepoPGS facilitates transaction repository layer logic on Postgres.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createTableQuery = `
CREATE TABLE IF NOT EXISTS "transaction" (
    id      BIGSERIAL PRIMARY KEY,
    details VARCHAR(255) NOT NULL,
    amount  DOUBLE PRECISION NOT NULL,
    account VARCHAR(255) NOT NULL,
    type    VARCHAR(255) NOT NULL,
    date    TIMESTAMPTZ NOT NULL
)
`

// Migrate creates the transaction table when it does not exist yet.
func (r *RepoPGS) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createTableQuery)
	return err
}

const createQuery = `
INSERT INTO
    "transaction" (details, amount, account, type, date)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING id, details, amount, account, type, date
`

// Create creates the transaction and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.Details, arg.Amount, arg.Account, arg.Type, arg.Date)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.Details,
		&t.Amount,
		&t.Account,
		&t.Type,
		&t.Date,
	)

	if err != nil {
		l.Error().Err(err).Send()

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "not_null_violation" {
			return domain.Transaction{}, domain.ErrInvalidInput
		}

		return domain.Transaction{}, errorspkg.ErrInternal
	}

	t.Date = t.Date.UTC()

	return t, nil
}

const getQuery = `
SELECT
	id, details, amount, account, type, date
FROM "transaction"
WHERE id = $1
`

// Get returns the transaction with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.Details,
		&t.Amount,
		&t.Account,
		&t.Type,
		&t.Date,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Info().Err(err).Int64("id", id).Send()
			return domain.Transaction{}, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return domain.Transaction{}, errorspkg.ErrInternal
	}

	t.Date = t.Date.UTC()

	return t, nil
}

const listQuery = `
SELECT
	id, details, amount, account, type, date
FROM "transaction"
ORDER BY id
`

// List returns all stored transactions in insertion order.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.Details, &t.Amount, &t.Account, &t.Type, &t.Date); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		t.Date = t.Date.UTC()
		items = append(items, t)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const deleteQuery = `
DELETE FROM "transaction"
WHERE id = $1
`

// Delete removes the transaction with the given id and reports whether a row was removed.
func (r *RepoPGS) Delete(ctx context.Context, id int64) (bool, error) {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()
		return false, errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return false, errorspkg.ErrInternal
	}

	return n > 0, nil
}
