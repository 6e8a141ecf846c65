package transactionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/go-petr/transaction-api/internal/domain"
	"github.com/go-petr/transaction-api/pkg/errorspkg"
)

// transactionRow is the gorm model of the transaction table.
type transactionRow struct {
	ID      int64     `gorm:"primaryKey;autoIncrement"`
	Details string    `gorm:"type:varchar(255);not null"`
	Amount  float64   `gorm:"not null"`
	Account string    `gorm:"type:varchar(255);not null"`
	Type    string    `gorm:"type:varchar(255);not null"`
	Date    time.Time `gorm:"not null"`
}

// TableName keeps the table name singular.
func (transactionRow) TableName() string {
	return "transaction"
}

func (r transactionRow) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:      r.ID,
		Details: r.Details,
		Amount:  r.Amount,
		Account: r.Account,
		Type:    r.Type,
		Date:    r.Date.UTC(),
	}
}

// RepoGORM facilitates transaction repository layer logic on top of gorm.
type RepoGORM struct {
	db *gorm.DB
}

// NewRepoGORM returns transaction RepoGORM.
func NewRepoGORM(db *gorm.DB) *RepoGORM {
	return &RepoGORM{db: db}
}

// Migrate creates the transaction table when it does not exist yet.
func (r *RepoGORM) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&transactionRow{})
}

// Create creates the transaction and then returns it.
func (r *RepoGORM) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := transactionRow{
		Details: arg.Details,
		Amount:  arg.Amount,
		Account: arg.Account,
		Type:    arg.Type,
		Date:    arg.Date,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		l.Error().Err(err).Send()
		return domain.Transaction{}, errorspkg.ErrInternal
	}

	return row.toDomain(), nil
}

// Get returns the transaction with the given id.
func (r *RepoGORM) Get(ctx context.Context, id int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var row transactionRow

	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Info().Err(err).Int64("id", id).Send()
			return domain.Transaction{}, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return domain.Transaction{}, errorspkg.ErrInternal
	}

	return row.toDomain(), nil
}

// List returns all stored transactions in insertion order.
func (r *RepoGORM) List(ctx context.Context) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var rows []transactionRow

	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	items := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}

	return items, nil
}

// Delete removes the transaction with the given id and reports whether a row was removed.
func (r *RepoGORM) Delete(ctx context.Context, id int64) (bool, error) {
	l := zerolog.Ctx(ctx)

	res := r.db.WithContext(ctx).Delete(&transactionRow{}, id)
	if res.Error != nil {
		l.Error().Err(res.Error).Send()
		return false, errorspkg.ErrInternal
	}

	return res.RowsAffected > 0, nil
}
