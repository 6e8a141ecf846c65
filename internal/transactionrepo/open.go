package transactionrepo

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/go-petr/transaction-api/internal/domain"
	"github.com/go-petr/transaction-api/pkg/configpkg"
	"github.com/go-petr/transaction-api/pkg/dbpkg"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Repository is the contract both store backends satisfy.
type Repository interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Get(ctx context.Context, id int64) (domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Migrate(ctx context.Context) error
}

// Store is an opened repository together with its underlying connection pool.
type Store struct {
	Repo  Repository
	close func() error
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.close()
}

// Open connects to the store selected by config.DBDriver.
//
// The schema is created first when config.DBAutoMigrate is set.
func Open(ctx context.Context, config configpkg.Config) (*Store, error) {
	var s *Store

	switch config.DBDriver {
	case DriverPostgres:
		db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
		if err != nil {
			return nil, fmt.Errorf("cannot connect to postgres: %w", err)
		}

		s = &Store{Repo: NewRepoPGS(db), close: db.Close}
	case DriverSQLite:
		gdb, err := OpenSQLite(config.DBSource)
		if err != nil {
			return nil, err
		}

		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("cannot access sqlite pool: %w", err)
		}

		s = &Store{Repo: NewRepoGORM(gdb), close: sqlDB.Close}
	default:
		return nil, fmt.Errorf("unsupported db driver %q", config.DBDriver)
	}

	if config.DBAutoMigrate {
		if err := s.Repo.Migrate(ctx); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("cannot migrate schema: %w", err)
		}
	}

	return s, nil
}

// OpenSQLite opens a gorm connection to the sqlite database at path.
//
// The pool is limited to one connection so that in-memory databases are shared by all queries.
func OpenSQLite(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to sqlite: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("cannot access sqlite pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)

	return gdb, nil
}
