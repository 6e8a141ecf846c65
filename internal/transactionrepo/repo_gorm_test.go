package transactionrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/transaction-api/internal/domain"
	"github.com/go-petr/transaction-api/internal/test"
	"github.com/go-petr/transaction-api/pkg/configpkg"
	"github.com/go-petr/transaction-api/pkg/errorspkg"
)

func setupRepoGORM(t *testing.T) *RepoGORM {
	t.Helper()

	gdb, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, sqlDB.Close())
	})

	repo := NewRepoGORM(gdb)
	require.NoError(t, repo.Migrate(context.Background()))

	return repo
}

func createRandomTransaction(t *testing.T, repo Repository) domain.Transaction {
	t.Helper()

	arg := test.RandomCreateParams()

	tr, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, tr)

	require.Positive(t, tr.ID)
	require.Equal(t, arg.Details, tr.Details)
	require.Equal(t, arg.Amount, tr.Amount)
	require.Equal(t, arg.Account, tr.Account)
	require.Equal(t, arg.Type, tr.Type)
	require.WithinDuration(t, arg.Date, tr.Date, time.Second)

	return tr
}

func TestGORMCreate(t *testing.T) {
	repo := setupRepoGORM(t)

	first := createRandomTransaction(t, repo)
	second := createRandomTransaction(t, repo)

	require.Greater(t, second.ID, first.ID)
}

func TestGORMCreateZeroAmount(t *testing.T) {
	repo := setupRepoGORM(t)

	arg := test.RandomCreateParams()
	arg.Amount = 0

	tr, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.Zero(t, tr.Amount)
}

func TestGORMGet(t *testing.T) {
	repo := setupRepoGORM(t)
	want := createRandomTransaction(t, repo)

	got, err := repo.Get(context.Background(), want.ID)
	require.NoError(t, err)

	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.Details, got.Details)
	require.Equal(t, want.Amount, got.Amount)
	require.Equal(t, want.Account, got.Account)
	require.Equal(t, want.Type, got.Type)
	require.WithinDuration(t, want.Date, got.Date, time.Second)
	require.Equal(t, time.UTC, got.Date.Location())
}

func TestGORMGetNotFound(t *testing.T) {
	repo := setupRepoGORM(t)

	got, err := repo.Get(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
	require.Empty(t, got)
}

func TestGORMList(t *testing.T) {
	repo := setupRepoGORM(t)

	empty, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	const n = 5

	created := make([]domain.Transaction, 0, n)
	for i := 0; i < n; i++ {
		created = append(created, createRandomTransaction(t, repo))
	}

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, n)

	for i, item := range items {
		require.Equal(t, created[i].ID, item.ID)
		require.Equal(t, created[i].Details, item.Details)

		got, err := repo.Get(context.Background(), item.ID)
		require.NoError(t, err)
		require.Equal(t, item.ID, got.ID)
	}
}

func TestGORMDelete(t *testing.T) {
	repo := setupRepoGORM(t)
	tr := createRandomTransaction(t, repo)

	deleted, err := repo.Delete(context.Background(), tr.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), tr.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = repo.Get(context.Background(), tr.ID)
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestGORMIDsAreNotReused(t *testing.T) {
	repo := setupRepoGORM(t)
	tr := createRandomTransaction(t, repo)

	deleted, err := repo.Delete(context.Background(), tr.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	next := createRandomTransaction(t, repo)
	require.Greater(t, next.ID, tr.ID)
}

func TestGORMStoreFailure(t *testing.T) {
	gdb, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	repo := NewRepoGORM(gdb)
	ctx := context.Background()

	_, err = repo.Create(ctx, test.RandomCreateParams())
	require.ErrorIs(t, err, errorspkg.ErrInternal)

	_, err = repo.Get(ctx, 1)
	require.ErrorIs(t, err, errorspkg.ErrInternal)

	_, err = repo.List(ctx)
	require.ErrorIs(t, err, errorspkg.ErrInternal)

	_, err = repo.Delete(ctx, 1)
	require.ErrorIs(t, err, errorspkg.ErrInternal)
}

func TestOpen(t *testing.T) {
	config := configpkg.Config{
		DBDriver:      DriverSQLite,
		DBSource:      ":memory:",
		DBAutoMigrate: true,
	}

	s, err := Open(context.Background(), config)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	createRandomTransaction(t, s.Repo)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	s, err := Open(context.Background(), configpkg.Config{DBDriver: "mysql"})
	require.Error(t, err)
	require.Nil(t, s)
}
