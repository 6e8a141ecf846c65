package transactionservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/transaction-api/internal/domain"
	"github.com/go-petr/transaction-api/internal/test"
	"github.com/go-petr/transaction-api/pkg/errorspkg"
)

func TestCreate(t *testing.T) {
	arg := test.RandomCreateParams()
	created := domain.Transaction{
		ID:      7,
		Details: arg.Details,
		Amount:  arg.Amount,
		Account: arg.Account,
		Type:    arg.Type,
		Date:    arg.Date,
	}

	local := time.FixedZone("UTC+3", 3*60*60)

	testCases := []struct {
		name          string
		arg           domain.CreateTransactionParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.Transaction, err error)
	}{
		{
			name: "OK",
			arg:  arg,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Eq(arg)).Times(1).Return(created, nil)
			},
			checkResponse: func(res domain.Transaction, err error) {
				require.NoError(t, err)
				require.Equal(t, created, res)
			},
		},
		{
			name: "DateNormalizedToUTC",
			arg: func() domain.CreateTransactionParams {
				a := arg
				a.Date = arg.Date.In(local)
				return a
			}(),
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).
					DoAndReturn(func(_ context.Context, got domain.CreateTransactionParams) (domain.Transaction, error) {
						require.Equal(t, time.UTC, got.Date.Location())
						require.True(t, got.Date.Equal(arg.Date))
						return created, nil
					})
			},
			checkResponse: func(res domain.Transaction, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "InvalidInput",
			arg: func() domain.CreateTransactionParams {
				a := arg
				a.Account = ""
				return a
			}(),
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				require.Empty(t, res)
			},
		},
		{
			name: "RepoError",
			arg:  arg,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).
					Return(domain.Transaction{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.Transaction, err error) {
				require.ErrorIs(t, err, errorspkg.ErrInternal)
				require.Empty(t, res)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			s := New(repo)
			res, err := s.Create(context.Background(), tc.arg)
			tc.checkResponse(res, err)
		})
	}
}

func TestGet(t *testing.T) {
	tr := test.RandomTransaction()

	testCases := []struct {
		name    string
		ret     domain.Transaction
		retErr  error
		wantErr error
	}{
		{name: "OK", ret: tr},
		{name: "NotFound", retErr: domain.ErrTransactionNotFound, wantErr: domain.ErrTransactionNotFound},
		{name: "Internal", retErr: errorspkg.ErrInternal, wantErr: errorspkg.ErrInternal},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			repo.EXPECT().Get(gomock.Any(), gomock.Eq(tr.ID)).Times(1).Return(tc.ret, tc.retErr)

			res, err := New(repo).Get(context.Background(), tr.ID)
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, tc.ret, res)
		})
	}
}

func TestList(t *testing.T) {
	items := []domain.Transaction{test.RandomTransaction(), test.RandomTransaction()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().List(gomock.Any()).Times(1).Return(items, nil)

	res, err := New(repo).List(context.Background())
	require.NoError(t, err)
	require.Equal(t, items, res)
}

func TestDelete(t *testing.T) {
	const id = int64(3)

	testCases := []struct {
		name    string
		deleted bool
		retErr  error
		wantErr error
	}{
		{name: "OK", deleted: true},
		{name: "NotFound", deleted: false, wantErr: domain.ErrTransactionNotFound},
		{name: "Internal", retErr: errorspkg.ErrInternal, wantErr: errorspkg.ErrInternal},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			repo.EXPECT().Delete(gomock.Any(), gomock.Eq(id)).Times(1).Return(tc.deleted, tc.retErr)

			err := New(repo).Delete(context.Background(), id)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
