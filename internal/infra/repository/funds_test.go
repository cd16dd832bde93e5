//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"

	"creator-booking/internal/infra"
	"creator-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// int64Row scans a single int64 or returns err.
type int64Row struct {
	v   int64
	err error
}

func (r int64Row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.v
	return nil
}

var (
	payer   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	custody = uuid.MustParse("00000000-0000-0000-0000-0000000c0de0")
	updated = pgconn.NewCommandTag("UPDATE 1")
)

func TestTransferFrom(t *testing.T) {
	ctx := context.Background()

	t.Run("success: spends allowance and moves funds", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, lockAllowance, []any{payer, custody}).Return(int64Row{v: 100})
		db.On("QueryRow", ctx, lockBalance, []any{payer}).Return(int64Row{v: 500})
		db.On("Exec", ctx, spendAllowance, []any{payer, custody, int64(100)}).Return(updated, nil)
		db.On("Exec", ctx, debitBalance, []any{payer, int64(100)}).Return(updated, nil)
		db.On("Exec", ctx, creditBalance, []any{custody, int64(100)}).Return(updated, nil)

		repo := NewFundsRepository(db)
		require.NoError(t, repo.TransferFrom(ctx, custody, payer, custody, 100))
		db.AssertExpectations(t)
	})

	t.Run("error: allowance too low writes nothing", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, lockAllowance, []any{payer, custody}).Return(int64Row{v: 99})

		repo := NewFundsRepository(db)
		err := repo.TransferFrom(ctx, custody, payer, custody, 100)
		assert.True(t, errs.Is(err, errs.ErrInsufficientFunds))
		db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error: missing balance row counts as zero", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, lockAllowance, []any{payer, custody}).Return(int64Row{v: 100})
		db.On("QueryRow", ctx, lockBalance, []any{payer}).Return(int64Row{err: pgx.ErrNoRows})

		repo := NewFundsRepository(db)
		err := repo.TransferFrom(ctx, custody, payer, custody, 100)
		assert.True(t, errs.Is(err, errs.ErrInsufficientFunds))
		db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error: database failure is classified", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, lockAllowance, []any{payer, custody}).Return(int64Row{err: errors.New("conn reset")})

		repo := NewFundsRepository(db)
		err := repo.TransferFrom(ctx, custody, payer, custody, 100)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: non-positive amount", func(t *testing.T) {
		repo := NewFundsRepository(new(MockDBTX))
		require.ErrorIs(t, repo.TransferFrom(ctx, custody, payer, custody, 0), errs.ErrInvalidAmount)
	})
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()

	t.Run("error: custody short of funds is a transfer failure", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, lockBalance, []any{custody}).Return(int64Row{v: 10})

		repo := NewFundsRepository(db)
		err := repo.Transfer(ctx, custody, creator, 11)
		assert.True(t, errs.Is(err, errs.ErrTransferFailed))
	})

	t.Run("error: credit failure surfaces", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, lockBalance, []any{custody}).Return(int64Row{v: 10})
		db.On("Exec", ctx, debitBalance, []any{custody, int64(10)}).Return(updated, nil)
		db.On("Exec", ctx, creditBalance, []any{creator, int64(10)}).Return(pgconn.CommandTag{}, &pgconn.PgError{Code: "23514"})

		repo := NewFundsRepository(db)
		err := repo.Transfer(ctx, custody, creator, 10)
		assert.True(t, infra.IsKind(err, infra.KindCheckViolated))
	})
}

func TestBalanceOfMissingRow(t *testing.T) {
	ctx := context.Background()
	db := new(MockDBTX)
	db.On("QueryRow", ctx, mock.Anything, []any{payer}).Return(int64Row{err: pgx.ErrNoRows})

	bal, err := NewFundsRepository(db).BalanceOf(ctx, payer)
	require.NoError(t, err)
	assert.Zero(t, bal)
}
