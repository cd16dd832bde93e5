package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"creator-booking/internal/infra/db"
	"creator-booking/internal/infra/repository"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultMaxRetries = 3
	defaultBaseDelay  = 50 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	maxRetries int
	base       time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		maxRetries: defaultMaxRetries,
		base:       defaultBaseDelay,
	}
}

// Within runs fn in a SERIALIZABLE transaction. Settlement reads the payer's
// index, the creator and the settings row, then writes based on them; any
// interleaving that would invalidate those reads aborts with 40001 and the
// whole closure is replayed.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, newPgTx(pgxTx))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, u.maxRetries) {
			if isRetryableError(err) && attempt == u.maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, u.base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, newPgTx(pgxTx)); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// mask the sign bit before converting
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	creators  *repository.CreatorRepository
	bookings  *repository.BookingRepository
	userIndex *repository.UserIndexRepository
	settings  *repository.SettingsRepository
	funds     *repository.FundsRepository
	receipts  *repository.ReceiptRepository
	events    *repository.EventRepository
	accounts  *repository.AccountRepository
}

func newPgTx(dbtx db.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx}
}

func (t *pgTx) Creators() shared.CreatorRepository {
	if t.creators == nil {
		t.creators = repository.NewCreatorRepository(t.dbtx)
	}
	return t.creators
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookings
}

func (t *pgTx) UserIndex() shared.UserIndexRepository {
	if t.userIndex == nil {
		t.userIndex = repository.NewUserIndexRepository(t.dbtx)
	}
	return t.userIndex
}

func (t *pgTx) Settings() shared.SettingsRepository {
	if t.settings == nil {
		t.settings = repository.NewSettingsRepository(t.dbtx)
	}
	return t.settings
}

func (t *pgTx) Funds() shared.FundsPort {
	if t.funds == nil {
		t.funds = repository.NewFundsRepository(t.dbtx)
	}
	return t.funds
}

func (t *pgTx) Receipts() shared.ReceiptRegistry {
	if t.receipts == nil {
		t.receipts = repository.NewReceiptRepository(t.dbtx)
	}
	return t.receipts
}

func (t *pgTx) Events() shared.EventRepository {
	if t.events == nil {
		t.events = repository.NewEventRepository(t.dbtx)
	}
	return t.events
}

func (t *pgTx) Accounts() shared.AccountRepository {
	if t.accounts == nil {
		t.accounts = repository.NewAccountRepository(t.dbtx)
	}
	return t.accounts
}
