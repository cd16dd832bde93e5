//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"creator-booking/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	TestPassword = "password123"
	// bcrypt hash of TestPassword
	testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO accounts (id, email, password_hash, role, created_at) VALUES ($1, $2, $3, $4, now()) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM accounts WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCreator(t *testing.T, db DBLike, id uuid.UUID, rate int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO creators (id, rate, metadata_uri, registered_at, updated_at) VALUES ($1, $2, $3, now(), now())",
		id, rate, "ipfs://"+id.String())
	require.NoError(t, err)
}

// FundAccount credits balance and grants the custody account an equal allowance.
func FundAccount(t *testing.T, db DBLike, account uuid.UUID, amount int64) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO fund_balances (account_id, balance) VALUES ($1, $2)
		ON CONFLICT (account_id) DO UPDATE SET balance = fund_balances.balance + EXCLUDED.balance`,
		account, amount)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO fund_allowances (owner_id, spender_id, amount)
		SELECT $1, custody_account, $2 FROM ledger_settings
		ON CONFLICT (owner_id, spender_id) DO UPDATE SET amount = EXCLUDED.amount`,
		account, amount)
	require.NoError(t, err)
}

func Balance(t *testing.T, db DBLike, account uuid.UUID) int64 {
	t.Helper()

	var balance int64
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT balance FROM fund_balances WHERE account_id = $1), 0)", account).Scan(&balance)
	require.NoError(t, err)
	return balance
}

// inserts the ledger settings row using the test configuration
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	ledger := config.NewTestConfig().Ledger

	_, err := pool.Exec(ctx, `
		INSERT INTO ledger_settings (fee_ppm, platform_wallet, custody_account) VALUES ($1, $2, $3)
		ON CONFLICT (singleton) DO NOTHING`,
		int32(ledger.FeePPM), uuid.MustParse(ledger.PlatformWallet), uuid.MustParse(ledger.CustodyAccount))
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
