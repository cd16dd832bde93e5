package repository

import (
	"context"

	"creator-booking/internal/domain/user"
	"creator-booking/internal/infra"
	"creator-booking/internal/infra/db"
	"creator-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertAccount      = `INSERT INTO accounts (id, email, password_hash, role, created_at) VALUES ($1, $2, $3, $4, $5)`
	findAccountByEmail = `SELECT id, email, password_hash, role, created_at FROM accounts WHERE email = $1`
	findAccountByID    = `SELECT id, email, password_hash, role, created_at FROM accounts WHERE id = $1`
)

type AccountRepository struct {
	db db.DBTX
}

func NewAccountRepository(dbtx db.DBTX) *AccountRepository {
	return &AccountRepository{db: dbtx}
}

func (r *AccountRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, insertAccount,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		pgconv.TimeToPgtype(u.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create account", err)
	}
	return nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	return r.findOne(ctx, findAccountByEmail, email.Value())
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, findAccountByID, id)
}

func (r *AccountRepository) findOne(ctx context.Context, query string, arg any) (*user.User, error) {
	var (
		id        uuid.UUID
		email     string
		hash      string
		role      string
		createdAt pgtype.Timestamptz
	)
	if err := r.db.QueryRow(ctx, query, arg).Scan(&id, &email, &hash, &role, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account", err)
	}

	parsedEmail, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err, infra.KindDBFailure)
	}
	parsedRole, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored role is invalid", err, infra.KindDBFailure)
	}

	return user.ReconstructUser(id, parsedEmail, hash, parsedRole, pgconv.TimeFromPgtype(createdAt)), nil
}
