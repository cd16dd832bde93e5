package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"creator-booking/internal/domain/user"
	"creator-booking/internal/infra"
	"creator-booking/internal/pkg/clock"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/pkg/jwt"
	"creator-booking/internal/pkg/password"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresAt   time.Time
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Signup(ctx context.Context, email, plainPassword string) (*user.User, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow         shared.UnitOfWork
	jwtService  *jwt.Service
	hasher      *password.Hasher
	clock       clock.Clock
	adminEmails []string
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	jwtService *jwt.Service,
	hasher *password.Hasher,
	clock clock.Clock,
	adminEmails []string,
) AuthCommands {
	normalized := make([]string, 0, len(adminEmails))
	for _, e := range adminEmails {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(e)))
	}
	return &authCommandsImpl{
		uow:         uow,
		jwtService:  jwtService,
		hasher:      hasher,
		clock:       clock,
		adminEmails: normalized,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, email, plainPassword string) (*user.User, error) {
	credentials, err := user.NewCredentials(email, plainPassword)
	if err != nil {
		return nil, err
	}

	hash, err := a.hasher.Hash(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	role := user.RoleViewer
	if slices.Contains(a.adminEmails, credentials.Email().Value()) {
		role = user.RoleAdmin
	}

	account := user.NewUser(credentials.Email(), hash, role, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Accounts().Create(ctx, account); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("account created", "user_id", account.ID().String(), "role", role.String())
	return account, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, plainPassword)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	var account *user.User
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Accounts().FindByEmail(ctx, credentials.Email())
		if err != nil {
			return err
		}
		account = u
		return nil
	})
	if err != nil {
		if infra.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.hasher.Compare(account.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateAccessToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      account.ID(),
		Role:        account.Role(),
		AccessToken: token,
		ExpiresAt:   a.clock.Now().Add(a.jwtService.TokenDuration()),
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
