package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated account. Its ID is the identity used as payer and
// as creator identity throughout the ledger.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
	}
}

func ReconstructUser(id uuid.UUID, email Email, passwordHash string, role Role, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
