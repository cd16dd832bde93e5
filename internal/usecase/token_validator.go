package usecase

import (
	"creator-booking/internal/domain/user"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/pkg/jwt"
	"creator-booking/internal/usecase/shared"
)

// TokenValidator resolves a bearer token to the calling actor.
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, jwt.ErrInvalidToken)
	}

	return shared.Actor{ID: claims.UserID, Role: role}, nil
}
