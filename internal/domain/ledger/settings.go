package ledger

import (
	"creator-booking/internal/domain/booking"
	"creator-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Settings is the singleton configuration of the settlement engine.
type Settings struct {
	feePPM         uint32
	platformWallet uuid.UUID
	custody        uuid.UUID
}

func NewSettings(feePPM uint32, platformWallet, custody uuid.UUID) (*Settings, error) {
	if err := validateFeePPM(feePPM); err != nil {
		return nil, err
	}
	if platformWallet == uuid.Nil || custody == uuid.Nil {
		return nil, errs.ErrInvalidIdentity
	}
	return &Settings{feePPM: feePPM, platformWallet: platformWallet, custody: custody}, nil
}

func ReconstructSettings(feePPM uint32, platformWallet, custody uuid.UUID) *Settings {
	return &Settings{feePPM: feePPM, platformWallet: platformWallet, custody: custody}
}

func (s *Settings) FeePPM() uint32            { return s.feePPM }
func (s *Settings) PlatformWallet() uuid.UUID { return s.platformWallet }
func (s *Settings) Custody() uuid.UUID        { return s.custody }

// SetFeeRate returns the previous rate.
func (s *Settings) SetFeeRate(ppm uint32) (uint32, error) {
	if err := validateFeePPM(ppm); err != nil {
		return 0, err
	}
	if ppm == s.feePPM {
		return 0, errs.ErrNoOp
	}
	old := s.feePPM
	s.feePPM = ppm
	return old, nil
}

// SetPlatformWallet returns the previous wallet.
func (s *Settings) SetPlatformWallet(wallet uuid.UUID) (uuid.UUID, error) {
	if wallet == uuid.Nil {
		return uuid.Nil, errs.ErrInvalidIdentity
	}
	if wallet == s.platformWallet {
		return uuid.Nil, errs.ErrNoOp
	}
	old := s.platformWallet
	s.platformWallet = wallet
	return old, nil
}

func validateFeePPM(ppm uint32) error {
	if ppm == 0 || ppm > booking.PPMDenominator {
		return errs.ErrInvalidRate
	}
	return nil
}
