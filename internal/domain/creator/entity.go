package creator

import (
	"strings"
	"time"

	"creator-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Profile is a creator's bookable offer. A profile is never deleted, so its
// existence is permanent once registered.
type Profile struct {
	id           uuid.UUID
	rate         int64
	metadataURI  string
	registeredAt time.Time
	updatedAt    time.Time
}

// Change carries the before/after values of an update for the audit event.
type Change struct {
	OldRate int64
	NewRate int64
	OldURI  string
	NewURI  string
}

func NewProfile(id uuid.UUID, rate int64, metadataURI string, now time.Time) (*Profile, error) {
	if id == uuid.Nil {
		return nil, errs.ErrInvalidIdentity
	}
	if err := validateTerms(rate, metadataURI); err != nil {
		return nil, err
	}

	return &Profile{
		id:           id,
		rate:         rate,
		metadataURI:  metadataURI,
		registeredAt: now,
		updatedAt:    now,
	}, nil
}

func ReconstructProfile(id uuid.UUID, rate int64, metadataURI string, registeredAt, updatedAt time.Time) *Profile {
	return &Profile{
		id:           id,
		rate:         rate,
		metadataURI:  metadataURI,
		registeredAt: registeredAt,
		updatedAt:    updatedAt,
	}
}

// Update overwrites rate and metadata. Identity and registration time are retained.
func (p *Profile) Update(rate int64, metadataURI string, now time.Time) (Change, error) {
	if err := validateTerms(rate, metadataURI); err != nil {
		return Change{}, err
	}

	change := Change{
		OldRate: p.rate,
		NewRate: rate,
		OldURI:  p.metadataURI,
		NewURI:  metadataURI,
	}
	p.rate = rate
	p.metadataURI = metadataURI
	p.updatedAt = now
	return change, nil
}

// validateTerms rejects a blank uri but the caller's string is stored as given.
func validateTerms(rate int64, metadataURI string) error {
	if rate <= 0 {
		return errs.ErrInvalidRate
	}
	if strings.TrimSpace(metadataURI) == "" {
		return errs.ErrInvalidMetadata
	}
	return nil
}

func (p *Profile) ID() uuid.UUID           { return p.id }
func (p *Profile) Rate() int64             { return p.rate }
func (p *Profile) MetadataURI() string     { return p.metadataURI }
func (p *Profile) RegisteredAt() time.Time { return p.registeredAt }
func (p *Profile) UpdatedAt() time.Time    { return p.updatedAt }

// Clone returns an independent copy for copy-on-write stores.
func (p *Profile) Clone() *Profile {
	cp := *p
	return &cp
}
