//go:build unit || e2e

package builder

import (
	"time"

	"creator-booking/internal/domain/creator"
	reqdto "creator-booking/internal/handler/dto/request"
	"creator-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreatorBuilder struct {
	ID          uuid.UUID
	Rate        int64
	MetadataURI string
	Now         time.Time
}

func NewCreatorBuilder() *CreatorBuilder {
	return &CreatorBuilder{
		ID:          uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Rate:        100,
		MetadataURI: "ipfs://creator-profile",
		Now:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *CreatorBuilder) With(mutate func(*CreatorBuilder)) *CreatorBuilder {
	mutate(b)
	return b
}

func (b *CreatorBuilder) WithID(id uuid.UUID) *CreatorBuilder {
	b.ID = id
	return b
}

func (b *CreatorBuilder) WithRate(rate int64) *CreatorBuilder {
	b.Rate = rate
	return b
}

func (b *CreatorBuilder) WithMetadataURI(uri string) *CreatorBuilder {
	b.MetadataURI = uri
	return b
}

func (b *CreatorBuilder) BuildDomain() (*creator.Profile, error) {
	return creator.NewProfile(b.ID, b.Rate, b.MetadataURI, b.Now)
}

func (b *CreatorBuilder) BuildRequestDTO() reqdto.CreatorTermsRequest {
	return reqdto.CreatorTermsRequest{
		Rate:        b.Rate,
		MetadataURI: b.MetadataURI,
	}
}

func (b *CreatorBuilder) BuildView() *queries.CreatorView {
	return &queries.CreatorView{
		Exists:       true,
		ID:           b.ID,
		Rate:         b.Rate,
		MetadataURI:  b.MetadataURI,
		RegisteredAt: b.Now,
		UpdatedAt:    b.Now,
	}
}
