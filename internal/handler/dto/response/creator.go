package response

import (
	"creator-booking/internal/domain/creator"
	"creator-booking/internal/usecase/queries"
)

type CreatorResponse struct {
	Exists       bool   `json:"exists"`
	ID           string `json:"id"`
	Rate         int64  `json:"rate"`
	MetadataURI  string `json:"metadata_uri"`
	RegisteredAt int64  `json:"registered_at,omitempty"`
	UpdatedAt    int64  `json:"updated_at,omitempty"`
}

func FromCreatorView(v *queries.CreatorView) *CreatorResponse {
	res := &CreatorResponse{
		Exists:      v.Exists,
		ID:          v.ID.String(),
		Rate:        v.Rate,
		MetadataURI: v.MetadataURI,
	}
	if v.Exists {
		res.RegisteredAt = v.RegisteredAt.Unix()
		res.UpdatedAt = v.UpdatedAt.Unix()
	}
	return res
}

func FromProfile(p *creator.Profile) *CreatorResponse {
	return &CreatorResponse{
		Exists:       true,
		ID:           p.ID().String(),
		Rate:         p.Rate(),
		MetadataURI:  p.MetadataURI(),
		RegisteredAt: p.RegisteredAt().Unix(),
		UpdatedAt:    p.UpdatedAt().Unix(),
	}
}
