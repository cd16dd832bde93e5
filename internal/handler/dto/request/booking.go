package request

import (
	"time"

	"creator-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	CreatorID uuid.UUID `json:"creator_id" binding:"required"`
	Start     time.Time `json:"start" binding:"required"`
	End       time.Time `json:"end" binding:"required"`
}

func (r *ReserveRequest) ToInput(payer uuid.UUID) commands.ReserveInput {
	return commands.ReserveInput{
		Payer:   payer,
		Creator: r.CreatorID,
		Start:   r.Start.UTC().Truncate(time.Second),
		End:     r.End.UTC().Truncate(time.Second),
	}
}
