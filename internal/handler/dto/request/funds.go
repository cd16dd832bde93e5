package request

import "github.com/google/uuid"

type ApproveRequest struct {
	Amount int64 `json:"amount" binding:"min=0"`
}

type DepositRequest struct {
	Account uuid.UUID `json:"account" binding:"required"`
	Amount  int64     `json:"amount" binding:"required,gt=0"`
}
