package request

import "github.com/google/uuid"

type TransferReceiptRequest struct {
	To uuid.UUID `json:"to" binding:"required"`
}
