package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransferRequestDTO struct {
	FromAccountID int             `json:"from_account_id" validate:"required" example:"1"`
	ToAccountID   int             `json:"to_account_id" validate:"required" example:"2"`
	Amount        decimal.Decimal `json:"amount" validate:"required" example:"5000.00"`
	Memo          string          `json:"memo,omitempty" example:"lunch"`
	Category      string          `json:"category,omitempty" example:"food"`
	// IdempotencyKey lets clients resubmit safely; generated when omitted.
	IdempotencyKey string `json:"idempotency_key,omitempty" example:"8f14e45f-ea8a-4f6e-9f3c-2d1a6a0b7c11"`
}

type TransferAcceptedResponseDTO struct {
	Message        string `json:"message"`
	IdempotencyKey string `json:"idempotency_key" example:"8f14e45f-ea8a-4f6e-9f3c-2d1a6a0b7c11"`
}

type TransactionResponseDTO struct {
	ID                int             `json:"id" example:"10"`
	SenderAccountID   int             `json:"sender_account_id" example:"1"`
	ReceiverAccountID int             `json:"receiver_account_id" example:"2"`
	Amount            decimal.Decimal `json:"amount" example:"5000.00"`
	Status            string          `json:"status" example:"SUCCESS"`
	Memo              string          `json:"memo,omitempty"`
	Category          string          `json:"category,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
