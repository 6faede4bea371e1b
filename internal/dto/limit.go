package dto

import "github.com/shopspring/decimal"

type TransferLimitResponseDTO struct {
	UserID              int             `json:"user_id" example:"1"`
	DailyLimit          decimal.Decimal `json:"daily_limit" example:"1000000.00"`
	PerTransactionLimit decimal.Decimal `json:"per_transaction_limit" example:"100000.00"`
	RemainingDaily      decimal.Decimal `json:"remaining_daily" example:"950000.00"`
}

type UpdateTransferLimitRequestDTO struct {
	DailyLimit          decimal.Decimal `json:"daily_limit" validate:"required" example:"2000000.00"`
	PerTransactionLimit decimal.Decimal `json:"per_transaction_limit" validate:"required" example:"200000.00"`
}
