package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateAccountRequestDTO struct {
	BankName string `json:"bank_name" validate:"required" example:"EZBank"`
}

type AccountResponseDTO struct {
	ID            int             `json:"id" example:"1"`
	BankName      string          `json:"bank_name" example:"EZBank"`
	AccountNumber string          `json:"account_number" example:"110-4929361579"`
	Balance       decimal.Decimal `json:"balance" example:"1500.00"`
	IsPrimary     bool            `json:"is_primary" example:"true"`
	CreatedAt     time.Time       `json:"created_at"`
}
