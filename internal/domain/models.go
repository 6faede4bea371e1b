package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Account struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	BankName      string          `db:"bank_name"`
	AccountNumber string          `db:"account_number"`
	Balance       decimal.Decimal `db:"balance"`
	IsPrimary     bool            `db:"is_primary"`
	CreatedAt     time.Time       `db:"created_at"`
}

const (
	// PendingTransactionStatus transfer accepted, balances not yet moved;
	PendingTransactionStatus string = "PENDING"
	// SuccessTransactionStatus transfer applied, terminal;
	SuccessTransactionStatus string = "SUCCESS"
	// FailedTransactionStatus transfer rejected, balances untouched, terminal.
	FailedTransactionStatus string = "FAILED"
)

const (
	// SentDirection restricts a history listing to outgoing transfers;
	SentDirection string = "sent"
	// ReceivedDirection restricts a history listing to incoming transfers.
	ReceivedDirection string = "received"
)

type Transaction struct {
	ID                int             `db:"id"`
	SenderAccountID   int             `db:"sender_account_id"`
	ReceiverAccountID int             `db:"receiver_account_id"`
	Amount            decimal.Decimal `db:"amount"`
	Status            string          `db:"status"`
	Memo              string          `db:"memo"`
	Category          string          `db:"category"`
	IdempotencyKey    string          `db:"idempotency_key"`
	CreatedAt         time.Time       `db:"created_at"`
}

type TransferLimit struct {
	ID                  int             `db:"id"`
	UserID              int             `db:"user_id"`
	DailyLimit          decimal.Decimal `db:"daily_limit"`
	PerTransactionLimit decimal.Decimal `db:"per_transaction_limit"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

const (
	// PendingFailedEventStatus event awaits manual remediation;
	PendingFailedEventStatus string = "PENDING"
	// ResolvedFailedEventStatus event handled by an administrator.
	ResolvedFailedEventStatus string = "RESOLVED"
)

type FailedEvent struct {
	ID           int       `db:"id"`
	Topic        string    `db:"topic"`
	RoutingKey   string    `db:"routing_key"`
	Payload      string    `db:"payload"`
	ErrorMessage string    `db:"error_message"`
	Status       string    `db:"status"`
	OccurredAt   time.Time `db:"occurred_at"`
}

// TransferNotification is the fire-and-forget payload published for the
// notification collaborator after a transfer completes.
type TransferNotification struct {
	TransactionID int             `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	ReceiverName  string          `json:"receiver_name"`
	Email         string          `json:"email"`
}

// TransferCommand is the wire-level transfer intent carried by the broker.
type TransferCommand struct {
	FromAccountID  int             `json:"from_account_id"`
	ToAccountID    int             `json:"to_account_id"`
	Amount         decimal.Decimal `json:"amount"`
	Memo           string          `json:"memo,omitempty"`
	Category       string          `json:"category,omitempty"`
	IdempotencyKey string          `json:"idempotency_key"`
}
