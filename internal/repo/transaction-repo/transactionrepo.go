package transactionrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (sender_account_id, receiver_account_id, amount, status, memo, category, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		transaction.SenderAccountID, transaction.ReceiverAccountID, transaction.Amount,
		transaction.Status, transaction.Memo, transaction.Category, transaction.IdempotencyKey).
		Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) FindByID(ctx context.Context, transactionID int) (*domain.Transaction, error) {
	query := `
        SELECT id, sender_account_id, receiver_account_id, amount, status, memo, category, COALESCE(idempotency_key, ''), created_at
        FROM transactions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, transactionID)

	var transaction domain.Transaction
	err := row.Scan(&transaction.ID, &transaction.SenderAccountID, &transaction.ReceiverAccountID,
		&transaction.Amount, &transaction.Status, &transaction.Memo, &transaction.Category,
		&transaction.IdempotencyKey, &transaction.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &transaction, nil
}

func (r *Repository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	query := `
        SELECT id, sender_account_id, receiver_account_id, amount, status, memo, category, COALESCE(idempotency_key, ''), created_at
        FROM transactions
        WHERE idempotency_key = $1
    `
	row := r.db.QueryRow(ctx, query, key)

	var transaction domain.Transaction
	err := row.Scan(&transaction.ID, &transaction.SenderAccountID, &transaction.ReceiverAccountID,
		&transaction.Amount, &transaction.Status, &transaction.Memo, &transaction.Category,
		&transaction.IdempotencyKey, &transaction.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction by idempotency key", zap.Error(err))
		return nil, err
	}
	return &transaction, nil
}

func (r *Repository) FindByAccountID(ctx context.Context, accountID int, direction string, limit int) ([]domain.Transaction, error) {
	var predicate string
	switch direction {
	case domain.SentDirection:
		predicate = "sender_account_id = $1"
	case domain.ReceivedDirection:
		predicate = "receiver_account_id = $1"
	default:
		predicate = "(sender_account_id = $1 OR receiver_account_id = $1)"
	}
	query := `
        SELECT id, sender_account_id, receiver_account_id, amount, status, memo, category, COALESCE(idempotency_key, ''), created_at
        FROM transactions
        WHERE ` + predicate + `
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// SumSentToday aggregates the SUCCESS amounts sent from the given accounts
// inside [dayStart, dayEnd). Backed by the (sender, status, created_at) index.
func (r *Repository) SumSentToday(ctx context.Context, accountIDs []int, dayStart, dayEnd time.Time) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE sender_account_id = ANY($1)
          AND status = $2
          AND created_at >= $3
          AND created_at < $4
    `
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, accountIDs, domain.SuccessTransactionStatus, dayStart, dayEnd).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum sent transactions", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

func (r *Repository) DeleteByAccountID(ctx context.Context, accountID int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM transactions WHERE sender_account_id = $1 OR receiver_account_id = $1", accountID)
	if err != nil {
		zap.L().Error("can't delete transactions", zap.Error(err))
		return err
	}
	return nil
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		err := rows.Scan(&transaction.ID, &transaction.SenderAccountID, &transaction.ReceiverAccountID,
			&transaction.Amount, &transaction.Status, &transaction.Memo, &transaction.Category,
			&transaction.IdempotencyKey, &transaction.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}
