package limitrepo

import (
	"context"

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

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.TransferLimit, error) {
	query := `
        SELECT id, user_id, daily_limit, per_transaction_limit, updated_at
        FROM transfer_limits
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var limit domain.TransferLimit
	err := row.Scan(&limit.ID, &limit.UserID, &limit.DailyLimit, &limit.PerTransactionLimit, &limit.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transfer limit", zap.Error(err))
		return nil, err
	}
	return &limit, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.TransferLimit, error) {
	query := `
        SELECT id, user_id, daily_limit, per_transaction_limit, updated_at
        FROM transfer_limits
        ORDER BY user_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get transfer limits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var limits []domain.TransferLimit
	for rows.Next() {
		var limit domain.TransferLimit
		err := rows.Scan(&limit.ID, &limit.UserID, &limit.DailyLimit, &limit.PerTransactionLimit, &limit.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan transfer limit row", zap.Error(err))
			return nil, err
		}
		limits = append(limits, limit)
	}

	return limits, nil
}

func (r *Repository) Create(ctx context.Context, limit *domain.TransferLimit) (*domain.TransferLimit, error) {
	query := `
		INSERT INTO transfer_limits (user_id, daily_limit, per_transaction_limit)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, daily_limit, per_transaction_limit, updated_at
	`
	err := r.db.QueryRow(ctx, query, limit.UserID, limit.DailyLimit, limit.PerTransactionLimit).
		Scan(&limit.ID, &limit.DailyLimit, &limit.PerTransactionLimit, &limit.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save transfer limit", zap.Error(err))
		return nil, err
	}
	return limit, nil
}

func (r *Repository) Update(ctx context.Context, userID int, dailyLimit, perTransactionLimit decimal.Decimal) error {
	query := `
		UPDATE transfer_limits
		SET daily_limit = $1, per_transaction_limit = $2, updated_at = now()
		WHERE user_id = $3
	`
	tag, err := r.db.Exec(ctx, query, dailyLimit, perTransactionLimit, userID)
	if err != nil {
		zap.L().Error("can't update transfer limit", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
