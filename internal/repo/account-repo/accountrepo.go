package accountrepo

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

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (user_id, bank_name, account_number, balance, is_primary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, account.UserID, account.BankName, account.AccountNumber, account.Balance, account.IsPrimary).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByID(ctx context.Context, accountID int) (*domain.Account, error) {
	query := `
        SELECT id, user_id, bank_name, account_number, balance, is_primary, created_at
        FROM accounts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, accountID)

	var account domain.Account
	err := row.Scan(&account.ID, &account.UserID, &account.BankName, &account.AccountNumber, &account.Balance, &account.IsPrimary, &account.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `
        SELECT id, user_id, bank_name, account_number, balance, is_primary, created_at
        FROM accounts
        WHERE account_number = $1
    `
	row := r.db.QueryRow(ctx, query, accountNumber)

	var account domain.Account
	err := row.Scan(&account.ID, &account.UserID, &account.BankName, &account.AccountNumber, &account.Balance, &account.IsPrimary, &account.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Account, error) {
	query := `
        SELECT id, user_id, bank_name, account_number, balance, is_primary, created_at
        FROM accounts
        WHERE user_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		err := rows.Scan(&account.ID, &account.UserID, &account.BankName, &account.AccountNumber, &account.Balance, &account.IsPrimary, &account.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// AdjustBalance applies delta to the account balance in a single conditional
// update. The row lock serializes concurrent adjustments to the same account.
// applied is false when the account exists but the resulting balance would be
// negative.
func (r *Repository) AdjustBalance(ctx context.Context, accountID int, delta decimal.Decimal) (decimal.Decimal, bool, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $1
		WHERE id = $2 AND balance + $1 >= 0
		RETURNING balance
	`
	var newBalance decimal.Decimal
	err := r.db.QueryRow(ctx, query, delta, accountID).Scan(&newBalance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Zero, false, nil
		}
		zap.L().Error("can't adjust balance", zap.Error(err))
		return decimal.Zero, false, err
	}
	return newBalance, true, nil
}

func (r *Repository) ClearPrimary(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx, "UPDATE accounts SET is_primary = FALSE WHERE user_id = $1", userID)
	if err != nil {
		zap.L().Error("can't clear primary accounts", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetPrimary(ctx context.Context, accountID int) error {
	_, err := r.db.Exec(ctx, "UPDATE accounts SET is_primary = TRUE WHERE id = $1", accountID)
	if err != nil {
		zap.L().Error("can't set primary account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, accountID int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM accounts WHERE id = $1", accountID)
	if err != nil {
		zap.L().Error("can't delete account", zap.Error(err))
		return err
	}
	return nil
}
