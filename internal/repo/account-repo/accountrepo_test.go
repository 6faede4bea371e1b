package accountrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ezpay/ezpay/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	account := &domain.Account{
		UserID:        1,
		BankName:      "EZBank",
		AccountNumber: "110-4929361579",
		Balance:       decimal.Zero,
		IsPrimary:     true,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO accounts (user_id, bank_name, account_number, balance, is_primary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`)).
		WithArgs(1, "EZBank", "110-4929361579", decimal.Zero, true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))

	created, err := repo.Create(context.Background(), account)
	assert.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AdjustBalance(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		UPDATE accounts
		SET balance = balance + $1
		WHERE id = $2 AND balance + $1 >= 0
		RETURNING balance
	`)

	tests := []struct {
		name            string
		delta           decimal.Decimal
		mockSetup       func(delta decimal.Decimal)
		expectedApplied bool
		expectedBalance decimal.Decimal
	}{
		{
			name:  "Debit applied",
			delta: amount("-5000.00"),
			mockSetup: func(delta decimal.Decimal) {
				mock.ExpectQuery(query).
					WithArgs(delta, 1).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(amount("5000.00")))
			},
			expectedApplied: true,
			expectedBalance: amount("5000.00"),
		},
		{
			name:  "Debit would overdraw",
			delta: amount("-50000.00"),
			mockSetup: func(delta decimal.Decimal) {
				mock.ExpectQuery(query).
					WithArgs(delta, 1).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedApplied: false,
			expectedBalance: decimal.Zero,
		},
		{
			name:  "Credit applied",
			delta: amount("100.00"),
			mockSetup: func(delta decimal.Decimal) {
				mock.ExpectQuery(query).
					WithArgs(delta, 1).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(amount("10100.00")))
			},
			expectedApplied: true,
			expectedBalance: amount("10100.00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.delta)
			balance, applied, err := repo.AdjustBalance(context.Background(), 1, tt.delta)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedApplied, applied)
			assert.True(t, tt.expectedBalance.Equal(balance))
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByAccountNumber(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, user_id, bank_name, account_number, balance, is_primary, created_at
        FROM accounts
        WHERE account_number = $1
    `)

	mock.ExpectQuery(query).
		WithArgs("110-4929361579").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "bank_name", "account_number", "balance", "is_primary", "created_at"}).
			AddRow(5, 1, "EZBank", "110-4929361579", amount("1500.00"), true, now))

	account, err := repo.FindByAccountNumber(context.Background(), "110-4929361579")
	assert.NoError(t, err)
	assert.Equal(t, 5, account.ID)

	mock.ExpectQuery(query).
		WithArgs("110-0000000000").
		WillReturnError(pgx.ErrNoRows)

	account, err = repo.FindByAccountNumber(context.Background(), "110-0000000000")
	assert.NoError(t, err)
	assert.Nil(t, account)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PrimaryFlags(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET is_primary = FALSE WHERE user_id = $1")).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	assert.NoError(t, repo.ClearPrimary(context.Background(), 1))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET is_primary = TRUE WHERE id = $1")).
		WithArgs(5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.SetPrimary(context.Background(), 5))

	assert.NoError(t, mock.ExpectationsWereMet())
}
