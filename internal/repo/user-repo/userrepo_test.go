package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
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

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "jane@ezpay.dev",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "name", "password_hash"}).
					AddRow(1, "jane@ezpay.dev", "Jane Doe", "hashed_password")
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, name, password_hash FROM users WHERE email = $1")).
					WithArgs("jane@ezpay.dev").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Email:        "jane@ezpay.dev",
				Name:         "Jane Doe",
				PasswordHash: "hashed_password",
			},
		},
		{
			name:  "User not found",
			email: "nobody@ezpay.dev",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, name, password_hash FROM users WHERE email = $1")).
					WithArgs("nobody@ezpay.dev").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "jane@ezpay.dev",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, name, password_hash FROM users WHERE email = $1")).
					WithArgs("jane@ezpay.dev").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	user := &domain.User{
		Email:        "jane@ezpay.dev",
		Name:         "Jane Doe",
		PasswordHash: "hashed_password",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO users (email, name, password_hash)
			VALUES ($1, $2, $3)
			RETURNING id
		`)).
		WithArgs("jane@ezpay.dev", "Jane Doe", "hashed_password").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
