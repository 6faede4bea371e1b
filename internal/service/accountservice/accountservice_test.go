package accountservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/internal/pg"
	"github.com/ezpay/ezpay/pkg/validate"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockTransactionRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(accountRepo, transactionRepo, txManager)
	defer ctrl.Finish()
	return service, accountRepo, transactionRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestCreateAccount(t *testing.T) {
	tests := []struct {
		name            string
		bankName        string
		isPrimary       bool
		prepareMock     func(accountRepo *MockRepo, txManager *pg.MockTXManager)
		expectedPrefix  string
		expectedPrimary bool
		expectedError   error
	}{
		{
			name:     "First account becomes primary",
			bankName: "EZBank",
			prepareMock: func(accountRepo *MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				accountRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
				accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, account *domain.Account) (*domain.Account, error) {
						account.ID = 1
						return account, nil
					},
				)
			},
			expectedPrefix:  "110-",
			expectedPrimary: true,
		},
		{
			name:      "Primary flag clears previous primary",
			bankName:  "KBank",
			isPrimary: true,
			prepareMock: func(accountRepo *MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				accountRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Account{{ID: 1, IsPrimary: true}}, nil)
				accountRepo.EXPECT().ClearPrimary(gomock.Any(), 1).Return(nil)
				accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, account *domain.Account) (*domain.Account, error) {
						account.ID = 2
						return account, nil
					},
				)
			},
			expectedPrefix:  "210-",
			expectedPrimary: true,
		},
		{
			name:     "Unknown bank gets platform prefix",
			bankName: "SomeBank",
			prepareMock: func(accountRepo *MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				accountRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Account{{ID: 1}}, nil)
				accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, account *domain.Account) (*domain.Account, error) {
						account.ID = 2
						return account, nil
					},
				)
			},
			expectedPrefix: "900-",
		},
		{
			name:     "Create failure propagates",
			bankName: "EZBank",
			prepareMock: func(accountRepo *MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				accountRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
				accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, txManager := NewMock(t)
			tt.prepareMock(accountRepo, txManager)

			account, err := service.CreateAccount(context.Background(), 1, tt.bankName, tt.isPrimary)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(account.AccountNumber, tt.expectedPrefix))
			assert.True(t, validate.IsAccountNumber(account.AccountNumber))
			assert.Equal(t, tt.expectedPrimary, account.IsPrimary)
			assert.True(t, account.Balance.IsZero())
		})
	}
}

func TestGetAccount(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		prepareMock   func(accountRepo *MockRepo)
		expectedError error
	}{
		{
			name:   "Owner reads the account",
			userID: 1,
			prepareMock: func(accountRepo *MockRepo) {
				accountRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Account{ID: 5, UserID: 1}, nil)
			},
		},
		{
			name:   "Stranger is rejected",
			userID: 2,
			prepareMock: func(accountRepo *MockRepo) {
				accountRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Account{ID: 5, UserID: 1}, nil)
			},
			expectedError: ErrNotAccountOwner,
		},
		{
			name:   "Unknown account",
			userID: 1,
			prepareMock: func(accountRepo *MockRepo) {
				accountRepo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, _ := NewMock(t)
			tt.prepareMock(accountRepo)

			_, err := service.GetAccount(context.Background(), tt.userID, 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetPrimaryAccount(t *testing.T) {
	service, accountRepo, _, txManager := NewMock(t)

	passthroughTx(txManager)
	accountRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Account{ID: 5, UserID: 1}, nil)
	accountRepo.EXPECT().ClearPrimary(gomock.Any(), 1).Return(nil)
	accountRepo.EXPECT().SetPrimary(gomock.Any(), 5).Return(nil)

	err := service.SetPrimaryAccount(context.Background(), 1, 5)
	assert.NoError(t, err)

	passthroughTx(txManager)
	accountRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Account{ID: 5, UserID: 2}, nil)
	err = service.SetPrimaryAccount(context.Background(), 1, 5)
	assert.ErrorIs(t, err, ErrNotAccountOwner)
}

func TestDeleteAccount(t *testing.T) {
	service, accountRepo, transactionRepo, txManager := NewMock(t)

	passthroughTx(txManager)
	accountRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Account{ID: 5, UserID: 1}, nil)
	transactionRepo.EXPECT().DeleteByAccountID(gomock.Any(), 5).Return(nil)
	accountRepo.EXPECT().Delete(gomock.Any(), 5).Return(nil)

	err := service.DeleteAccount(context.Background(), 1, 5)
	assert.NoError(t, err)

	passthroughTx(txManager)
	accountRepo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)
	err = service.DeleteAccount(context.Background(), 1, 5)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestGetAccountByNumber(t *testing.T) {
	service, accountRepo, _, _ := NewMock(t)

	accountRepo.EXPECT().FindByAccountNumber(gomock.Any(), "110-4929361579").
		Return(&domain.Account{ID: 5, AccountNumber: "110-4929361579"}, nil)

	account, err := service.GetAccountByNumber(context.Background(), "110-4929361579")
	assert.NoError(t, err)
	assert.Equal(t, 5, account.ID)

	accountRepo.EXPECT().FindByAccountNumber(gomock.Any(), "110-0000000000").Return(nil, nil)
	_, err = service.GetAccountByNumber(context.Background(), "110-0000000000")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
