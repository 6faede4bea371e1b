package limitservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ezpay/ezpay/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockLimitRepo, *MockAccountRepo, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	limitRepo := NewMockLimitRepo(ctrl)
	accountRepo := NewMockAccountRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	service := New(limitRepo, accountRepo, transactionRepo)
	service.now = func() time.Time {
		return time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	}
	defer ctrl.Finish()
	return service, limitRepo, accountRepo, transactionRepo
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultLimit(userID int) *domain.TransferLimit {
	return &domain.TransferLimit{
		UserID:              userID,
		DailyLimit:          DefaultDailyLimit,
		PerTransactionLimit: DefaultPerTransactionLimit,
	}
}

func TestGetUserLimit(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(limitRepo *MockLimitRepo)
		expected      *domain.TransferLimit
		expectedError error
	}{
		{
			name: "Existing limit returned",
			prepareMock: func(limitRepo *MockLimitRepo) {
				limitRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(&domain.TransferLimit{
					UserID:              1,
					DailyLimit:          amount("2000000.00"),
					PerTransactionLimit: amount("200000.00"),
				}, nil)
			},
			expected: &domain.TransferLimit{
				UserID:              1,
				DailyLimit:          amount("2000000.00"),
				PerTransactionLimit: amount("200000.00"),
			},
		},
		{
			name: "Missing limit materialized with defaults",
			prepareMock: func(limitRepo *MockLimitRepo) {
				limitRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
				limitRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, limit *domain.TransferLimit) (*domain.TransferLimit, error) {
						assert.True(t, limit.DailyLimit.Equal(DefaultDailyLimit))
						assert.True(t, limit.PerTransactionLimit.Equal(DefaultPerTransactionLimit))
						return limit, nil
					},
				)
			},
			expected: defaultLimit(1),
		},
		{
			name: "Repo error propagates",
			prepareMock: func(limitRepo *MockLimitRepo) {
				limitRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, limitRepo, _, _ := NewMock(t)
			tt.prepareMock(limitRepo)

			limit, err := service.GetUserLimit(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, limit)
		})
	}
}

func TestGetRemainingDailyLimit(t *testing.T) {
	accounts := []domain.Account{{ID: 1, UserID: 1}, {ID: 2, UserID: 1}}

	tests := []struct {
		name        string
		prepareMock func(limitRepo *MockLimitRepo, accountRepo *MockAccountRepo, transactionRepo *MockTransactionRepo)
		expected    decimal.Decimal
	}{
		{
			name: "Headroom derived from today's SUCCESS transfers",
			prepareMock: func(limitRepo *MockLimitRepo, accountRepo *MockAccountRepo, transactionRepo *MockTransactionRepo) {
				limitRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(defaultLimit(1), nil)
				accountRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(accounts, nil)
				transactionRepo.EXPECT().SumSentToday(gomock.Any(), []int{1, 2}, gomock.Any(), gomock.Any()).
					Return(amount("950000.00"), nil)
			},
			expected: amount("50000.00"),
		},
		{
			name: "No accounts means full headroom",
			prepareMock: func(limitRepo *MockLimitRepo, accountRepo *MockAccountRepo, transactionRepo *MockTransactionRepo) {
				limitRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(defaultLimit(1), nil)
				accountRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
			},
			expected: DefaultDailyLimit,
		},
		{
			name: "Overspent day floors at zero",
			prepareMock: func(limitRepo *MockLimitRepo, accountRepo *MockAccountRepo, transactionRepo *MockTransactionRepo) {
				limitRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(&domain.TransferLimit{
					UserID:              1,
					DailyLimit:          amount("100000.00"),
					PerTransactionLimit: amount("100000.00"),
				}, nil)
				accountRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(accounts, nil)
				transactionRepo.EXPECT().SumSentToday(gomock.Any(), []int{1, 2}, gomock.Any(), gomock.Any()).
					Return(amount("150000.00"), nil)
			},
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, limitRepo, accountRepo, transactionRepo := NewMock(t)
			tt.prepareMock(limitRepo, accountRepo, transactionRepo)

			remaining, err := service.GetRemainingDailyLimit(context.Background(), 1)
			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(remaining), "expected %s, got %s", tt.expected, remaining)
		})
	}
}

func TestGetRemainingDailyLimitWindow(t *testing.T) {
	service, limitRepo, accountRepo, transactionRepo := NewMock(t)

	limitRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(defaultLimit(1), nil)
	accountRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Account{{ID: 1}}, nil)
	transactionRepo.EXPECT().SumSentToday(gomock.Any(), []int{1},
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
	).Return(decimal.Zero, nil)

	_, err := service.GetRemainingDailyLimit(context.Background(), 1)
	assert.NoError(t, err)
}

func TestCanTransfer(t *testing.T) {
	// Daily ceiling 1,000,000 with 950,000 already sent today: a 60,000
	// transfer must be rejected even though it is under the per-transaction
	// ceiling, while 40,000 still fits.
	tests := []struct {
		name        string
		transfer    decimal.Decimal
		usedToday   decimal.Decimal
		expectAllow bool
	}{
		{name: "Within both ceilings", transfer: amount("40000.00"), usedToday: amount("950000.00"), expectAllow: true},
		{name: "Daily headroom exhausted", transfer: amount("60000.00"), usedToday: amount("950000.00"), expectAllow: false},
		{name: "Exactly at remaining headroom", transfer: amount("50000.00"), usedToday: amount("950000.00"), expectAllow: true},
		{name: "Over per-transaction ceiling", transfer: amount("100000.01"), usedToday: decimal.Zero, expectAllow: false},
		{name: "Exactly at per-transaction ceiling", transfer: amount("100000.00"), usedToday: decimal.Zero, expectAllow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, limitRepo, accountRepo, transactionRepo := NewMock(t)

			limitRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(defaultLimit(1), nil).MinTimes(1)
			accountRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Account{{ID: 1}}, nil).AnyTimes()
			transactionRepo.EXPECT().SumSentToday(gomock.Any(), []int{1}, gomock.Any(), gomock.Any()).
				Return(tt.usedToday, nil).AnyTimes()

			allowed, err := service.CanTransfer(context.Background(), 1, tt.transfer)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectAllow, allowed)
		})
	}
}

func TestUpdateUserLimit(t *testing.T) {
	service, limitRepo, _, _ := NewMock(t)

	limitRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(defaultLimit(1), nil)
	limitRepo.EXPECT().Update(gomock.Any(), 1, amount("2000000.00"), amount("200000.00")).Return(nil)

	err := service.UpdateUserLimit(context.Background(), 1, amount("2000000.00"), amount("200000.00"))
	assert.NoError(t, err)
}

func TestResetUserLimit(t *testing.T) {
	service, limitRepo, _, _ := NewMock(t)

	limitRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(&domain.TransferLimit{
		UserID:              1,
		DailyLimit:          amount("5000000.00"),
		PerTransactionLimit: amount("500000.00"),
	}, nil)
	limitRepo.EXPECT().Update(gomock.Any(), 1, DefaultDailyLimit, DefaultPerTransactionLimit).Return(nil)

	err := service.ResetUserLimit(context.Background(), 1)
	assert.NoError(t, err)
}

func TestGetAllLimits(t *testing.T) {
	service, limitRepo, _, _ := NewMock(t)

	limitRepo.EXPECT().FindAll(gomock.Any()).Return([]domain.TransferLimit{
		{UserID: 1}, {UserID: 2},
	}, nil)

	limits, err := service.GetAllLimits(context.Background())
	assert.NoError(t, err)
	assert.Len(t, limits, 2)
}
