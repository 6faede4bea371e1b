package limitservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ezpay/ezpay/internal/domain"
)

type LimitRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.TransferLimit, error)
	FindAll(ctx context.Context) ([]domain.TransferLimit, error)
	Create(ctx context.Context, limit *domain.TransferLimit) (*domain.TransferLimit, error)
	Update(ctx context.Context, userID int, dailyLimit, perTransactionLimit decimal.Decimal) error
}

type AccountRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Account, error)
}

type TransactionRepo interface {
	SumSentToday(ctx context.Context, accountIDs []int, dayStart, dayEnd time.Time) (decimal.Decimal, error)
}

var (
	// DefaultDailyLimit is applied when a user has no limit row yet.
	DefaultDailyLimit = decimal.RequireFromString("1000000.00")
	// DefaultPerTransactionLimit caps a single transfer for new users.
	DefaultPerTransactionLimit = decimal.RequireFromString("100000.00")
)

type Service struct {
	limitRepo       LimitRepo
	accountRepo     AccountRepo
	transactionRepo TransactionRepo

	now func() time.Time
}

func New(limitRepo LimitRepo, accountRepo AccountRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		limitRepo:       limitRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

func (s *Service) GetAllLimits(ctx context.Context) ([]domain.TransferLimit, error) {
	limits, err := s.limitRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get transfer limits", zap.Error(err))
		return nil, err
	}
	return limits, nil
}

// GetUserLimit returns the user's transfer limit, materializing a row with
// platform defaults on first use.
func (s *Service) GetUserLimit(ctx context.Context, userID int) (*domain.TransferLimit, error) {
	limit, err := s.limitRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get transfer limit", zap.Error(err))
		return nil, err
	}
	if limit != nil {
		return limit, nil
	}

	limit = &domain.TransferLimit{
		UserID:              userID,
		DailyLimit:          DefaultDailyLimit,
		PerTransactionLimit: DefaultPerTransactionLimit,
	}
	created, err := s.limitRepo.Create(ctx, limit)
	if err != nil {
		zap.L().Error("failed to create default transfer limit", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateUserLimit(ctx context.Context, userID int, dailyLimit, perTransactionLimit decimal.Decimal) error {
	if _, err := s.GetUserLimit(ctx, userID); err != nil {
		return err
	}
	if err := s.limitRepo.Update(ctx, userID, dailyLimit, perTransactionLimit); err != nil {
		zap.L().Error("failed to update transfer limit", zap.Error(err))
		return err
	}
	zap.L().Info("transfer limit updated", zap.Int("userID", userID))
	return nil
}

func (s *Service) ResetUserLimit(ctx context.Context, userID int) error {
	return s.UpdateUserLimit(ctx, userID, DefaultDailyLimit, DefaultPerTransactionLimit)
}

// GetRemainingDailyLimit derives today's headroom from the SUCCESS transfers
// sent from any of the user's accounts since the local midnight. Deriving
// instead of keeping a counter keeps the value correct when an administrator
// changes the ceiling mid-day.
func (s *Service) GetRemainingDailyLimit(ctx context.Context, userID int) (decimal.Decimal, error) {
	limit, err := s.GetUserLimit(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	accounts, err := s.accountRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user accounts", zap.Error(err))
		return decimal.Zero, err
	}
	if len(accounts) == 0 {
		return limit.DailyLimit, nil
	}

	accountIDs := make([]int, 0, len(accounts))
	for _, account := range accounts {
		accountIDs = append(accountIDs, account.ID)
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	usedToday, err := s.transactionRepo.SumSentToday(ctx, accountIDs, dayStart, dayEnd)
	if err != nil {
		zap.L().Error("failed to sum today's transfers", zap.Error(err))
		return decimal.Zero, err
	}

	remaining := limit.DailyLimit.Sub(usedToday)
	if remaining.IsNegative() {
		return decimal.Zero, nil
	}
	return remaining, nil
}

func (s *Service) CanTransfer(ctx context.Context, userID int, amount decimal.Decimal) (bool, error) {
	limit, err := s.GetUserLimit(ctx, userID)
	if err != nil {
		return false, err
	}
	if amount.GreaterThan(limit.PerTransactionLimit) {
		return false, nil
	}

	remaining, err := s.GetRemainingDailyLimit(ctx, userID)
	if err != nil {
		return false, err
	}
	return amount.LessThanOrEqual(remaining), nil
}
