package accountservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/internal/pg"
)

type Repo interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, accountID int) (*domain.Account, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Account, error)
	AdjustBalance(ctx context.Context, accountID int, delta decimal.Decimal) (decimal.Decimal, bool, error)
	ClearPrimary(ctx context.Context, userID int) error
	SetPrimary(ctx context.Context, accountID int) error
	Delete(ctx context.Context, accountID int) error
}

type TransactionRepo interface {
	DeleteByAccountID(ctx context.Context, accountID int) error
}

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNotAccountOwner = errors.New("account does not belong to user")
)

const accountNumberLength = 10

// bankPrefixes maps a bank name to its account number prefix; unknown banks
// share the platform prefix.
var bankPrefixes = map[string]string{
	"EZBank":  "110",
	"KBank":   "210",
	"Shinhan": "310",
}

const defaultBankPrefix = "900"

type Service struct {
	accountRepo     Repo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(accountRepo Repo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// CreateAccount opens an account with a bank-prefixed, Luhn-checked number.
// The first account of a user always becomes the primary one.
func (s *Service) CreateAccount(ctx context.Context, userID int, bankName string, isPrimary bool) (*domain.Account, error) {
	number, err := generateAccountNumber(bankName)
	if err != nil {
		zap.L().Error("failed to generate account number", zap.Error(err))
		return nil, err
	}

	var account *domain.Account
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.accountRepo.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			isPrimary = true
		} else if isPrimary {
			if err := s.accountRepo.ClearPrimary(ctx, userID); err != nil {
				return err
			}
		}

		account = &domain.Account{
			UserID:        userID,
			BankName:      bankName,
			AccountNumber: number,
			Balance:       decimal.Zero,
			IsPrimary:     isPrimary,
		}
		account, err = s.accountRepo.Create(ctx, account)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("account created", zap.Int("userID", userID), zap.String("accountNumber", account.AccountNumber))
	return account, nil
}

func (s *Service) GetUserAccounts(ctx context.Context, userID int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (s *Service) GetAccount(ctx context.Context, userID, accountID int) (*domain.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if account.UserID != userID {
		return nil, ErrNotAccountOwner
	}
	return account, nil
}

// GetAccountByNumber resolves a recipient account for transfer submission.
// Only identity fields are meant for display; the caller is not the owner.
func (s *Service) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByAccountNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// SetPrimaryAccount marks the given account as the user's primary one,
// keeping exactly one primary account per user.
func (s *Service) SetPrimaryAccount(ctx context.Context, userID, accountID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.FindByID(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}
		if account.UserID != userID {
			return ErrNotAccountOwner
		}

		if err := s.accountRepo.ClearPrimary(ctx, userID); err != nil {
			return err
		}
		return s.accountRepo.SetPrimary(ctx, accountID)
	})
}

// DeleteAccount removes the account together with its transfer history.
// Dependent transaction rows are cleaned up explicitly before the account
// row goes away.
func (s *Service) DeleteAccount(ctx context.Context, userID, accountID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.FindByID(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}
		if account.UserID != userID {
			return ErrNotAccountOwner
		}

		if err := s.transactionRepo.DeleteByAccountID(ctx, accountID); err != nil {
			return err
		}
		return s.accountRepo.Delete(ctx, accountID)
	})
}

func generateAccountNumber(bankName string) (string, error) {
	prefix, ok := bankPrefixes[bankName]
	if !ok {
		prefix = defaultBankPrefix
	}
	number := goluhn.Generate(accountNumberLength)
	return fmt.Sprintf("%s-%s", prefix, number), nil
}
