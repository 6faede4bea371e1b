package transferservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/internal/pg"
	"github.com/ezpay/ezpay/internal/transport"
)

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, transactionID int) (*domain.Transaction, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error)
	FindByAccountID(ctx context.Context, accountID int, direction string, limit int) ([]domain.Transaction, error)
	SumSentToday(ctx context.Context, accountIDs []int, dayStart, dayEnd time.Time) (decimal.Decimal, error)
	DeleteByAccountID(ctx context.Context, accountID int) error
}

type AccountRepo interface {
	FindByID(ctx context.Context, accountID int) (*domain.Account, error)
	AdjustBalance(ctx context.Context, accountID int, delta decimal.Decimal) (decimal.Decimal, bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

type Ledger interface {
	CanTransfer(ctx context.Context, userID int, amount decimal.Decimal) (bool, error)
}

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body interface{}) error
}

type Notifier interface {
	Send(ctx context.Context, notification domain.TransferNotification) error
}

var (
	ErrInvalidAmount     = errors.New("transfer amount must be positive")
	ErrSameAccount       = errors.New("cannot transfer to the same account")
	ErrAccountNotFound   = errors.New("account not found")
	ErrLimitExceeded     = errors.New("transfer limit exceeded")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotAccountOwner   = errors.New("account does not belong to user")
	ErrInvalidDirection  = errors.New("direction must be sent or received")
)

type Service struct {
	transactionRepo TransactionRepo
	accountRepo     AccountRepo
	userRepo        UserRepo
	ledger          Ledger
	publisher       Publisher
	notifier        Notifier
	txManager       pg.TXManager
}

func New(transactionRepo TransactionRepo, accountRepo AccountRepo, userRepo UserRepo, ledger Ledger, publisher Publisher, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		userRepo:        userRepo,
		ledger:          ledger,
		publisher:       publisher,
		notifier:        notifier,
		txManager:       txManager,
	}
}

// SubmitTransfer validates the request and durably enqueues the command.
// The caller learns the outcome by polling the transaction record.
func (s *Service) SubmitTransfer(ctx context.Context, cmd domain.TransferCommand) (string, error) {
	if !cmd.Amount.IsPositive() {
		return "", ErrInvalidAmount
	}
	if cmd.FromAccountID == cmd.ToAccountID {
		return "", ErrSameAccount
	}
	if cmd.IdempotencyKey == "" {
		cmd.IdempotencyKey = uuid.NewString()
	}

	if err := s.publisher.Publish(ctx, transport.TransfersExchange, transport.TransferRequestedKey, cmd); err != nil {
		zap.L().Error("failed to enqueue transfer command", zap.Error(err))
		return "", err
	}
	zap.L().Info("transfer command enqueued",
		zap.Int("fromAccountID", cmd.FromAccountID),
		zap.Int("toAccountID", cmd.ToAccountID),
		zap.String("idempotencyKey", cmd.IdempotencyKey),
	)
	return cmd.IdempotencyKey, nil
}

// ProcessTransfer applies one transfer command as a single atomic unit:
// resolve accounts, check ceilings, move balances, record the SUCCESS
// transaction. Any error propagates so the transport's retry policy decides
// between redelivery and the dead-letter path. A command whose idempotency
// key already maps to a SUCCESS record is a no-op, which makes redelivery of
// an already-applied command safe.
func (s *Service) ProcessTransfer(ctx context.Context, cmd domain.TransferCommand) error {
	var processed *domain.Transaction

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if cmd.IdempotencyKey != "" {
			existing, err := s.transactionRepo.FindByIdempotencyKey(ctx, cmd.IdempotencyKey)
			if err != nil {
				return err
			}
			if existing != nil && existing.Status == domain.SuccessTransactionStatus {
				zap.L().Info("transfer already applied, skipping redelivery",
					zap.String("idempotencyKey", cmd.IdempotencyKey),
					zap.Int("transactionID", existing.ID),
				)
				return nil
			}
		}

		sender, err := s.accountRepo.FindByID(ctx, cmd.FromAccountID)
		if err != nil {
			return err
		}
		if sender == nil {
			return ErrAccountNotFound
		}
		receiver, err := s.accountRepo.FindByID(ctx, cmd.ToAccountID)
		if err != nil {
			return err
		}
		if receiver == nil {
			return ErrAccountNotFound
		}

		allowed, err := s.ledger.CanTransfer(ctx, sender.UserID, cmd.Amount)
		if err != nil {
			return err
		}
		if !allowed {
			return ErrLimitExceeded
		}

		if _, applied, err := s.accountRepo.AdjustBalance(ctx, sender.ID, cmd.Amount.Neg()); err != nil {
			return err
		} else if !applied {
			return ErrInsufficientFunds
		}
		if _, applied, err := s.accountRepo.AdjustBalance(ctx, receiver.ID, cmd.Amount); err != nil {
			return err
		} else if !applied {
			return ErrAccountNotFound
		}

		transaction := &domain.Transaction{
			SenderAccountID:   sender.ID,
			ReceiverAccountID: receiver.ID,
			Amount:            cmd.Amount,
			Status:            domain.SuccessTransactionStatus,
			Memo:              cmd.Memo,
			Category:          cmd.Category,
			IdempotencyKey:    cmd.IdempotencyKey,
		}
		if _, err := s.transactionRepo.Create(ctx, transaction); err != nil {
			return err
		}
		processed = transaction
		return nil
	})
	if err != nil {
		s.recordFailure(ctx, cmd, err)
		return err
	}

	if processed != nil {
		zap.L().Info("transfer applied",
			zap.Int("transactionID", processed.ID),
			zap.String("amount", processed.Amount.String()),
		)
		s.notifyCompleted(ctx, processed)
	}
	return nil
}

// recordFailure keeps an auditable FAILED row for business-rule rejections.
// Best-effort: the original error still propagates to the transport.
func (s *Service) recordFailure(ctx context.Context, cmd domain.TransferCommand, cause error) {
	if !errors.Is(cause, ErrLimitExceeded) && !errors.Is(cause, ErrInsufficientFunds) {
		return
	}
	transaction := &domain.Transaction{
		SenderAccountID:   cmd.FromAccountID,
		ReceiverAccountID: cmd.ToAccountID,
		Amount:            cmd.Amount,
		Status:            domain.FailedTransactionStatus,
		Memo:              cmd.Memo,
		Category:          cmd.Category,
	}
	if _, err := s.transactionRepo.Create(ctx, transaction); err != nil {
		zap.L().Error("failed to record FAILED transaction", zap.Error(err))
	}
}

func (s *Service) notifyCompleted(ctx context.Context, transaction *domain.Transaction) {
	receiverAccount, err := s.accountRepo.FindByID(ctx, transaction.ReceiverAccountID)
	if err != nil || receiverAccount == nil {
		zap.L().Error("failed to resolve receiver for notification", zap.Error(err))
		return
	}
	receiver, err := s.userRepo.FindByID(ctx, receiverAccount.UserID)
	if err != nil || receiver == nil {
		zap.L().Error("failed to resolve receiver user for notification", zap.Error(err))
		return
	}

	notification := domain.TransferNotification{
		TransactionID: transaction.ID,
		Amount:        transaction.Amount,
		ReceiverName:  receiver.Name,
		Email:         receiver.Email,
	}
	if err := s.notifier.Send(ctx, notification); err != nil {
		zap.L().Error("failed to send transfer notification", zap.Error(err))
	}
}

func (s *Service) GetTransaction(ctx context.Context, userID, transactionID int) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, nil
	}
	if err := s.checkOwnership(ctx, userID, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *Service) GetAccountTransactions(ctx context.Context, userID, accountID int, direction string, limit int) ([]domain.Transaction, error) {
	switch direction {
	case "", domain.SentDirection, domain.ReceivedDirection:
	default:
		return nil, ErrInvalidDirection
	}
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
	return s.transactionRepo.FindByAccountID(ctx, accountID, direction, limit)
}

func (s *Service) checkOwnership(ctx context.Context, userID int, transaction *domain.Transaction) error {
	for _, accountID := range []int{transaction.SenderAccountID, transaction.ReceiverAccountID} {
		account, err := s.accountRepo.FindByID(ctx, accountID)
		if err != nil {
			return err
		}
		if account != nil && account.UserID == userID {
			return nil
		}
	}
	return ErrNotAccountOwner
}
