package notifyservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/internal/transport"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body interface{}) error
}

const publishTimeout = 5 * time.Second

// Service fans transfer notifications out through the worker pool. Delivery
// is fire-and-forget: a notification that cannot be published is logged and
// never affects the transfer it describes.
type Service struct {
	publisher Publisher
	pool      transport.WorkerPoolI
}

func New(publisher Publisher, pool transport.WorkerPoolI) *Service {
	return &Service{
		publisher: publisher,
		pool:      pool,
	}
}

func (s *Service) Send(ctx context.Context, notification domain.TransferNotification) error {
	return s.pool.AddTask(ctx, func() error {
		// Detached from the caller: the transfer is already committed.
		publishCtx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := s.publisher.Publish(publishCtx, transport.TransfersExchange, transport.TransferCompletedKey, notification); err != nil {
			zap.L().Error("failed to publish transfer notification",
				zap.Int("transactionID", notification.TransactionID),
				zap.Error(err),
			)
			return err
		}
		zap.L().Info("transfer notification published",
			zap.Int("transactionID", notification.TransactionID),
			zap.String("email", notification.Email),
		)
		return nil
	})
}
