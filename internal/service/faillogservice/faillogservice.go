package faillogservice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ezpay/ezpay/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, event *domain.FailedEvent) (*domain.FailedEvent, error)
	FindAll(ctx context.Context) ([]domain.FailedEvent, error)
	FindByStatus(ctx context.Context, status string) ([]domain.FailedEvent, error)
	UpdateStatus(ctx context.Context, eventID int, status string) error
	Delete(ctx context.Context, eventID int) error
}

var (
	ErrInvalidStatus = errors.New("invalid failed event status")
	ErrEventNotFound = errors.New("failed event not found")
)

// Service is the failure archive: it keeps every dead-lettered command as an
// inspectable record and lets operators work through the backlog.
type Service struct {
	failLogRepo Repo
}

func New(failLogRepo Repo) *Service {
	return &Service{failLogRepo: failLogRepo}
}

// Record persists one dead-lettered command. It never returns an error: the
// dead-letter path must not feed failures back into the retry loop, so a
// write that cannot land is logged and dropped.
func (s *Service) Record(ctx context.Context, topic, routingKey, payload, errorMessage string) {
	event := &domain.FailedEvent{
		Topic:        topic,
		RoutingKey:   routingKey,
		Payload:      payload,
		ErrorMessage: errorMessage,
		Status:       domain.PendingFailedEventStatus,
	}
	created, err := s.failLogRepo.Create(ctx, event)
	if err != nil {
		zap.L().Error("failed to archive dead-lettered event",
			zap.String("routingKey", routingKey),
			zap.Error(err),
		)
		return
	}
	zap.L().Warn("dead-lettered event archived",
		zap.Int("eventID", created.ID),
		zap.String("routingKey", routingKey),
		zap.String("error", errorMessage),
	)
}

func (s *Service) GetAll(ctx context.Context) ([]domain.FailedEvent, error) {
	events, err := s.failLogRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get failed events", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (s *Service) GetByStatus(ctx context.Context, status string) ([]domain.FailedEvent, error) {
	if status != domain.PendingFailedEventStatus && status != domain.ResolvedFailedEventStatus {
		return nil, ErrInvalidStatus
	}
	events, err := s.failLogRepo.FindByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to get failed events by status", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (s *Service) Resolve(ctx context.Context, eventID int) error {
	if err := s.failLogRepo.UpdateStatus(ctx, eventID, domain.ResolvedFailedEventStatus); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrEventNotFound
		}
		zap.L().Error("failed to resolve failed event", zap.Int("eventID", eventID), zap.Error(err))
		return err
	}
	zap.L().Info("failed event resolved", zap.Int("eventID", eventID))
	return nil
}

func (s *Service) Delete(ctx context.Context, eventID int) error {
	if err := s.failLogRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrEventNotFound
		}
		zap.L().Error("failed to delete failed event", zap.Int("eventID", eventID), zap.Error(err))
		return err
	}
	return nil
}
