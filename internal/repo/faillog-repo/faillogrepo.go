package faillogrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, event *domain.FailedEvent) (*domain.FailedEvent, error) {
	query := `
		INSERT INTO failed_event_log (topic, routing_key, payload, error_message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, occurred_at
	`
	err := r.db.QueryRow(ctx, query, event.Topic, event.RoutingKey, event.Payload, event.ErrorMessage, domain.PendingFailedEventStatus).
		Scan(&event.ID, &event.OccurredAt)
	if err != nil {
		zap.L().Error("can't save failed event", zap.Error(err))
		return nil, err
	}
	event.Status = domain.PendingFailedEventStatus
	return event, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.FailedEvent, error) {
	query := `
        SELECT id, topic, routing_key, payload, error_message, status, occurred_at
        FROM failed_event_log
        ORDER BY occurred_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get failed events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanFailedEvents(rows)
}

func (r *Repository) FindByStatus(ctx context.Context, status string) ([]domain.FailedEvent, error) {
	query := `
        SELECT id, topic, routing_key, payload, error_message, status, occurred_at
        FROM failed_event_log
        WHERE status = $1
        ORDER BY occurred_at DESC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't get failed events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanFailedEvents(rows)
}

func (r *Repository) UpdateStatus(ctx context.Context, eventID int, status string) error {
	tag, err := r.db.Exec(ctx, "UPDATE failed_event_log SET status = $1 WHERE id = $2", status, eventID)
	if err != nil {
		zap.L().Error("can't update failed event status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, eventID int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM failed_event_log WHERE id = $1", eventID)
	if err != nil {
		zap.L().Error("can't delete failed event", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanFailedEvents(rows pgx.Rows) ([]domain.FailedEvent, error) {
	var events []domain.FailedEvent
	for rows.Next() {
		var event domain.FailedEvent
		err := rows.Scan(&event.ID, &event.Topic, &event.RoutingKey, &event.Payload, &event.ErrorMessage, &event.Status, &event.OccurredAt)
		if err != nil {
			zap.L().Error("failed to scan failed event row", zap.Error(err))
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
