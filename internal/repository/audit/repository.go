package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

// Repository keeps the delivered-notification audit trail. The services
// themselves stay stateless; this is the only table in the system.
type Repository struct {
	log logger.Logger
	db  *sqlx.DB
}

func New(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log: log,
		db:  db,
	}
}

func (r *Repository) Insert(ctx context.Context, notification models.NotificationRequest, message string) error {
	const op = "repository.audit.Insert"

	const query = `
		INSERT INTO "notification_audit" (id, order_id, type, channel, message)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := r.db.ExecContext(
		ctx,
		query,
		uuid.New(),
		notification.OrderID,
		notification.Type,
		notification.Channel,
		message,
	); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return nil
}

// Noop is used when no audit database is configured.
type Noop struct{}

func (Noop) Insert(context.Context, models.NotificationRequest, string) error { return nil }
