package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
)

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	// ListByUser returns a user's notifications, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SystemMessageRepository defines the interface for platform announcements
type SystemMessageRepository interface {
	Create(ctx context.Context, message *entity.SystemMessage) error
	// ListActive returns non-expired messages, newest first.
	ListActive(ctx context.Context) ([]entity.SystemMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
