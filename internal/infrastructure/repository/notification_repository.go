package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	domainRepo "github.com/techgpt/techgpt-api/internal/domain/repository"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) domainRepo.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notification entity.Notification
	err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &notification, err
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Notification, error) {
	var notifications []entity.Notification
	if limit <= 0 {
		limit = 50
	}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("id = ?", id).Update("read_at", &now).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Notification{}, "id = ?", id).Error
}

type systemMessageRepository struct {
	db *gorm.DB
}

// NewSystemMessageRepository creates a new system message repository
func NewSystemMessageRepository(db *gorm.DB) domainRepo.SystemMessageRepository {
	return &systemMessageRepository{db: db}
}

func (r *systemMessageRepository) Create(ctx context.Context, message *entity.SystemMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *systemMessageRepository) ListActive(ctx context.Context) ([]entity.SystemMessage, error) {
	var messages []entity.SystemMessage
	err := r.db.WithContext(ctx).
		Where("expires_at IS NULL OR expires_at > ?", time.Now()).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *systemMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SystemMessage{}, "id = ?", id).Error
}
