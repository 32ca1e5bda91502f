package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
)

// defaultNotificationLimit caps how many notifications a listing returns.
const defaultNotificationLimit = 50

// NotificationService handles per-user notifications and platform-wide
// system messages
type NotificationService struct {
	notificationRepo  repository.NotificationRepository
	systemMessageRepo repository.SystemMessageRepository
	userRepo          repository.UserRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	systemMessageRepo repository.SystemMessageRepository,
	userRepo repository.UserRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo:  notificationRepo,
		systemMessageRepo: systemMessageRepo,
		userRepo:          userRepo,
	}
}

// SendNotificationInput represents the notification send input
type SendNotificationInput struct {
	Target   uuid.UUID
	Message  string
	SenderID *uuid.UUID
	Kind     string
}

// SendNotification delivers a message to a single user's notification feed
func (s *NotificationService) SendNotification(ctx context.Context, input *SendNotificationInput) (*entity.Notification, error) {
	target, err := s.userRepo.GetByID(ctx, input.Target)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NewNotFoundError("Target user")
	}

	kind := input.Kind
	if kind == "" {
		kind = "general"
	}

	notification := &entity.Notification{
		UserID:   input.Target,
		SenderID: input.SenderID,
		Message:  input.Message,
		Kind:     kind,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

// ListNotifications returns a user's notifications, newest first
func (s *NotificationService) ListNotifications(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID, defaultNotificationLimit)
}

// MarkNotificationRead marks one of the caller's notifications as read
func (s *NotificationService) MarkNotificationRead(ctx context.Context, id, callerID uuid.UUID) error {
	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification == nil {
		return apperror.NewNotFoundError("Notification")
	}
	if notification.UserID != callerID {
		return apperror.ErrForbidden
	}
	return s.notificationRepo.MarkRead(ctx, id)
}

// BroadcastInput represents the system message broadcast input
type BroadcastInput struct {
	Title    string
	Body     string
	Severity string
}

// BroadcastSystemMessage publishes a platform-wide announcement
func (s *NotificationService) BroadcastSystemMessage(ctx context.Context, input *BroadcastInput) (*entity.SystemMessage, error) {
	severity := input.Severity
	if severity == "" {
		severity = "info"
	}

	message := &entity.SystemMessage{
		Title:    input.Title,
		Body:     input.Body,
		Severity: severity,
	}

	if err := s.systemMessageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// ListSystemMessages returns active platform announcements
func (s *NotificationService) ListSystemMessages(ctx context.Context) ([]entity.SystemMessage, error) {
	return s.systemMessageRepo.ListActive(ctx)
}
