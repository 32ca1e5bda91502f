package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techgpt/techgpt-api/internal/domain/enum"
	infrarepo "github.com/techgpt/techgpt-api/internal/infrastructure/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
)

func newNotificationService(t *testing.T) (*NotificationService, *testingDeps) {
	t.Helper()
	db := newTestDB(t)
	svc := NewNotificationService(
		infrarepo.NewNotificationRepository(db),
		infrarepo.NewSystemMessageRepository(db),
		infrarepo.NewUserRepository(db),
	)
	return svc, &testingDeps{db: db}
}

func TestSendNotification(t *testing.T) {
	svc, deps := newNotificationService(t)
	user := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")

	notification, err := svc.SendNotification(context.Background(), &SendNotificationInput{
		Target:  user.ID,
		Message: "Your job was scheduled",
	})
	require.NoError(t, err)

	assert.Equal(t, "general", notification.Kind)
	assert.Nil(t, notification.ReadAt)

	list, err := svc.ListNotifications(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Your job was scheduled", list[0].Message)
}

func TestSendNotification_UnknownTarget(t *testing.T) {
	svc, _ := newNotificationService(t)

	_, err := svc.SendNotification(context.Background(), &SendNotificationInput{
		Target:  uuid.New(),
		Message: "hello",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestMarkNotificationRead_OwnerOnly(t *testing.T) {
	svc, deps := newNotificationService(t)
	owner := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	other := seedUser(t, deps.db, enum.UserTypeCustomer, "carol@example.com")

	notification, err := svc.SendNotification(context.Background(), &SendNotificationInput{
		Target:  owner.ID,
		Message: "Your job was scheduled",
	})
	require.NoError(t, err)

	err = svc.MarkNotificationRead(context.Background(), notification.ID, other.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	require.NoError(t, svc.MarkNotificationRead(context.Background(), notification.ID, owner.ID))

	list, err := svc.ListNotifications(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].ReadAt)
}

func TestBroadcastSystemMessage(t *testing.T) {
	svc, _ := newNotificationService(t)

	message, err := svc.BroadcastSystemMessage(context.Background(), &BroadcastInput{
		Title: "Maintenance window",
		Body:  "The platform will be unavailable Sunday 02:00-04:00 EST.",
	})
	require.NoError(t, err)
	assert.Equal(t, "info", message.Severity)

	active, err := svc.ListSystemMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Maintenance window", active[0].Title)
}
