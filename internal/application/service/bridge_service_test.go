package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/domain/repository"
	infrarepo "github.com/techgpt/techgpt-api/internal/infrastructure/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
)

func newBridgeService(t *testing.T) (*BridgeService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return newBridgeServiceWith(t, db, infrarepo.NewSystemMessageRepository(db)), db
}

func newBridgeServiceWith(t *testing.T, db *gorm.DB, systemMessageRepo repository.SystemMessageRepository) *BridgeService {
	t.Helper()

	userRepo := infrarepo.NewUserRepository(db)
	profileRepo := infrarepo.NewProviderProfileRepository(db)
	jobRepo := infrarepo.NewJobRepository(db)
	ticketRepo := infrarepo.NewTicketRepository(db)
	notificationRepo := infrarepo.NewNotificationRepository(db)
	analyticsRepo := infrarepo.NewAnalyticsRepository(db)

	logger := zap.NewNop()
	providerService := NewProviderService(userRepo, profileRepo, jobRepo)
	dashboardService := NewDashboardService(analyticsRepo, userRepo)
	notificationService := NewNotificationService(notificationRepo, systemMessageRepo, userRepo)
	ticketService := NewTicketService(ticketRepo, userRepo)
	jobService := NewJobService(jobRepo, userRepo, profileRepo, logger)

	return NewBridgeService(
		userRepo, profileRepo, jobRepo, ticketRepo, notificationRepo, systemMessageRepo,
		providerService, dashboardService, notificationService, ticketService, jobService,
		logger,
	)
}

func TestRefresh_CustomerSections(t *testing.T) {
	bridge, db := newBridgeService(t)
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")
	provider := seedUser(t, db, enum.UserTypeServiceProvider, "bob@example.com")
	seedCompletedJob(t, db, customer, provider, 5000, 60)
	require.NoError(t, db.Create(&entity.SupportTicket{
		UserID:   customer.ID,
		Subject:  "Cannot log in",
		Priority: "normal",
		Status:   enum.TicketStatusOpen,
	}).Error)

	snapshot, err := bridge.Refresh(context.Background(), customer.ID)
	require.NoError(t, err)

	assert.Equal(t, enum.UserTypeCustomer, snapshot.Role)
	assert.Empty(t, snapshot.FailedSections)
	require.NotNil(t, snapshot.CustomerProfile)
	assert.Equal(t, customer.ID, snapshot.CustomerProfile.ID)
	assert.Len(t, snapshot.CustomerJobs, 1)
	assert.Len(t, snapshot.CustomerTickets, 1)

	// Provider and admin sections stay empty for a customer.
	assert.Nil(t, snapshot.ProviderProfile)
	assert.Nil(t, snapshot.Earnings)
	assert.Nil(t, snapshot.PlatformStats)
	assert.Nil(t, snapshot.AllUsers)
}

func TestRefresh_ProviderSections(t *testing.T) {
	bridge, db := newBridgeService(t)
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")
	provider := seedUser(t, db, enum.UserTypeServiceProvider, "bob@example.com")
	require.NoError(t, db.Create(&entity.ProviderProfile{
		UserID:        provider.ID,
		AcceptingJobs: true,
	}).Error)
	seedCompletedJob(t, db, customer, provider, 7550, 90)

	snapshot, err := bridge.Refresh(context.Background(), provider.ID)
	require.NoError(t, err)

	assert.Equal(t, enum.UserTypeServiceProvider, snapshot.Role)
	assert.Empty(t, snapshot.FailedSections)
	require.NotNil(t, snapshot.ProviderProfile)
	assert.Len(t, snapshot.ProviderJobs, 1)
	require.NotNil(t, snapshot.Earnings)
	assert.Equal(t, 75.50, snapshot.Earnings.TotalEarnings)
	assert.Nil(t, snapshot.CustomerProfile)
}

func TestRefresh_AdminSections(t *testing.T) {
	bridge, db := newBridgeService(t)
	admin := seedUser(t, db, enum.UserTypeAdmin, "admin@example.com")
	seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")

	snapshot, err := bridge.Refresh(context.Background(), admin.ID)
	require.NoError(t, err)

	assert.Equal(t, enum.UserTypeAdmin, snapshot.Role)
	assert.Empty(t, snapshot.FailedSections)
	require.NotNil(t, snapshot.PlatformStats)
	require.NotNil(t, snapshot.SystemMetrics)
	assert.NotEmpty(t, snapshot.AllUsers)
	assert.Nil(t, snapshot.CustomerProfile)
}

// failingSystemMessageRepo simulates a broken announcements store so one
// section of the fan-out fails while the rest still load.
type failingSystemMessageRepo struct{}

func (failingSystemMessageRepo) Create(ctx context.Context, message *entity.SystemMessage) error {
	return errors.New("store unavailable")
}

func (failingSystemMessageRepo) ListActive(ctx context.Context) ([]entity.SystemMessage, error) {
	return nil, errors.New("store unavailable")
}

func (failingSystemMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("store unavailable")
}

func TestRefresh_SectionFailureIsContained(t *testing.T) {
	db := newTestDB(t)
	bridge := newBridgeServiceWith(t, db, failingSystemMessageRepo{})
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")

	snapshot, err := bridge.Refresh(context.Background(), customer.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"system_messages"}, snapshot.FailedSections)
	assert.Nil(t, snapshot.SystemMessages)
	require.NotNil(t, snapshot.CustomerProfile)
}

func TestSnapshot_UnknownUser(t *testing.T) {
	bridge, _ := newBridgeService(t)

	_, err := bridge.Snapshot(uuid.New())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestRefresh_StaleRefreshDoesNotOverwrite(t *testing.T) {
	bridge, db := newBridgeService(t)
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")

	// Install a snapshot that claims a newer generation than the refresh
	// about to run; the refresh must keep it.
	newer := &OverviewSnapshot{UserID: customer.ID, Role: enum.UserTypeCustomer, generation: 100}
	bridge.mu.Lock()
	bridge.snapshots[customer.ID] = newer
	bridge.mu.Unlock()

	got, err := bridge.Refresh(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Same(t, newer, got)

	cached, err := bridge.Snapshot(customer.ID)
	require.NoError(t, err)
	assert.Same(t, newer, cached)
}

func TestCreateTicket_SplicesIntoSnapshot(t *testing.T) {
	bridge, db := newBridgeService(t)
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")
	require.NoError(t, db.Create(&entity.SupportTicket{
		UserID:   customer.ID,
		Subject:  "Older ticket",
		Priority: "normal",
		Status:   enum.TicketStatusOpen,
	}).Error)

	_, err := bridge.Refresh(context.Background(), customer.ID)
	require.NoError(t, err)

	ticket, err := bridge.CreateTicket(context.Background(), &CreateTicketInput{
		UserID:   customer.ID,
		Subject:  "Newer ticket",
		Category: "billing",
	})
	require.NoError(t, err)
	assert.Equal(t, "normal", ticket.Priority)

	snapshot, err := bridge.Snapshot(customer.ID)
	require.NoError(t, err)
	require.Len(t, snapshot.CustomerTickets, 2)
	assert.Equal(t, "Newer ticket", snapshot.CustomerTickets[0].Subject)
	assert.Equal(t, "Older ticket", snapshot.CustomerTickets[1].Subject)
}

func TestCreateTicket_DoesNotMutateInstalledSnapshot(t *testing.T) {
	bridge, db := newBridgeService(t)
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")
	require.NoError(t, db.Create(&entity.SupportTicket{
		UserID:   customer.ID,
		Subject:  "Older ticket",
		Priority: "normal",
		Status:   enum.TicketStatusOpen,
	}).Error)

	_, err := bridge.Refresh(context.Background(), customer.ID)
	require.NoError(t, err)
	before, err := bridge.Snapshot(customer.ID)
	require.NoError(t, err)

	// A handler may be marshaling the installed snapshot concurrently, so the
	// splice must swap in a copy instead of growing the shared slice.
	_, err = bridge.CreateTicket(context.Background(), &CreateTicketInput{
		UserID:  customer.ID,
		Subject: "Newer ticket",
	})
	require.NoError(t, err)

	after, err := bridge.Snapshot(customer.ID)
	require.NoError(t, err)

	assert.NotSame(t, before, after)
	assert.Len(t, before.CustomerTickets, 1)
	assert.Len(t, after.CustomerTickets, 2)
}

func TestSendNotification_RefreshesSnapshot(t *testing.T) {
	bridge, db := newBridgeService(t)
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")
	admin := seedUser(t, db, enum.UserTypeAdmin, "admin@example.com")

	snapshot, err := bridge.SendNotification(context.Background(), customer.ID, &SendNotificationInput{
		Target:   customer.ID,
		Message:  "Your technician is on the way",
		SenderID: &admin.ID,
	})
	require.NoError(t, err)

	require.Len(t, snapshot.Notifications, 1)
	assert.Equal(t, "Your technician is on the way", snapshot.Notifications[0].Message)
}

func TestUpdateJobStatus_ThroughBridge(t *testing.T) {
	bridge, db := newBridgeService(t)
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")

	job := &entity.Job{
		CustomerID:  customer.ID,
		Title:       "Slow laptop",
		Category:    "Software",
		ServiceType: enum.ServiceTypeRemote,
		Status:      enum.JobStatusRequested,
	}
	require.NoError(t, db.Create(job).Error)

	updated, err := bridge.UpdateJobStatus(context.Background(), &UpdateStatusInput{
		JobID:       job.ID,
		Status:      enum.JobStatusCancelled,
		UpdatedBy:   customer.ID,
		UpdatedRole: enum.UserTypeCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.JobStatusCancelled, updated.Status)

	snapshot, err := bridge.Snapshot(customer.ID)
	require.NoError(t, err)
	require.Len(t, snapshot.CustomerJobs, 1)
	assert.Equal(t, enum.JobStatusCancelled, snapshot.CustomerJobs[0].Status)
}

func TestInvalidate(t *testing.T) {
	bridge, db := newBridgeService(t)
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")

	_, err := bridge.Refresh(context.Background(), customer.ID)
	require.NoError(t, err)

	bridge.Invalidate(customer.ID)

	_, err = bridge.Snapshot(customer.ID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}
