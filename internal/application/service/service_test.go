package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/domain/repository"
)

// testingDeps bundles the database handle with the real repositories the
// services under test run against.
type testingDeps struct {
	db          *gorm.DB
	jobRepo     repository.JobRepository
	userRepo    repository.UserRepository
	profileRepo repository.ProviderProfileRepository
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.ProviderProfile{},
		&entity.Job{},
		&entity.JobHardwareItem{},
		&entity.SupportTicket{},
		&entity.Booking{},
		&entity.Notification{},
		&entity.SystemMessage{},
		&entity.PasswordResetToken{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, userType enum.UserType, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "hashed",
		UserType:  userType,
		Provider:  "local",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCompletedJob(t *testing.T, db *gorm.DB, customer, provider *entity.User, feeCents int64, durationMinutes int) *entity.Job {
	t.Helper()

	completedAt := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
	job := &entity.Job{
		CustomerID:      customer.ID,
		ProviderID:      &provider.ID,
		Title:           "Laptop repair",
		Category:        "Hardware Repair",
		ServiceType:     enum.ServiceTypeOnsite,
		Status:          enum.JobStatusCompleted,
		ServiceFee:      feeCents,
		DurationMinutes: durationMinutes,
		PaymentMethod:   "card",
		PaymentStatus:   enum.PaymentStatusPaid,
		CompletedAt:     &completedAt,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
