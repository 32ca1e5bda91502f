package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	infrarepo "github.com/techgpt/techgpt-api/internal/infrastructure/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
)

func newProviderService(t *testing.T) (*ProviderService, *testingDeps) {
	t.Helper()
	db := newTestDB(t)
	deps := &testingDeps{
		db:          db,
		jobRepo:     infrarepo.NewJobRepository(db),
		userRepo:    infrarepo.NewUserRepository(db),
		profileRepo: infrarepo.NewProviderProfileRepository(db),
	}
	return NewProviderService(deps.userRepo, deps.profileRepo, deps.jobRepo), deps
}

func TestUpdateProviderProfile(t *testing.T) {
	svc, deps := newProviderService(t)
	provider := seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")
	require.NoError(t, deps.db.Create(&entity.ProviderProfile{
		UserID:        provider.ID,
		AcceptingJobs: true,
	}).Error)

	rate := 85.50
	accepting := false
	profile, err := svc.UpdateProfile(context.Background(), &UpdateProviderProfileInput{
		UserID:        provider.ID,
		Specialties:   "networking,hardware",
		HourlyRate:    &rate,
		AcceptingJobs: &accepting,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(8550), profile.HourlyRate)
	assert.Equal(t, "networking,hardware", profile.Specialties)
	assert.False(t, profile.AcceptingJobs)
}

func TestUpdateProviderProfile_NegativeRate(t *testing.T) {
	svc, deps := newProviderService(t)
	provider := seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")
	require.NoError(t, deps.db.Create(&entity.ProviderProfile{
		UserID: provider.ID,
	}).Error)

	rate := -1.0
	_, err := svc.UpdateProfile(context.Background(), &UpdateProviderProfileInput{
		UserID:     provider.ID,
		HourlyRate: &rate,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestGetEarnings(t *testing.T) {
	svc, deps := newProviderService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	provider := seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")

	seedCompletedJob(t, deps.db, customer, provider, 5000, 60)
	seedCompletedJob(t, deps.db, customer, provider, 10050, 120)

	earnings, err := svc.GetEarnings(context.Background(), provider.ID)
	require.NoError(t, err)

	assert.Equal(t, 150.50, earnings.TotalEarnings)
	assert.Equal(t, int64(2), earnings.CompletedJobs)
	assert.Equal(t, 75.25, earnings.AverageJob)
}

func TestGetEarnings_NoCompletedJobs(t *testing.T) {
	svc, deps := newProviderService(t)
	provider := seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")

	earnings, err := svc.GetEarnings(context.Background(), provider.ID)
	require.NoError(t, err)

	assert.Equal(t, 0.0, earnings.TotalEarnings)
	assert.Equal(t, int64(0), earnings.CompletedJobs)
	assert.Equal(t, 0.0, earnings.AverageJob)
}

func TestGetEarnings_RejectsNonProvider(t *testing.T) {
	svc, deps := newProviderService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")

	_, err := svc.GetEarnings(context.Background(), customer.ID)
	assert.ErrorIs(t, err, apperror.ErrRoleMismatch)
}
