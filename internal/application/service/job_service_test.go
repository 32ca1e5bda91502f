package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	infrarepo "github.com/techgpt/techgpt-api/internal/infrastructure/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
)

func newJobService(t *testing.T) (*JobService, *testingDeps) {
	t.Helper()
	db := newTestDB(t)
	deps := &testingDeps{
		db:          db,
		jobRepo:     infrarepo.NewJobRepository(db),
		userRepo:    infrarepo.NewUserRepository(db),
		profileRepo: infrarepo.NewProviderProfileRepository(db),
	}
	svc := NewJobService(deps.jobRepo, deps.userRepo, deps.profileRepo, zap.NewNop())
	return svc, deps
}

func TestCreateJob(t *testing.T) {
	svc, deps := newJobService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:  customer.ID,
		Title:       "Printer not working",
		Category:    "Hardware Repair",
		ServiceType: enum.ServiceTypeOnsite,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.JobStatusRequested, job.Status)
	assert.Equal(t, customer.ID, job.CustomerID)
	assert.Nil(t, job.ProviderID)
}

func TestCreateJob_RejectsNonCustomer(t *testing.T) {
	svc, deps := newJobService(t)
	provider := seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")

	_, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:  provider.ID,
		Title:       "Printer not working",
		Category:    "Hardware Repair",
		ServiceType: enum.ServiceTypeOnsite,
	})
	assert.ErrorIs(t, err, apperror.ErrRoleMismatch)
}

func TestAssignProvider(t *testing.T) {
	svc, deps := newJobService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	provider := seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")
	require.NoError(t, deps.db.Create(&entity.ProviderProfile{
		UserID:        provider.ID,
		AcceptingJobs: true,
	}).Error)

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:  customer.ID,
		Title:       "Printer not working",
		Category:    "Hardware Repair",
		ServiceType: enum.ServiceTypeOnsite,
	})
	require.NoError(t, err)

	assigned, err := svc.AssignProvider(context.Background(), &AssignProviderInput{
		JobID:      job.ID,
		ProviderID: provider.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.JobStatusScheduled, assigned.Status)
	require.NotNil(t, assigned.ProviderID)
	assert.Equal(t, provider.ID, *assigned.ProviderID)

	// A scheduled job cannot be assigned again.
	_, err = svc.AssignProvider(context.Background(), &AssignProviderInput{
		JobID:      job.ID,
		ProviderID: provider.ID,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestAssignProvider_NotAcceptingJobs(t *testing.T) {
	svc, deps := newJobService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	provider := seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")
	require.NoError(t, deps.db.Create(&entity.ProviderProfile{
		UserID:        provider.ID,
		AcceptingJobs: false,
	}).Error)

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:  customer.ID,
		Title:       "Printer not working",
		Category:    "Hardware Repair",
		ServiceType: enum.ServiceTypeOnsite,
	})
	require.NoError(t, err)

	_, err = svc.AssignProvider(context.Background(), &AssignProviderInput{
		JobID:      job.ID,
		ProviderID: provider.ID,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestGetJob_LoadsParties(t *testing.T) {
	svc, deps := newJobService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	provider := seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")

	job := &entity.Job{
		CustomerID:  customer.ID,
		ProviderID:  &provider.ID,
		Title:       "Laptop repair",
		Category:    "Hardware Repair",
		ServiceType: enum.ServiceTypeOnsite,
		Status:      enum.JobStatusScheduled,
	}
	require.NoError(t, deps.db.Create(job).Error)

	got, err := svc.GetJob(context.Background(), job.ID)
	require.NoError(t, err)

	// The technician relation must resolve through jobs.provider_id, not any
	// similarly named column on users.
	assert.Equal(t, "alice@example.com", got.Customer.Email)
	require.NotNil(t, got.Provider)
	assert.Equal(t, provider.ID, got.Provider.ID)
	assert.Equal(t, "bob@example.com", got.Provider.Email)
}

func TestUpdateStatus_CustomerCanOnlyCancelOwnJob(t *testing.T) {
	svc, deps := newJobService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	other := seedUser(t, deps.db, enum.UserTypeCustomer, "carol@example.com")

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:  customer.ID,
		Title:       "Slow laptop",
		Category:    "Software",
		ServiceType: enum.ServiceTypeRemote,
	})
	require.NoError(t, err)

	// Another customer cannot touch the job at all.
	_, err = svc.UpdateStatus(context.Background(), &UpdateStatusInput{
		JobID:       job.ID,
		Status:      enum.JobStatusCancelled,
		UpdatedBy:   other.ID,
		UpdatedRole: enum.UserTypeCustomer,
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	// The owner cannot move it forward, only cancel.
	_, err = svc.UpdateStatus(context.Background(), &UpdateStatusInput{
		JobID:       job.ID,
		Status:      enum.JobStatusScheduled,
		UpdatedBy:   customer.ID,
		UpdatedRole: enum.UserTypeCustomer,
	})
	assert.ErrorIs(t, err, apperror.ErrRoleMismatch)

	cancelled, err := svc.UpdateStatus(context.Background(), &UpdateStatusInput{
		JobID:       job.ID,
		Status:      enum.JobStatusCancelled,
		UpdatedBy:   customer.ID,
		UpdatedRole: enum.UserTypeCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.JobStatusCancelled, cancelled.Status)
}

func TestUpdateStatus_ProviderMustBeAssigned(t *testing.T) {
	svc, deps := newJobService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	provider := seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:  customer.ID,
		Title:       "Slow laptop",
		Category:    "Software",
		ServiceType: enum.ServiceTypeRemote,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), &UpdateStatusInput{
		JobID:       job.ID,
		Status:      enum.JobStatusInProgress,
		UpdatedBy:   provider.ID,
		UpdatedRole: enum.UserTypeServiceProvider,
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	svc, deps := newJobService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:  customer.ID,
		Title:       "Slow laptop",
		Category:    "Software",
		ServiceType: enum.ServiceTypeRemote,
	})
	require.NoError(t, err)

	// Requested cannot jump straight to completed, even for an admin.
	_, err = svc.UpdateStatus(context.Background(), &UpdateStatusInput{
		JobID:       job.ID,
		Status:      enum.JobStatusCompleted,
		UpdatedBy:   uuid.New(),
		UpdatedRole: enum.UserTypeAdmin,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestUpdateStatus_TerminalStatesAreFinal(t *testing.T) {
	svc, deps := newJobService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")

	job, err := svc.CreateJob(context.Background(), &CreateJobInput{
		CustomerID:  customer.ID,
		Title:       "Slow laptop",
		Category:    "Software",
		ServiceType: enum.ServiceTypeRemote,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), &UpdateStatusInput{
		JobID:       job.ID,
		Status:      enum.JobStatusCancelled,
		UpdatedBy:   uuid.New(),
		UpdatedRole: enum.UserTypeAdmin,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), &UpdateStatusInput{
		JobID:       job.ID,
		Status:      enum.JobStatusScheduled,
		UpdatedBy:   uuid.New(),
		UpdatedRole: enum.UserTypeAdmin,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestCompleteJob(t *testing.T) {
	svc, deps := newJobService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	provider := seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")
	require.NoError(t, deps.db.Create(&entity.ProviderProfile{
		UserID:        provider.ID,
		AcceptingJobs: true,
	}).Error)

	job := &entity.Job{
		CustomerID:  customer.ID,
		ProviderID:  &provider.ID,
		Title:       "Laptop repair",
		Category:    "Hardware Repair",
		ServiceType: enum.ServiceTypeOnsite,
		Status:      enum.JobStatusInProgress,
	}
	require.NoError(t, deps.db.Create(job).Error)

	completed, err := svc.CompleteJob(context.Background(), &CompleteJobInput{
		JobID:           job.ID,
		ProviderID:      provider.ID,
		ServiceFee:      75.50,
		DurationMinutes: 90,
		PaymentMethod:   "card",
		PaymentStatus:   enum.PaymentStatusPaid,
		HardwareItems: []HardwareItemInput{
			{Name: "RAM", Quantity: 2, UnitPrice: 20.00, Total: 40.00},
			{Name: "SSD", UnitPrice: 55.00, Total: 55.00}, // quantity defaults to 1
		},
	})
	require.NoError(t, err)

	assert.Equal(t, enum.JobStatusCompleted, completed.Status)
	assert.Equal(t, int64(7550), completed.ServiceFee)
	assert.NotNil(t, completed.CompletedAt)
	require.Len(t, completed.HardwareItems, 2)
	assert.Equal(t, int64(4000), completed.HardwareItems[0].Total)
	assert.Equal(t, 1, completed.HardwareItems[1].Quantity)

	profile, err := deps.profileRepo.GetByUserID(context.Background(), provider.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, 1, profile.CompletedJobs)
}

func TestCompleteJob_WrongProvider(t *testing.T) {
	svc, deps := newJobService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	provider := seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")
	intruder := seedUser(t, deps.db, enum.UserTypeServiceProvider, "mallory@example.com")

	job := &entity.Job{
		CustomerID:  customer.ID,
		ProviderID:  &provider.ID,
		Title:       "Laptop repair",
		Category:    "Hardware Repair",
		ServiceType: enum.ServiceTypeOnsite,
		Status:      enum.JobStatusInProgress,
	}
	require.NoError(t, deps.db.Create(job).Error)

	_, err := svc.CompleteJob(context.Background(), &CompleteJobInput{
		JobID:      job.ID,
		ProviderID: intruder.ID,
		ServiceFee: 50,
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestListJobs_FilterByCustomer(t *testing.T) {
	svc, deps := newJobService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	other := seedUser(t, deps.db, enum.UserTypeCustomer, "carol@example.com")

	for _, owner := range []*entity.User{customer, customer, other} {
		_, err := svc.CreateJob(context.Background(), &CreateJobInput{
			CustomerID:  owner.ID,
			Title:       "Job",
			Category:    "Software",
			ServiceType: enum.ServiceTypeRemote,
		})
		require.NoError(t, err)
	}

	result, err := svc.ListJobs(context.Background(), &ListJobsInput{
		CustomerID: &customer.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Pagination.Total)
	assert.Len(t, result.Items, 2)
}
