package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/domain/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

// JobService handles service job operations
type JobService struct {
	jobRepo     repository.JobRepository
	userRepo    repository.UserRepository
	profileRepo repository.ProviderProfileRepository
	logger      *zap.Logger
}

// NewJobService creates a new job service
func NewJobService(
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	profileRepo repository.ProviderProfileRepository,
	logger *zap.Logger,
) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// CreateJobInput represents the job creation input
type CreateJobInput struct {
	CustomerID  uuid.UUID
	Title       string
	Description *string
	Category    string
	ServiceType enum.ServiceType
	ScheduledAt *time.Time
}

// CreateJob creates a new job request for a customer
func (s *JobService) CreateJob(ctx context.Context, input *CreateJobInput) (*entity.Job, error) {
	customer, err := s.userRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if customer.UserType != enum.UserTypeCustomer {
		return nil, apperror.ErrRoleMismatch
	}

	job := &entity.Job{
		CustomerID:  input.CustomerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		ServiceType: input.ServiceType,
		Status:      enum.JobStatusRequested,
		ScheduledAt: input.ScheduledAt,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// GetJob returns a job with its hardware items and both parties loaded
func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := s.jobRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}
	return job, nil
}

// ListJobsInput represents the job listing input
type ListJobsInput struct {
	Pagination *pagination.PaginationParams
	Status     *enum.JobStatus
	CustomerID *uuid.UUID
	ProviderID *uuid.UUID
}

// ListJobs returns jobs matching the filter
func (s *JobService) ListJobs(ctx context.Context, input *ListJobsInput) (*pagination.PaginatedResult[entity.Job], error) {
	params := input.Pagination
	if params == nil {
		params = &pagination.PaginationParams{}
	}
	params.Validate()

	jobs, total, err := s.jobRepo.List(ctx, &repository.JobFilterParams{
		Pagination: params,
		Status:     input.Status,
		CustomerID: input.CustomerID,
		ProviderID: input.ProviderID,
	})
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(jobs, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// AssignProviderInput represents the provider assignment input
type AssignProviderInput struct {
	JobID      uuid.UUID
	ProviderID uuid.UUID
}

// AssignProvider assigns a provider to a requested job and schedules it
func (s *JobService) AssignProvider(ctx context.Context, input *AssignProviderInput) (*entity.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}
	if job.Status != enum.JobStatusRequested {
		return nil, apperror.NewConflictError("Job already assigned")
	}

	provider, err := s.userRepo.GetWithProfile(ctx, input.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, apperror.NewNotFoundError("Provider")
	}
	if provider.UserType != enum.UserTypeServiceProvider {
		return nil, apperror.ErrRoleMismatch
	}
	if provider.ProviderProfile != nil && !provider.ProviderProfile.AcceptingJobs {
		return nil, apperror.NewConflictError("Provider is not accepting jobs")
	}

	job.ProviderID = &input.ProviderID
	job.Status = enum.JobStatusScheduled
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// UpdateStatusInput carries a status change together with who requested it.
type UpdateStatusInput struct {
	JobID       uuid.UUID
	Status      enum.JobStatus
	UpdatedBy   uuid.UUID
	UpdatedRole enum.UserType
}

// UpdateStatus moves a job through its lifecycle. Customers may only cancel
// their own jobs, providers may only update jobs assigned to them, admins may
// update anything.
func (s *JobService) UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*entity.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}

	switch input.UpdatedRole {
	case enum.UserTypeAdmin:
		// no restriction
	case enum.UserTypeCustomer:
		if job.CustomerID != input.UpdatedBy {
			return nil, apperror.ErrForbidden
		}
		if input.Status != enum.JobStatusCancelled {
			return nil, apperror.ErrRoleMismatch
		}
	case enum.UserTypeServiceProvider:
		if job.ProviderID == nil || *job.ProviderID != input.UpdatedBy {
			return nil, apperror.ErrForbidden
		}
	default:
		return nil, apperror.ErrRoleMismatch
	}

	if !isValidTransition(job.Status, input.Status) {
		return nil, apperror.NewConflictError("Invalid status transition")
	}

	job.Status = input.Status
	if input.Status == enum.JobStatusCompleted && job.CompletedAt == nil {
		now := time.Now()
		job.CompletedAt = &now
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info("job status updated",
		zap.String("job_id", job.ID.String()),
		zap.String("status", job.Status.String()),
		zap.String("updated_by", input.UpdatedBy.String()),
		zap.String("updated_role", input.UpdatedRole.String()))

	return job, nil
}

// toCents converts a decimal dollar amount to integer cents.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// isValidTransition enforces the job lifecycle. Completed and cancelled are
// terminal.
func isValidTransition(from, to enum.JobStatus) bool {
	switch from {
	case enum.JobStatusRequested:
		return to == enum.JobStatusScheduled || to == enum.JobStatusCancelled
	case enum.JobStatusScheduled:
		return to == enum.JobStatusInProgress || to == enum.JobStatusCancelled
	case enum.JobStatusInProgress:
		return to == enum.JobStatusCompleted || to == enum.JobStatusCancelled
	default:
		return false
	}
}

// HardwareItemInput is one billed hardware line item. Total is taken as
// billed, not recomputed from quantity and unit price.
type HardwareItemInput struct {
	Name        string
	Description *string
	Quantity    int
	UnitPrice   float64
	Total       float64
}

// CompleteJobInput represents the job completion input
type CompleteJobInput struct {
	JobID           uuid.UUID
	ProviderID      uuid.UUID
	ServiceFee      float64
	DurationMinutes int
	PaymentMethod   string
	PaymentStatus   enum.PaymentStatus
	HardwareItems   []HardwareItemInput
}

// CompleteJob finishes an in-progress job, recording the billed amounts and
// any hardware items used.
func (s *JobService) CompleteJob(ctx context.Context, input *CompleteJobInput) (*entity.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}
	if job.ProviderID == nil || *job.ProviderID != input.ProviderID {
		return nil, apperror.ErrForbidden
	}
	if job.Status != enum.JobStatusInProgress && job.Status != enum.JobStatusScheduled {
		return nil, apperror.NewConflictError("Job cannot be completed from its current status")
	}
	if input.ServiceFee < 0 {
		return nil, apperror.NewBadRequestError("Service fee cannot be negative")
	}

	now := time.Now()
	job.Status = enum.JobStatusCompleted
	job.ServiceFee = toCents(input.ServiceFee)
	job.DurationMinutes = input.DurationMinutes
	job.PaymentMethod = input.PaymentMethod
	job.PaymentStatus = input.PaymentStatus
	job.CompletedAt = &now

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	if len(input.HardwareItems) > 0 {
		items := make([]entity.JobHardwareItem, 0, len(input.HardwareItems))
		for _, item := range input.HardwareItems {
			quantity := item.Quantity
			if quantity <= 0 {
				quantity = 1
			}
			items = append(items, entity.JobHardwareItem{
				JobID:       job.ID,
				Name:        item.Name,
				Description: item.Description,
				Quantity:    quantity,
				UnitPrice:   toCents(item.UnitPrice),
				Total:       toCents(item.Total),
			})
		}
		if err := s.jobRepo.AddHardwareItems(ctx, items); err != nil {
			return nil, err
		}
		job.HardwareItems = items
	}

	// Keep the provider's completed-jobs counter in sync; failures here do
	// not fail the completion.
	if profile, err := s.profileRepo.GetByUserID(ctx, input.ProviderID); err == nil && profile != nil {
		profile.CompletedJobs++
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			s.logger.Warn("failed to bump completed jobs counter",
				zap.String("provider_id", input.ProviderID.String()),
				zap.Error(err))
		}
	}

	return job, nil
}
