package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/domain/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
	"github.com/techgpt/techgpt-api/pkg/pagination"
	"github.com/techgpt/techgpt-api/pkg/quebectax"
)

// ProviderService handles technician profile and earnings operations
type ProviderService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProviderProfileRepository
	jobRepo     repository.JobRepository
}

// NewProviderService creates a new provider service
func NewProviderService(
	userRepo repository.UserRepository,
	profileRepo repository.ProviderProfileRepository,
	jobRepo repository.JobRepository,
) *ProviderService {
	return &ProviderService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
	}
}

// GetProfile returns a provider's profile
func (s *ProviderService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.ProviderProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Provider profile")
	}
	return profile, nil
}

// UpdateProviderProfileInput represents the provider profile update input
type UpdateProviderProfileInput struct {
	UserID        uuid.UUID
	BusinessName  *string
	Specialties   string
	Bio           *string
	HourlyRate    *float64
	AcceptingJobs *bool
	ServiceArea   *string
}

// UpdateProfile updates a provider's business profile
func (s *ProviderService) UpdateProfile(ctx context.Context, input *UpdateProviderProfileInput) (*entity.ProviderProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Provider profile")
	}

	if input.BusinessName != nil {
		profile.BusinessName = input.BusinessName
	}
	if input.Specialties != "" {
		profile.Specialties = input.Specialties
	}
	if input.Bio != nil {
		profile.Bio = input.Bio
	}
	if input.HourlyRate != nil {
		if *input.HourlyRate < 0 {
			return nil, apperror.NewBadRequestError("Hourly rate cannot be negative")
		}
		profile.HourlyRate = toCents(*input.HourlyRate)
	}
	if input.AcceptingJobs != nil {
		profile.AcceptingJobs = *input.AcceptingJobs
	}
	if input.ServiceArea != nil {
		profile.ServiceArea = input.ServiceArea
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// ListAvailableProviders returns verified providers accepting jobs,
// optionally filtered by specialty
func (s *ProviderService) ListAvailableProviders(ctx context.Context, params *pagination.PaginationParams, specialty string) (*pagination.PaginatedResult[entity.ProviderProfile], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	profiles, total, err := s.profileRepo.ListAvailable(ctx, params, specialty)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(profiles, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// Earnings summarizes a provider's completed work.
type Earnings struct {
	ProviderID    uuid.UUID `json:"provider_id"`
	TotalEarnings float64   `json:"total_earnings"`
	CompletedJobs int64     `json:"completed_jobs"`
	AverageJob    float64   `json:"average_job"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// GetEarnings derives a provider's earnings summary from completed jobs
func (s *ProviderService) GetEarnings(ctx context.Context, providerID uuid.UUID) (*Earnings, error) {
	user, err := s.userRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("Provider")
	}
	if user.UserType != enum.UserTypeServiceProvider {
		return nil, apperror.ErrRoleMismatch
	}

	totalCents, err := s.jobRepo.SumCompletedFees(ctx, &providerID)
	if err != nil {
		return nil, err
	}

	completed := enum.JobStatusCompleted
	_, count, err := s.jobRepo.List(ctx, &repository.JobFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 1},
		Status:     &completed,
		ProviderID: &providerID,
	})
	if err != nil {
		return nil, err
	}

	earnings := &Earnings{
		ProviderID:    providerID,
		TotalEarnings: float64(totalCents) / 100,
		CompletedJobs: count,
		GeneratedAt:   time.Now(),
	}
	if count > 0 {
		earnings.AverageJob = quebectax.Round2(earnings.TotalEarnings / float64(count))
	}

	return earnings, nil
}
