package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

// JobFilterParams narrows job listings.
type JobFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.JobStatus
	CustomerID *uuid.UUID
	ProviderID *uuid.UUID
}

// JobRepository defines the interface for service job data operations
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	// GetWithItems loads the job together with its hardware line items and both parties.
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *JobFilterParams) ([]entity.Job, int64, error)
	// AddHardwareItems appends billed hardware line items to a job.
	AddHardwareItems(ctx context.Context, items []entity.JobHardwareItem) error
	// SumCompletedFees totals service fees (cents) of completed jobs for a provider.
	// A nil providerID totals across the whole platform.
	SumCompletedFees(ctx context.Context, providerID *uuid.UUID) (int64, error)
}
