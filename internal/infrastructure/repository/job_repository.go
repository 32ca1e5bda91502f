package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	domainRepo "github.com/techgpt/techgpt-api/internal/domain/repository"
)

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) domainRepo.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var job entity.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

func (r *jobRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var job entity.Job
	err := r.db.WithContext(ctx).
		Preload("HardwareItems").
		Preload("Customer").
		Preload("Provider").
		First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

func (r *jobRepository) Update(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Job{}, "id = ?", id).Error
}

func (r *jobRepository) List(ctx context.Context, params *domainRepo.JobFilterParams) ([]entity.Job, int64, error) {
	var jobs []entity.Job
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Job{})
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.ProviderID != nil {
		query = query.Where("provider_id = ?", *params.ProviderID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&jobs).Error

	return jobs, total, err
}

func (r *jobRepository) AddHardwareItems(ctx context.Context, items []entity.JobHardwareItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *jobRepository) SumCompletedFees(ctx context.Context, providerID *uuid.UUID) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&entity.Job{}).
		Where("status = ?", enum.JobStatusCompleted)
	if providerID != nil {
		query = query.Where("provider_id = ?", *providerID)
	}
	err := query.Select("COALESCE(SUM(service_fee), 0)").Scan(&total).Error
	return total, err
}
