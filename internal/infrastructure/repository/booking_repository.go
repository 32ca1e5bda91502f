package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	domainRepo "github.com/techgpt/techgpt-api/internal/domain/repository"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domainRepo.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Booking{}, "id = ?", id).Error
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.Booking, int64, error) {
	return r.list(ctx, "customer_id = ?", customerID, params)
}

func (r *bookingRepository) ListByProvider(ctx context.Context, providerID uuid.UUID, params *pagination.PaginationParams) ([]entity.Booking, int64, error) {
	return r.list(ctx, "provider_id = ?", providerID, params)
}

func (r *bookingRepository) list(ctx context.Context, cond string, id uuid.UUID, params *pagination.PaginationParams) ([]entity.Booking, int64, error) {
	var bookings []entity.Booking
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Booking{}).Where(cond, id)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("scheduled_at DESC").
		Find(&bookings).Error

	return bookings, total, err
}
