package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

// BookingRepository defines the interface for support booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByCustomer returns bookings made by one customer, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.Booking, int64, error)
	// ListByProvider returns bookings assigned to one technician, newest first.
	ListByProvider(ctx context.Context, providerID uuid.UUID, params *pagination.PaginationParams) ([]entity.Booking, int64, error)
}
