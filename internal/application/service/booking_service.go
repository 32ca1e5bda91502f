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
)

// BookingService handles live and phone support session bookings
type BookingService struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
}

// NewBookingService creates a new booking service
func NewBookingService(bookingRepo repository.BookingRepository, userRepo repository.UserRepository) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

// CreateBookingInput represents the booking creation input
type CreateBookingInput struct {
	CustomerID  uuid.UUID
	ProviderID  *uuid.UUID
	ServiceType enum.ServiceType
	Topic       string
	Notes       *string
	PhoneNumber *string
	ScheduledAt time.Time
}

// CreateBooking reserves a support session slot
func (s *BookingService) CreateBooking(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error) {
	if input.ScheduledAt.Before(time.Now()) {
		return nil, apperror.NewBadRequestError("Booking time must be in the future")
	}
	if input.ServiceType == enum.ServiceTypePhone && input.PhoneNumber == nil {
		return nil, apperror.NewBadRequestError("Phone bookings require a phone number")
	}

	if input.ProviderID != nil {
		provider, err := s.userRepo.GetByID(ctx, *input.ProviderID)
		if err != nil {
			return nil, err
		}
		if provider == nil {
			return nil, apperror.NewNotFoundError("Provider")
		}
		if provider.UserType != enum.UserTypeServiceProvider {
			return nil, apperror.ErrRoleMismatch
		}
	}

	booking := &entity.Booking{
		CustomerID:  input.CustomerID,
		ProviderID:  input.ProviderID,
		ServiceType: input.ServiceType,
		Topic:       input.Topic,
		Notes:       input.Notes,
		PhoneNumber: input.PhoneNumber,
		ScheduledAt: input.ScheduledAt,
		Status:      enum.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// ListCustomerBookings returns a customer's bookings
func (s *BookingService) ListCustomerBookings(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Booking], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	bookings, total, err := s.bookingRepo.ListByCustomer(ctx, customerID, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(bookings, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListProviderBookings returns bookings assigned to a technician
func (s *BookingService) ListProviderBookings(ctx context.Context, providerID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Booking], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	bookings, total, err := s.bookingRepo.ListByProvider(ctx, providerID, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(bookings, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateBookingStatusInput represents the booking status update input
type UpdateBookingStatusInput struct {
	BookingID  uuid.UUID
	Status     enum.BookingStatus
	CallerID   uuid.UUID
	CallerType enum.UserType
}

// UpdateBookingStatus moves a booking through its lifecycle. Only the booking
// customer, its assigned provider, or an admin may change it.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, input *UpdateBookingStatusInput) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}

	isParty := booking.CustomerID == input.CallerID ||
		(booking.ProviderID != nil && *booking.ProviderID == input.CallerID)
	if !isParty && input.CallerType != enum.UserTypeAdmin {
		return nil, apperror.ErrForbidden
	}

	if booking.Status == enum.BookingStatusCompleted || booking.Status == enum.BookingStatusCancelled {
		return nil, apperror.NewConflictError("Booking is already finalized")
	}

	booking.Status = input.Status
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}
