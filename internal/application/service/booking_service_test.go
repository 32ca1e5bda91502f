package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techgpt/techgpt-api/internal/domain/enum"
	infrarepo "github.com/techgpt/techgpt-api/internal/infrastructure/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
)

func TestCreateBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(infrarepo.NewBookingRepository(db), infrarepo.NewUserRepository(db))
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")
	provider := seedUser(t, db, enum.UserTypeServiceProvider, "bob@example.com")

	booking, err := svc.CreateBooking(context.Background(), &CreateBookingInput{
		CustomerID:  customer.ID,
		ProviderID:  &provider.ID,
		ServiceType: enum.ServiceTypeRemote,
		Topic:       "Email setup",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.BookingStatusPending, booking.Status)
	require.NotNil(t, booking.ProviderID)
	assert.Equal(t, provider.ID, *booking.ProviderID)
}

func TestCreateBooking_PastTime(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(infrarepo.NewBookingRepository(db), infrarepo.NewUserRepository(db))
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")

	_, err := svc.CreateBooking(context.Background(), &CreateBookingInput{
		CustomerID:  customer.ID,
		ServiceType: enum.ServiceTypeRemote,
		Topic:       "Email setup",
		ScheduledAt: time.Now().Add(-time.Hour),
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestCreateBooking_PhoneRequiresNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(infrarepo.NewBookingRepository(db), infrarepo.NewUserRepository(db))
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")

	_, err := svc.CreateBooking(context.Background(), &CreateBookingInput{
		CustomerID:  customer.ID,
		ServiceType: enum.ServiceTypePhone,
		Topic:       "Router trouble",
		ScheduledAt: time.Now().Add(time.Hour),
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)

	phone := "+15145551234"
	booking, err := svc.CreateBooking(context.Background(), &CreateBookingInput{
		CustomerID:  customer.ID,
		ServiceType: enum.ServiceTypePhone,
		Topic:       "Router trouble",
		PhoneNumber: &phone,
		ScheduledAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, phone, *booking.PhoneNumber)
}

func TestUpdateBookingStatus_OnlyParties(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(infrarepo.NewBookingRepository(db), infrarepo.NewUserRepository(db))
	customer := seedUser(t, db, enum.UserTypeCustomer, "alice@example.com")
	stranger := seedUser(t, db, enum.UserTypeCustomer, "carol@example.com")

	booking, err := svc.CreateBooking(context.Background(), &CreateBookingInput{
		CustomerID:  customer.ID,
		ServiceType: enum.ServiceTypeRemote,
		Topic:       "Email setup",
		ScheduledAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.UpdateBookingStatus(context.Background(), &UpdateBookingStatusInput{
		BookingID:  booking.ID,
		Status:     enum.BookingStatusCancelled,
		CallerID:   stranger.ID,
		CallerType: enum.UserTypeCustomer,
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	updated, err := svc.UpdateBookingStatus(context.Background(), &UpdateBookingStatusInput{
		BookingID:  booking.ID,
		Status:     enum.BookingStatusCancelled,
		CallerID:   customer.ID,
		CallerType: enum.UserTypeCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.BookingStatusCancelled, updated.Status)

	// Finalized bookings cannot change again.
	_, err = svc.UpdateBookingStatus(context.Background(), &UpdateBookingStatusInput{
		BookingID:  booking.ID,
		Status:     enum.BookingStatusConfirmed,
		CallerID:   customer.ID,
		CallerType: enum.UserTypeCustomer,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}
