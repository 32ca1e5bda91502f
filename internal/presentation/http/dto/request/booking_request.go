package request

import "time"

// CreateBookingRequest represents a support session booking request
type CreateBookingRequest struct {
	ProviderID  *string   `json:"provider_id" binding:"omitempty,uuid"`
	ServiceType string    `json:"service_type" binding:"required,oneof=onsite remote phone"`
	Topic       string    `json:"topic" binding:"required,min=3,max=255"`
	Notes       *string   `json:"notes"`
	PhoneNumber *string   `json:"phone_number"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// UpdateBookingStatusRequest represents a booking status change
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}
