package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techgpt/techgpt-api/internal/domain/enum"
)

// Booking reserves a live or phone support session with a technician.
type Booking struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProviderID  *uuid.UUID         `gorm:"type:uuid;index" json:"provider_id,omitempty"`
	ServiceType enum.ServiceType   `gorm:"default:2" json:"service_type"`
	Topic       string             `gorm:"size:255;not null" json:"topic"`
	Notes       *string            `gorm:"type:text" json:"notes,omitempty"`
	PhoneNumber *string            `gorm:"size:50" json:"phone_number,omitempty"`
	ScheduledAt time.Time          `gorm:"not null;index" json:"scheduled_at"`
	Status      enum.BookingStatus `gorm:"default:0;index" json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	Customer User  `gorm:"foreignKey:CustomerID;references:ID" json:"-"`
	Provider *User `gorm:"foreignKey:ProviderID;references:ID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new booking
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}
