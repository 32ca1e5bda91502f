package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techgpt/techgpt-api/internal/domain/enum"
)

// SupportTicket represents a customer support request outside the job flow.
type SupportTicket struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Subject     string            `gorm:"size:255;not null" json:"subject"`
	Description string            `gorm:"type:text;not null" json:"description"`
	Category    string            `gorm:"size:255" json:"category"`
	Priority    string            `gorm:"size:50;default:'normal'" json:"priority"`
	Status      enum.TicketStatus `gorm:"default:0;index" json:"status"`
	AssignedTo  *uuid.UUID        `gorm:"type:uuid" json:"assigned_to,omitempty"`
	ResolvedAt  *time.Time        `json:"resolved_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ticket
func (t *SupportTicket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SupportTicket model
func (SupportTicket) TableName() string {
	return "support_tickets"
}
