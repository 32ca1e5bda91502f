package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is a message addressed to a single user.
type Notification struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	SenderID  *uuid.UUID     `gorm:"type:uuid" json:"sender_id,omitempty"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Kind      string         `gorm:"size:50;default:'general'" json:"kind"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new notification
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}

// SystemMessage is a platform-wide announcement visible to every role.
type SystemMessage struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	Severity  string         `gorm:"size:50;default:'info'" json:"severity"`
	ExpiresAt *time.Time     `gorm:"index" json:"expires_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new system message
func (m *SystemMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SystemMessage model
func (SystemMessage) TableName() string {
	return "system_messages"
}

// IsActive reports whether the message should still be shown.
func (m *SystemMessage) IsActive() bool {
	return m.ExpiresAt == nil || time.Now().Before(*m.ExpiresAt)
}
