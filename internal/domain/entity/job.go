package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techgpt/techgpt-api/internal/domain/enum"
)

// Job represents one technical-support engagement between a customer and a
// service provider.
type Job struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProviderID      *uuid.UUID         `gorm:"type:uuid;index" json:"provider_id,omitempty"`
	Title           string             `gorm:"size:255;not null" json:"title"`
	Description     *string            `gorm:"type:text" json:"description,omitempty"`
	Category        string             `gorm:"size:255" json:"category"`
	ServiceType     enum.ServiceType   `gorm:"default:0" json:"service_type"`
	Status          enum.JobStatus     `gorm:"default:0;index" json:"status"`
	ServiceFee      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	DurationMinutes int                `gorm:"default:0" json:"duration_minutes"`
	PaymentMethod   string             `gorm:"size:50" json:"payment_method"`
	PaymentStatus   enum.PaymentStatus `gorm:"default:1" json:"payment_status"`
	ScheduledAt     *time.Time         `json:"scheduled_at,omitempty"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer      User              `gorm:"foreignKey:CustomerID;references:ID" json:"-"`
	Provider      *User             `gorm:"foreignKey:ProviderID;references:ID" json:"-"`
	HardwareItems []JobHardwareItem `gorm:"foreignKey:JobID" json:"hardware_items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (j Job) MarshalJSON() ([]byte, error) {
	type Alias Job
	return json.Marshal(&struct {
		Alias
		ServiceFee float64 `json:"service_fee"`
	}{
		Alias:      Alias(j),
		ServiceFee: float64(j.ServiceFee) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new job
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Job model
func (Job) TableName() string {
	return "jobs"
}

// GetServiceFeeDecimal returns the service fee as a decimal
func (j *Job) GetServiceFeeDecimal() float64 {
	return float64(j.ServiceFee) / 100
}

// JobHardwareItem is a hardware line item billed on a job, e.g. a replacement
// part. The Total is captured as billed; downstream receipt assembly trusts
// it rather than recomputing quantity x unit price.
type JobHardwareItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	JobID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"job_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Quantity    int            `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Total       int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Job Job `gorm:"foreignKey:JobID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i JobHardwareItem) MarshalJSON() ([]byte, error) {
	type Alias JobHardwareItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(i),
		UnitPrice: float64(i.UnitPrice) / 100,
		Total:     float64(i.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new hardware item
func (i *JobHardwareItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the JobHardwareItem model
func (JobHardwareItem) TableName() string {
	return "job_hardware_items"
}
