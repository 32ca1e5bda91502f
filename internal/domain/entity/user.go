package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techgpt/techgpt-api/internal/domain/enum"
)

// User represents an account on the platform. The UserType field is the
// single source of truth for which side of the marketplace the account
// belongs to.
type User struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string        `gorm:"size:255;not null" json:"first_name"`
	LastName  string        `gorm:"size:255;not null" json:"last_name"`
	Email     string        `gorm:"size:255;unique;not null" json:"email"`
	Password  string        `gorm:"size:255" json:"-"`
	Phone     *string       `gorm:"size:50" json:"phone,omitempty"`
	Address   *string       `gorm:"type:text" json:"address,omitempty"`
	City      *string       `gorm:"size:255" json:"city,omitempty"`
	Language  string        `gorm:"size:10;default:'en'" json:"language"`
	UserType  enum.UserType `gorm:"default:0;index" json:"user_type"`
	Provider  string        `gorm:"size:50;default:'local'" json:"provider"`
	// ProviderAccountID is the subject ID at the OAuth provider. The name must
	// not collide with the ProviderID foreign keys on jobs and bookings, or
	// gorm resolves those relations against this column.
	ProviderAccountID *string        `gorm:"size:255" json:"-"`
	Photo             *string        `gorm:"size:255" json:"photo,omitempty"`
	EmailVerifiedAt   *time.Time     `json:"email_verified_at,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	ProviderProfile *ProviderProfile `gorm:"foreignKey:UserID" json:"provider_profile,omitempty"`
	CustomerJobs    []Job            `gorm:"foreignKey:CustomerID" json:"-"`
	ProviderJobs    []Job            `gorm:"foreignKey:ProviderID" json:"-"`
	Tickets         []SupportTicket  `gorm:"foreignKey:UserID" json:"-"`
	Bookings        []Booking        `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// FullName returns the display name used on receipts and notifications.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user is a platform administrator.
func (u *User) IsAdmin() bool {
	return u.UserType == enum.UserTypeAdmin
}

// ProviderProfile holds the marketplace-facing details of a technician.
type ProviderProfile struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	BusinessName  *string        `gorm:"size:255" json:"business_name,omitempty"`
	Specialties   string         `gorm:"type:text" json:"specialties"`
	Bio           *string        `gorm:"type:text" json:"bio,omitempty"`
	HourlyRate    int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Rating        float64        `gorm:"default:0" json:"rating"`
	CompletedJobs int            `gorm:"default:0" json:"completed_jobs"`
	Verified      bool           `gorm:"default:false" json:"verified"`
	// No default tag: gorm drops zero-valued fields that carry one from the
	// INSERT, which would silently store false as true. New profiles start
	// not accepting until the provider opts in.
	AcceptingJobs bool           `json:"accepting_jobs"`
	ServiceArea   *string        `gorm:"size:255" json:"service_area,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p ProviderProfile) MarshalJSON() ([]byte, error) {
	type Alias ProviderProfile
	return json.Marshal(&struct {
		Alias
		HourlyRate float64 `json:"hourly_rate"`
	}{
		Alias:      Alias(p),
		HourlyRate: float64(p.HourlyRate) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new provider profile
func (p *ProviderProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProviderProfile model
func (ProviderProfile) TableName() string {
	return "provider_profiles"
}
