package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

// UserRepository defines the interface for account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetWithProfile loads the user together with the provider profile, when one exists.
	GetWithProfile(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns users filtered by type when userType is non-nil.
	List(ctx context.Context, params *pagination.PaginationParams, userType *enum.UserType, search string) ([]entity.User, int64, error)
	Count(ctx context.Context, userType *enum.UserType) (int64, error)
}

// ProviderProfileRepository defines the interface for technician profile operations
type ProviderProfileRepository interface {
	Create(ctx context.Context, profile *entity.ProviderProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProviderProfile, error)
	Update(ctx context.Context, profile *entity.ProviderProfile) error
	// ListAvailable returns verified profiles currently accepting jobs.
	ListAvailable(ctx context.Context, params *pagination.PaginationParams, specialty string) ([]entity.ProviderProfile, int64, error)
}

// PasswordResetTokenRepository defines the interface for reset token operations
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, token *entity.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) error
}
