package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	domainRepo "github.com/techgpt/techgpt-api/internal/domain/repository"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetWithProfile(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Preload("ProviderProfile").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.User{}, "id = ?", id).Error
}

func (r *userRepository) List(ctx context.Context, params *pagination.PaginationParams, userType *enum.UserType, search string) ([]entity.User, int64, error) {
	var users []entity.User
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.User{})
	if userType != nil {
		query = query.Where("user_type = ?", *userType)
	}

	if search != "" {
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&users).Error

	return users, total, err
}

func (r *userRepository) Count(ctx context.Context, userType *enum.UserType) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&entity.User{})
	if userType != nil {
		query = query.Where("user_type = ?", *userType)
	}
	err := query.Count(&total).Error
	return total, err
}

type providerProfileRepository struct {
	db *gorm.DB
}

// NewProviderProfileRepository creates a new provider profile repository
func NewProviderProfileRepository(db *gorm.DB) domainRepo.ProviderProfileRepository {
	return &providerProfileRepository{db: db}
}

func (r *providerProfileRepository) Create(ctx context.Context, profile *entity.ProviderProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *providerProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProviderProfile, error) {
	var profile entity.ProviderProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *providerProfileRepository) Update(ctx context.Context, profile *entity.ProviderProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *providerProfileRepository) ListAvailable(ctx context.Context, params *pagination.PaginationParams, specialty string) ([]entity.ProviderProfile, int64, error) {
	var profiles []entity.ProviderProfile
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ProviderProfile{}).
		Where("verified = ? AND accepting_jobs = ?", true, true)

	if specialty != "" {
		query = query.Where("specialties ILIKE ?", "%"+specialty+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("rating DESC").
		Find(&profiles).Error

	return profiles, total, err
}

type passwordResetTokenRepository struct {
	db *gorm.DB
}

// NewPasswordResetTokenRepository creates a new password reset token repository
func NewPasswordResetTokenRepository(db *gorm.DB) domainRepo.PasswordResetTokenRepository {
	return &passwordResetTokenRepository{db: db}
}

func (r *passwordResetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *passwordResetTokenRepository) GetByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	var t entity.PasswordResetToken
	err := r.db.WithContext(ctx).First(&t, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &t, err
}

func (r *passwordResetTokenRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.PasswordResetToken{}).
		Where("id = ?", id).Update("used", true).Error
}

func (r *passwordResetTokenRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < NOW()").
		Delete(&entity.PasswordResetToken{}).Error
}
