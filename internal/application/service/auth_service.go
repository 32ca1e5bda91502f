package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/domain/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
	"github.com/techgpt/techgpt-api/pkg/email"
	"github.com/techgpt/techgpt-api/pkg/oauth"
	"github.com/techgpt/techgpt-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo          repository.UserRepository
	profileRepo       repository.ProviderProfileRepository
	passwordResetRepo repository.PasswordResetTokenRepository
	jwtManager        *utils.JWTManager
	emailService      *email.EmailService
	oauthService      *oauth.GoogleOAuthService
	logger            *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	profileRepo repository.ProviderProfileRepository,
	passwordResetRepo repository.PasswordResetTokenRepository,
	jwtManager *utils.JWTManager,
	emailService *email.EmailService,
	oauthService *oauth.GoogleOAuthService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:          userRepo,
		profileRepo:       profileRepo,
		passwordResetRepo: passwordResetRepo,
		jwtManager:        jwtManager,
		emailService:      emailService,
		oauthService:      oauthService,
		logger:            logger,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     *string
	Language  string
	UserType  enum.UserType
}

// Register creates a new user account. Providers get an empty profile which
// they fill in before they can start accepting jobs.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	// Admin accounts are seeded, never self-registered.
	if input.UserType == enum.UserTypeAdmin {
		return nil, apperror.ErrRoleMismatch
	}

	existingUser, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	language := input.Language
	if language == "" {
		language = "en"
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashedPassword,
		Phone:     input.Phone,
		Language:  language,
		UserType:  input.UserType,
		Provider:  "local",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if user.UserType == enum.UserTypeServiceProvider {
		profile := &entity.ProviderProfile{UserID: user.ID}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			s.logger.Error("failed to create provider profile",
				zap.String("user_id", user.ID.String()),
				zap.Error(err))
		}
	}

	return user, nil
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.UserType)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetWithProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the user's password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Phone     *string
	Address   *string
	City      *string
	Language  string
	Photo     *string
}

// UpdateProfile updates the user's account details
func (s *AuthService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Address != nil {
		user.Address = input.Address
	}
	if input.City != nil {
		user.City = input.City
	}
	if input.Language != "" {
		user.Language = input.Language
	}
	if input.Photo != nil {
		user.Photo = input.Photo
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GoogleLogin exchanges a Google OAuth code for tokens, creating the account
// on first sign-in. OAuth accounts are always customers; providers and admins
// use password login.
func (s *AuthService) GoogleLogin(ctx context.Context, code string) (*LoginOutput, error) {
	if !s.oauthService.IsConfigured() {
		return nil, apperror.NewAppError(503, "Google sign-in is not configured")
	}

	token, err := s.oauthService.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid authorization code")
	}

	info, err := s.oauthService.GetUserInfo(ctx, token)
	if err != nil {
		return nil, apperror.NewBadRequestError("Failed to fetch Google account info")
	}

	user, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if user == nil {
		user = &entity.User{
			FirstName:         info.GivenName,
			LastName:          info.FamilyName,
			Email:             info.Email,
			UserType:          enum.UserTypeCustomer,
			Provider:          "google",
			ProviderAccountID: &info.ID,
		}
		if info.Picture != "" {
			user.Photo = &info.Picture
		}
		if info.VerifiedEmail {
			user.EmailVerifiedAt = &now
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if user.Provider == "local" {
		// Link the Google identity to the existing local account.
		user.Provider = "google"
		user.ProviderAccountID = &info.ID
		if user.EmailVerifiedAt == nil && info.VerifiedEmail {
			user.EmailVerifiedAt = &now
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(ctx, user)
}

// ForgotPasswordInput represents the forgot password input
type ForgotPasswordInput struct {
	Email string
}

// ForgotPassword initiates the password reset process. It always reports
// success to the caller so that account emails cannot be enumerated.
func (s *AuthService) ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil || user == nil {
		return nil
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return err
	}
	token := hex.EncodeToString(tokenBytes)

	resetToken := &entity.PasswordResetToken{
		Email:     input.Email,
		Token:     token,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		Used:      false,
	}

	if err := s.passwordResetRepo.Create(ctx, resetToken); err != nil {
		return err
	}

	if err := s.emailService.SendPasswordResetEmail(input.Email, token); err != nil {
		s.logger.Error("failed to send password reset email",
			zap.String("email", input.Email),
			zap.Error(err))
	}

	return nil
}

// ResetPasswordInput represents the reset password input
type ResetPasswordInput struct {
	Email       string
	Token       string
	NewPassword string
}

// ResetPassword resets the user's password using a valid token
func (s *AuthService) ResetPassword(ctx context.Context, input *ResetPasswordInput) error {
	resetToken, err := s.passwordResetRepo.GetByToken(ctx, input.Token)
	if err != nil {
		return err
	}
	if resetToken == nil || resetToken.Email != input.Email || !resetToken.IsValid() {
		return apperror.NewBadRequestError("Invalid or expired reset token")
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewBadRequestError("Invalid or expired reset token")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.passwordResetRepo.MarkUsed(ctx, resetToken.ID); err != nil {
		s.logger.Warn("failed to mark reset token used",
			zap.String("token_id", resetToken.ID.String()),
			zap.Error(err))
	}

	return nil
}
