package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	infrarepo "github.com/techgpt/techgpt-api/internal/infrastructure/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
	"github.com/techgpt/techgpt-api/pkg/email"
	"github.com/techgpt/techgpt-api/pkg/oauth"
	"github.com/techgpt/techgpt-api/pkg/utils"
)

func newAuthService(t *testing.T) (*AuthService, *testingDeps) {
	t.Helper()
	db := newTestDB(t)
	deps := &testingDeps{
		db:          db,
		userRepo:    infrarepo.NewUserRepository(db),
		profileRepo: infrarepo.NewProviderProfileRepository(db),
	}

	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	svc := NewAuthService(
		deps.userRepo,
		deps.profileRepo,
		infrarepo.NewPasswordResetTokenRepository(db),
		jwtManager,
		email.NewEmailService(email.EmailConfig{}),
		oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{}),
		zap.NewNop(),
	)
	return svc, deps
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Alice",
		LastName:  "Martin",
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
		UserType:  enum.UserTypeCustomer,
	})
	require.NoError(t, err)

	assert.Equal(t, "en", user.Language)
	assert.Equal(t, "local", user.Provider)
	assert.NotEqual(t, "s3cret-pass", user.Password)

	out, err := svc.Login(context.Background(), &LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Alice",
		LastName:  "Martin",
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
		UserType:  enum.UserTypeCustomer,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "nobody@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRegister_RejectsAdminAndDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Eve",
		LastName:  "Admin",
		Email:     "eve@example.com",
		Password:  "s3cret-pass",
		UserType:  enum.UserTypeAdmin,
	})
	assert.ErrorIs(t, err, apperror.ErrRoleMismatch)

	_, err = svc.Register(context.Background(), &RegisterInput{
		FirstName: "Alice",
		LastName:  "Martin",
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
		UserType:  enum.UserTypeCustomer,
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &RegisterInput{
		FirstName: "Alice",
		LastName:  "Again",
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
		UserType:  enum.UserTypeCustomer,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestRegister_ProviderGetsEmptyProfile(t *testing.T) {
	svc, deps := newAuthService(t)

	user, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Bob",
		LastName:  "Tremblay",
		Email:     "bob@example.com",
		Password:  "s3cret-pass",
		UserType:  enum.UserTypeServiceProvider,
	})
	require.NoError(t, err)

	profile, err := deps.profileRepo.GetByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, 0, profile.CompletedJobs)
	// A fresh profile must not accept jobs until the provider opts in.
	assert.False(t, profile.AcceptingJobs)
}

func TestRefreshToken(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Alice",
		LastName:  "Martin",
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
		UserType:  enum.UserTypeCustomer,
	})
	require.NoError(t, err)

	out, err := svc.Login(context.Background(), &LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), out.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Alice",
		LastName:  "Martin",
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
		UserType:  enum.UserTypeCustomer,
	})
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "new-pass-123",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)

	require.NoError(t, svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "s3cret-pass",
		NewPassword:     "new-pass-123",
	}))

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "alice@example.com",
		Password: "new-pass-123",
	})
	require.NoError(t, err)
}

func TestGoogleLogin_Unconfigured(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.GoogleLogin(context.Background(), "some-code")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 503, appErr.Code)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	svc, _ := newAuthService(t)

	require.NoError(t, svc.ForgotPassword(context.Background(), &ForgotPasswordInput{
		Email: "nobody@example.com",
	}))
}

func TestResetPassword(t *testing.T) {
	svc, deps := newAuthService(t)

	_, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Alice",
		LastName:  "Martin",
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
		UserType:  enum.UserTypeCustomer,
	})
	require.NoError(t, err)

	require.NoError(t, deps.db.Create(&entity.PasswordResetToken{
		Email:     "alice@example.com",
		Token:     "valid-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}).Error)
	require.NoError(t, deps.db.Create(&entity.PasswordResetToken{
		Email:     "alice@example.com",
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)

	err = svc.ResetPassword(context.Background(), &ResetPasswordInput{
		Email:       "alice@example.com",
		Token:       "expired-token",
		NewPassword: "new-pass-123",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)

	require.NoError(t, svc.ResetPassword(context.Background(), &ResetPasswordInput{
		Email:       "alice@example.com",
		Token:       "valid-token",
		NewPassword: "new-pass-123",
	}))

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "alice@example.com",
		Password: "new-pass-123",
	})
	require.NoError(t, err)

	// A used token cannot be replayed.
	err = svc.ResetPassword(context.Background(), &ResetPasswordInput{
		Email:       "alice@example.com",
		Token:       "valid-token",
		NewPassword: "another-pass",
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}
