package request

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	FirstName       string  `json:"first_name" binding:"required,min=2,max=255"`
	LastName        string  `json:"last_name" binding:"required,min=2,max=255"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=8"`
	PasswordConfirm string  `json:"password_confirm" binding:"required,eqfield=Password"`
	Phone           *string `json:"phone"`
	Language        string  `json:"language" binding:"omitempty,oneof=en fr"`
	UserType        string  `json:"user_type" binding:"required,oneof=customer service_provider"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// GoogleLoginRequest represents a Google OAuth code exchange
type GoogleLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// ForgotPasswordRequest represents a forgot password request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	FirstName string  `json:"first_name" binding:"omitempty,min=2,max=255"`
	LastName  string  `json:"last_name" binding:"omitempty,min=2,max=255"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Language  string  `json:"language" binding:"omitempty,oneof=en fr"`
	Photo     *string `json:"photo"`
}
