package oauth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConfigured(t *testing.T) {
	assert.False(t, NewGoogleOAuthService(GoogleOAuthConfig{}).IsConfigured())
	assert.False(t, NewGoogleOAuthService(GoogleOAuthConfig{ClientID: "id"}).IsConfigured())
	assert.True(t, NewGoogleOAuthService(GoogleOAuthConfig{ClientID: "id", ClientSecret: "secret"}).IsConfigured())
}

func TestGetAuthURL(t *testing.T) {
	svc := NewGoogleOAuthService(GoogleOAuthConfig{
		ClientID:     "client-123",
		ClientSecret: "secret",
		RedirectURL:  "https://api.example.com/auth/google/callback",
	})

	url := svc.GetAuthURL("state-token")

	assert.True(t, strings.HasPrefix(url, "https://accounts.google.com/o/oauth2/auth"))
	assert.Contains(t, url, "client_id=client-123")
	assert.Contains(t, url, "state=state-token")
	assert.Contains(t, url, "access_type=offline")
}

func TestFrontendRedirects(t *testing.T) {
	svc := NewGoogleOAuthService(GoogleOAuthConfig{
		FrontendSuccessURL: "https://app.example.com/login/success",
		FrontendErrorURL:   "https://app.example.com/login/error",
	})

	assert.Equal(t, "https://app.example.com/login/success", svc.FrontendSuccessURL())
	assert.Equal(t, "https://app.example.com/login/error", svc.FrontendErrorURL())
}
