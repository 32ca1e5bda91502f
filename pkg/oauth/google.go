// Package oauth implements the Google sign-in flow used by the auth service.
// The service exchanges an authorization code for tokens and resolves the
// Google account profile; session issuance stays in the application layer.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

var (
	// ErrInvalidCode means the authorization code was rejected during exchange.
	ErrInvalidCode = errors.New("authorization code exchange rejected")
	// ErrFailedToGetUser means the Google userinfo lookup did not yield a profile.
	ErrFailedToGetUser = errors.New("google profile lookup failed")
	// ErrInvalidState means the state parameter did not match the issued one.
	ErrInvalidState = errors.New("oauth state mismatch")
	// ErrOAuthNotConfigured means no Google client credentials were supplied.
	ErrOAuthNotConfigured = errors.New("google sign-in not configured")
)

// GoogleUserInfo is the profile returned by the Google userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// GoogleOAuthConfig carries the client credentials and redirect targets.
type GoogleOAuthConfig struct {
	ClientID           string
	ClientSecret       string
	RedirectURL        string
	FrontendSuccessURL string
	FrontendErrorURL   string
}

// GoogleOAuthService drives the authorization-code flow against Google.
type GoogleOAuthService struct {
	config             *oauth2.Config
	frontendSuccessURL string
	frontendErrorURL   string
}

func NewGoogleOAuthService(cfg GoogleOAuthConfig) *GoogleOAuthService {
	return &GoogleOAuthService{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		frontendSuccessURL: cfg.FrontendSuccessURL,
		frontendErrorURL:   cfg.FrontendErrorURL,
	}
}

// IsConfigured reports whether client credentials were supplied. Deployments
// without them still boot, and the login endpoint answers 503 instead.
func (s *GoogleOAuthService) IsConfigured() bool {
	return s.config.ClientID != "" && s.config.ClientSecret != ""
}

// GetAuthURL builds the consent URL carrying the given anti-forgery state.
func (s *GoogleOAuthService) GetAuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode trades the authorization code for an access token.
func (s *GoogleOAuthService) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	return token, nil
}

// GetUserInfo resolves the Google account profile behind the token.
func (s *GoogleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*GoogleUserInfo, error) {
	resp, err := s.config.Client(ctx, token).Get(userInfoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetUser, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: userinfo returned %d: %s", ErrFailedToGetUser, resp.StatusCode, string(body))
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetUser, err)
	}
	return &info, nil
}

// FrontendSuccessURL is where the browser lands after a completed sign-in.
func (s *GoogleOAuthService) FrontendSuccessURL() string {
	return s.frontendSuccessURL
}

// FrontendErrorURL is where the browser lands when the flow is abandoned.
func (s *GoogleOAuthService) FrontendErrorURL() string {
	return s.frontendErrorURL
}
