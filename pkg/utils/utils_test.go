package utils

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techgpt/techgpt-api/internal/domain/enum"
)

func TestGenerateInvoiceNumber(t *testing.T) {
	jobID := uuid.MustParse("ab12cd34-0000-0000-0000-000000000000")
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	got := GenerateInvoiceNumber(now, jobID)

	assert.Equal(t, fmt.Sprintf("INV-%d-AB12CD34", now.UnixMilli()), got)
	assert.True(t, strings.HasPrefix(got, "INV-"))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTManager_AccessToken(t *testing.T) {
	manager := NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "alice@example.com", enum.UserTypeCustomer)
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, enum.UserTypeCustomer, claims.UserType)

	// Tokens signed with a different secret are rejected.
	other := NewJWTManager("other-secret", 15*time.Minute, 24*time.Hour)
	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RefreshToken(t *testing.T) {
	manager := NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateRefreshToken(userID)
	require.NoError(t, err)

	got, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = manager.ValidateRefreshToken("not-a-token")
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "75.50", FormatMoney(75.5))
	assert.Equal(t, "0.00", FormatMoney(0))
}
