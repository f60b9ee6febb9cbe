package jwt

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leave-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func newTestJWTService() Service {
	return NewJWTService(testSecret, "1h", "24h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestJWTService()

	email := "alice@example.com"
	projectID := "proj-1"
	token, expiresAt, err := svc.GenerateAccessToken("user-1", &email, &projectID, user.RoleSupervisor)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, "proj-1", claims["project_id"])
	assert.Equal(t, "supervisor", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessTokenNilOptionals(t *testing.T) {
	svc := newTestJWTService()

	token, _, err := svc.GenerateAccessToken("user-1", nil, nil, user.RoleStaff)
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["email"])
	assert.Nil(t, claims["project_id"])
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := newTestJWTService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "refresh", claims["type"])
}

func TestSSETokenRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, expiresIn, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateSSETokenRejectsAccessToken(t *testing.T) {
	svc := newTestJWTService()

	token, _, err := svc.GenerateAccessToken("user-1", nil, nil, user.RoleStaff)
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(token)
	assert.Error(t, err)
}

func TestValidateSSETokenRejectsGarbage(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateSSEToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateSSETokenRejectsWrongKey(t *testing.T) {
	other := NewJWTService("a-different-secret", "1h", "24h")
	token, _, err := other.GenerateSSEToken("user-1")
	require.NoError(t, err)

	svc := newTestJWTService()
	_, err = svc.ValidateSSEToken(token)
	assert.Error(t, err)
}

func TestTokenRevocation(t *testing.T) {
	svc := newTestJWTService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestJWTService()

	cookie := svc.RefreshTokenCookie("some-token", 1767225600)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
