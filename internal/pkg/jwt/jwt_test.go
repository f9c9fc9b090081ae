package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/reboot-ai/crm-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_ClaimsRoundTrip(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("test-secret", "1h", "168h")

	employeeID := "emp1"
	tokenString, expiresAt, err := svc.GenerateAccessToken("user1", "admin@rebootai.in", &employeeID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user1", claims["user_id"])
	assert.Equal(t, "admin@rebootai.in", claims["email"])
	assert.Equal(t, "emp1", claims["employee_id"])
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, true, claims["is_admin"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateRefreshToken_TypeClaim(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("test-secret", "1h", "168h")

	tokenString, _, err := svc.GenerateRefreshToken("user1")
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "user1", claims["user_id"])
}

func TestGenerateAccessToken_BadDurationFails(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("test-secret", "soon", "168h")

	_, _, err := svc.GenerateAccessToken("user1", "admin@rebootai.in", nil, user.RoleAdmin)
	assert.Error(t, err)
}

func TestRefreshTokenCookie_Attributes(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("test-secret", "1h", "168h")

	expires := time.Now().Add(168 * time.Hour).Unix()
	cookie := svc.RefreshTokenCookie("opaque-token", expires)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "opaque-token", cookie.Value)
	assert.Equal(t, "/api/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
