package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tembea/internal/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tokenStr, err := GenerateToken(42, models.RoleOwner)
	require.NoError(t, err)

	token, err := ValidateToken(tokenStr)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "owner", claims["role"])
	assert.NotEmpty(t, claims["jti"])
}

func TestTokenExpiryLandsNearLifetime(t *testing.T) {
	tokenStr, err := GenerateToken(1, models.RoleClient)
	require.NoError(t, err)

	expiry := TokenExpiry(tokenStr)
	expected := time.Now().Add(tokenLifetime)
	assert.WithinDuration(t, expected, expiry, time.Minute)
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// tokenWithRole signs a claim set without a jti so the middleware skips the
// revocation lookup and the test needs no database.
func tokenWithRole(t *testing.T, role models.Role) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": float64(7),
		"role":    string(role),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return tokenStr
}

func roleGuardedRouter(handlerRan *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/dashboard", RequireAuthWithRole(models.RoleAdmin), func(c *gin.Context) {
		*handlerRan = true
		c.JSON(http.StatusOK, gin.H{"secret": "admin data"})
	})
	return r
}

func TestRequireAuthWithRoleBlocksWrongRole(t *testing.T) {
	var handlerRan bool
	r := roleGuardedRouter(&handlerRan)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+tokenWithRole(t, models.RoleOwner))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerRan, "route handler must not run for a mismatched role")
	assert.NotContains(t, w.Body.String(), "admin data")
}

func TestRequireAuthWithRoleAllowsMatchingRole(t *testing.T) {
	var handlerRan bool
	r := roleGuardedRouter(&handlerRan)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+tokenWithRole(t, models.RoleAdmin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerRan)
}

func TestRequireAuthWithRoleRejectsMissingToken(t *testing.T) {
	var handlerRan bool
	r := roleGuardedRouter(&handlerRan)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
}

func TestRequireAuthRejectsMalformedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
