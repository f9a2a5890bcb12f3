package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tembea/internal/config"
	"tembea/internal/models"
)

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

const tokenLifetime = 72 * time.Hour

// GenerateToken issues a signed JWT for the user. The jti claim lets logout
// revoke the token before its expiry.
func GenerateToken(userID uint, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"jti":     uuid.New().String(),
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
}

// authenticate validates the bearer token and stores its claims on the
// context. It never advances the handler chain; callers decide when to
// c.Next. Returns false after aborting with 401.
func authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := ValidateToken(tokenString)
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return false
	}

	// A revoked jti means the session was logged out
	if jti, _ := claims["jti"].(string); jti != "" {
		var count int64
		config.DB.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count)
		if count > 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return false
		}
		c.Set("jti", jti)
	}

	// Store claims in context for downstream handlers
	c.Set("user_id", claims["user_id"])
	c.Set("role", claims["role"])

	return true
}

// RequireAuth ensures a valid, non-revoked JWT is present
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}
		c.Next()
	}
}

// RequireAuthWithRole ensures the JWT is valid and the user has a specific
// role. The role check must run before the chain advances, so the route
// handler is never reached on a mismatch.
func RequireAuthWithRole(requiredRole models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}

		roleIfc, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not found in token"})
			return
		}
		if role, ok := roleIfc.(string); !ok || models.Role(role) != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// CurrentUser loads the authenticated user for the request. Returns false and
// aborts with 401 when the token's subject no longer exists.
func CurrentUser(c *gin.Context) (models.User, bool) {
	idIfc, exists := c.Get("user_id")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return models.User{}, false
	}
	userID, ok := idIfc.(float64)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token subject"})
		return models.User{}, false
	}

	var user models.User
	if err := config.DB.First(&user, uint(userID)).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return models.User{}, false
	}
	return user, true
}

// TokenExpiry extracts the exp claim of an already-validated token string.
func TokenExpiry(tokenStr string) time.Time {
	token, err := ValidateToken(tokenStr)
	if err != nil {
		return time.Now().Add(tokenLifetime)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0)
		}
	}
	return time.Now().Add(tokenLifetime)
}
