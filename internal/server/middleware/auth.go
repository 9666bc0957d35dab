package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/loopcard/loyalty-backend/pkg/logging"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"

	tokenValidity = 24 * time.Hour
)

// Claims carries the authenticated user identity inside session tokens
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs a session token for the given user
func IssueToken(secret string, userID string, email string, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "loyalty-backend",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenValidity)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// JWTAuth validates the Authorization bearer token and stores the
// user identity on the gin context. When requiredRole is non-empty
// the token's role must match it.
func JWTAuth(secret string, requiredRole string, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			logger.Debugf("Rejected token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if requiredRole != "" && claims.Role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient privileges"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user ID set by JWTAuth
func UserIDFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// IsAdmin reports whether the authenticated user has the admin role
func IsAdmin(c *gin.Context) bool {
	v, ok := c.Get(ContextRoleKey)
	if !ok {
		return false
	}
	role, ok := v.(string)
	return ok && role == types.RoleAdmin
}
