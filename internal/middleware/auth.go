package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hypechain/hypechain/internal/auth"
	"github.com/hypechain/hypechain/pkg/logging"
)

// IdentityKey is the gin context key holding the resolved caller identity
const IdentityKey = "identity"

// CORS applies the permissive cross-origin headers the SPA frontend
// expects and short-circuits OPTIONS preflight requests
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Client-Info, Apikey")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// Auth resolves the Authorization bearer token to a user identity and
// aborts unauthenticated requests
func Auth(client *auth.Client) gin.HandlerFunc {
	logger := logging.WithComponent("auth-middleware")

	return func(c *gin.Context) {
		token := BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		identity, err := client.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Error("Failed to resolve token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "auth service unavailable"})
			return
		}
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		logging.WithUser(identity.UserID).Debug("Request authenticated",
			zap.String("path", c.FullPath()))

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// BearerToken extracts the token from an Authorization header value
func BearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CallerID returns the authenticated caller's user ID, or "" when the
// request passed through without the Auth middleware
func CallerID(c *gin.Context) string {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return ""
	}
	identity, ok := v.(*auth.Identity)
	if !ok {
		return ""
	}
	return identity.UserID
}
