package middleware

import (
	"strings"

	"branchaudit/services/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UIDKey is the gin context key holding the caller's anonymous uid.
const UIDKey = "uid"

// OptionalIdentity attaches the uid from a valid bearer token. Requests
// without one, or with an invalid one, continue anonymously.
func OptionalIdentity(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if provider == nil {
			c.Next()
			return
		}
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		uid, err := provider.Verify(c.Request.Context(), token)
		if err != nil {
			zap.L().Debug("Ignoring invalid identity token",
				zap.String("fingerprint", identity.Fingerprint(token)), zap.String("ip", getClientIP(c)))
			c.Next()
			return
		}
		c.Set(UIDKey, uid)
		c.Next()
	}
}

// UID returns the caller's uid, or "" for anonymous requests.
func UID(c *gin.Context) string {
	return c.GetString(UIDKey)
}
