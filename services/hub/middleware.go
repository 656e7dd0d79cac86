package hub

import (
	"net/http"
	"strings"

	"prestigeapi/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Context keys set by Authenticate.
const (
	CtxUserID    = "hubUserID"
	CtxAuthority = "hubAuthority"
)

// Authenticate resolves the caller's token to a user ID and stores a
// token-scoped Authority on the request context. Requests without a valid
// token are rejected before reaching any handler.
func Authenticate(client *Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			return
		}

		session := client.Session(token)
		userID, err := session.CurrentUser(c.Request.Context())
		if err != nil {
			logger.Warnf("Token resolution failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxAuthority, session)
		c.Next()
	}
}

// UserID returns the acting user resolved by Authenticate.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(CtxUserID)
}

// AuthorityFrom returns the token-scoped Authority stored by Authenticate.
func AuthorityFrom(c *gin.Context) Authority {
	return c.MustGet(CtxAuthority).(Authority)
}
