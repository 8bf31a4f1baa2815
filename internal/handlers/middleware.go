package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userId"

// authGate extracts the token from the Authorization header and attaches the
// authenticated user id to the request context. A missing header is 403, a
// present-but-invalid token is 401. Ownership checks happen in the services.
func (h *Handler) authGate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "no token provided",
		})
		return
	}

	// Accept both "Bearer <token>" and a bare token value.
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

	userID, err := h.services.Users.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// callerID returns the user id the auth gate stored for this request.
func callerID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}

func corsMiddleware(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}
