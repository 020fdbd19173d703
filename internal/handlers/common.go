package handlers

import (
	"context"
	"net/http"
	"time"

	"task-bidding-api/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// respondErr maps an application error onto the HTTP response.
func respondErr(c *gin.Context, err error) {
	c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
}

// reqCtx bounds store calls so a stuck operation fails instead of holding
// the request (and the task's lock) forever.
func reqCtx(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}

// callerID extracts the authenticated user set by the JWT middleware.
func callerID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return "", false
	}
	return userID, true
}
