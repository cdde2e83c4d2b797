// Package handlers contains HTTP request handlers for the auth service.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondFailure reports a business-rule failure. These are not transport
// errors: the request itself succeeded, the rule did not.
func respondFailure(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

// respondError reports a transport-level failure with the given status.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// logAndRespondError logs the underlying error and returns a generic
// message to the client. Infrastructure failures are fatal to the request,
// never to the process.
func logAndRespondError(c *gin.Context, status int, err error, message string) {
	slog.Error(message, "error", err, "path", c.FullPath(), "method", c.Request.Method)
	respondError(c, status, message)
}
