package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hasan13222/house-hunter-server/internal/service"
)

// ContextClaimsKey is the gin context key under which the session gate
// stores the verified token claims for downstream handlers.
const ContextClaimsKey = "auth.claims"

// TokenExtractor reads the session token from an incoming request.
type TokenExtractor interface {
	GetSessionToken(c *gin.Context) string
}

// RequireSession returns middleware that gates protected routes behind a
// valid session token. Requests without a token, or with one that fails
// signature, expiry, or revocation checks, are rejected with 401 and never
// reach the handler.
func RequireSession(authService service.AuthService, tokens TokenExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokens.GetSessionToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := authService.ValidateSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrInvalidToken) {
				abortUnauthorized(c)
				return
			}
			slog.Error("session validation failed", "error", err, "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "something went wrong",
			})
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by RequireSession, or nil when
// the request did not pass through the session gate.
func ClaimsFromContext(c *gin.Context) *service.Claims {
	value, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*service.Claims)
	return claims
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "unauthorized access",
	})
}
