package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hasan13222/house-hunter-server/internal/config"
)

// SessionTokenCookie is the cookie carrying the signed session token.
const SessionTokenCookie = "token"

// CookieHelper manages the session token cookie.
type CookieHelper struct {
	config config.CookieConfig
}

// NewCookieHelper creates a new cookie helper with the given configuration.
func NewCookieHelper(cfg config.CookieConfig) *CookieHelper {
	return &CookieHelper{config: cfg}
}

// SetSessionCookie attaches the session token to the response.
func (h *CookieHelper) SetSessionCookie(c *gin.Context, token string, expiry time.Duration) {
	h.setCookie(c, token, int(expiry.Seconds()))
}

// ClearSessionCookie removes the session token cookie.
func (h *CookieHelper) ClearSessionCookie(c *gin.Context) {
	h.setCookie(c, "", -1)
}

// GetSessionToken retrieves the session token from the request's cookie jar.
// Returns the empty string when the cookie is absent.
func (h *CookieHelper) GetSessionToken(c *gin.Context) string {
	token, err := c.Cookie(SessionTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

func (h *CookieHelper) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(h.config.SameSite)
	c.SetCookie(
		SessionTokenCookie,
		value,
		maxAge,
		h.config.Path,
		h.config.Domain,
		h.config.Secure,
		true, // httpOnly - always true for auth cookies
	)
}
