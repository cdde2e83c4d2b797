package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hasan13222/house-hunter-server/internal/metrics"
	"github.com/hasan13222/house-hunter-server/internal/middleware"
	"github.com/hasan13222/house-hunter-server/internal/models"
	"github.com/hasan13222/house-hunter-server/internal/service"
)

// passwordPlaceholder is returned in place of the stored hash whenever a
// user record is echoed back to a client. The hash itself never leaves the
// service.
const passwordPlaceholder = "sorry, password should be memorized by you"

const genericErrorMessage = "something went wrong"

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	cookies     *CookieHelper
	metrics     *metrics.Metrics
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, cookies *CookieHelper, m *metrics.Metrics, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		metrics:     m,
		sessionTTL:  sessionTTL,
	}
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary Register a new user
// @Description Create an account from an email, a password, and arbitrary profile fields
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "email, password, and profile fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	email, ok := body["email"].(string)
	if !ok || email == "" {
		respondError(c, http.StatusBadRequest, "email is required")
		return
	}
	password, ok := body["password"].(string)
	if !ok || password == "" {
		respondError(c, http.StatusBadRequest, "password is required")
		return
	}

	// Everything besides the credentials is opaque profile data.
	delete(body, "email")
	delete(body, "password")

	user, err := h.authService.Signup(c.Request.Context(), &service.SignupRequest{
		Email:    email,
		Password: password,
		Profile:  body,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			h.metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
			respondFailure(c, "User Email already in use")
			return
		}
		h.metrics.SignupsTotal.WithLabelValues("error").Inc()
		logAndRespondError(c, http.StatusInternalServerError, err, genericErrorMessage)
		return
	}

	h.metrics.SignupsTotal.WithLabelValues("created").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"insertedId": user.ID,
	})
}

// Login godoc
// @Summary Log a user in
// @Description Verify credentials and set the session token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotRegistered):
			h.metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
			respondFailure(c, "Your Email is not registered")
		case errors.Is(err, service.ErrWrongPassword):
			h.metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
			respondFailure(c, "Your Entered Wrong Password")
		default:
			h.metrics.LoginsTotal.WithLabelValues("error").Inc()
			logAndRespondError(c, http.StatusInternalServerError, err, genericErrorMessage)
		}
		return
	}

	h.metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.cookies.SetSessionCookie(c, result.Token, h.sessionTTL)
	c.JSON(http.StatusOK, userPayload(result.User))
}

// Logout godoc
// @Summary Log a user out
// @Description Clear the session token cookie and revoke the token when revocation is enabled
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := h.cookies.GetSessionToken(c)
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		// Revocation is best-effort; logout still succeeds.
		slog.Error("token revocation failed", "error", err)
	}

	h.cookies.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// IsLogin godoc
// @Summary Check the current session
// @Description Return the user record for the verified session token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /isLogin [get]
func (h *AuthHandler) IsLogin(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		h.metrics.SessionChecksTotal.WithLabelValues("unauthorized").Inc()
		respondError(c, http.StatusUnauthorized, "unauthorized access")
		return
	}

	user, err := h.authService.CheckSession(c.Request.Context(), claims.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			h.metrics.SessionChecksTotal.WithLabelValues("missing_user").Inc()
			respondFailure(c, "User does not exist")
			return
		}
		h.metrics.SessionChecksTotal.WithLabelValues("error").Inc()
		logAndRespondError(c, http.StatusInternalServerError, err, genericErrorMessage)
		return
	}

	h.metrics.SessionChecksTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, userPayload(user))
}

// userPayload flattens a user record into the upstream response shape:
// profile fields at the top level alongside id and email, with the stored
// hash always replaced by the placeholder.
func userPayload(user *models.User) gin.H {
	payload := gin.H{}
	for key, value := range user.Profile {
		payload[key] = value
	}
	payload["success"] = true
	payload["id"] = user.ID
	payload["email"] = user.Email
	payload["password"] = passwordPlaceholder
	return payload
}
