package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"renova/internal/config"
	"renova/internal/middleware"
	"renova/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	cfg         config.SessionConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Login handles POST /api/auth/login
// @Summary Authenticate a back-office user
// @Description Verify credentials and set the HTTP-only session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse "Session established"
// @Failure 400 {object} APIResponse "Missing username or password"
// @Failure 401 {object} APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	session, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token, time.Until(session.ExpiresAt))
	RespondOK(c, session)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -time.Second)
	RespondOK(c, gin.H{"message": "logged out"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}

// Status handles GET /api/auth/status
// Public session introspection: reports whether the caller holds a valid
// session without ever returning 401.
func (h *AuthHandler) Status(c *gin.Context) {
	token, err := c.Cookie(h.cfg.CookieName)
	if err != nil || token == "" {
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if token == "" {
		RespondOK(c, gin.H{"authenticated": false})
		return
	}

	claims, err := h.authService.ValidateToken(token)
	if err != nil {
		RespondOK(c, gin.H{"authenticated": false})
		return
	}

	RespondOK(c, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
			"role":     claims.Role,
		},
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cfg.CookieName,
		token,
		int(ttl.Seconds()),
		"/",
		h.cfg.CookieDomain,
		h.cfg.CookieSecure,
		true, // HTTP-only; the session token is never exposed to scripts
	)
}
