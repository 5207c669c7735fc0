package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"renova/internal/domain"
	"renova/internal/middleware"
	"renova/internal/service"
	"renova/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const cookieName = "renova_session"

func newAuthedRouter(authSvc service.AuthService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(authSvc, cookieName), func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	r.GET("/admin-only",
		middleware.AuthMiddleware(authSvc, cookieName),
		middleware.RequireRole(domain.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func validClaims(role domain.UserRole) *service.Claims {
	return &service.Claims{UserID: 7, Username: "someone", Role: role}
}

func TestAuthMiddleware_SessionCookie(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "good-token").Return(validClaims(domain.RoleEditor), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "good-token"})

	newAuthedRouter(authSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "good-token").Return(validClaims(domain.RoleEditor), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	newAuthedRouter(authSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)

	newAuthedRouter(authSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	authSvc.AssertNotCalled(t, "ValidateToken")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "bad-token").Return(nil, domain.ErrUnauthorized)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "bad-token"})

	newAuthedRouter(authSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Allows(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "admin-token").Return(validClaims(domain.RoleAdmin), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "admin-token"})

	newAuthedRouter(authSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_Rejects(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "editor-token").Return(validClaims(domain.RoleEditor), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "editor-token"})

	newAuthedRouter(authSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
