package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"renova/internal/config"
	"renova/internal/domain"
	"renova/internal/service"
	"renova/mocks"
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:      "test-secret-key-for-unit-tests",
		TokenExpiry: 24 * time.Hour,
		Issuer:      "renova-test",
		CookieName:  "renova_session",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testSessionConfig())

	user := &domain.User{
		ID:           1,
		Username:     "admin",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleAdmin,
	}
	userRepo.On("GetByUsername", mock.Anything, "admin").Return(user, nil)

	session, err := svc.Login(context.Background(), service.LoginInput{
		Username: "admin",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))
	assert.Equal(t, user, session.User)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testSessionConfig())

	user := &domain.User{
		ID:           1,
		Username:     "admin",
		PasswordHash: hashPassword("correct-password"),
		Role:         domain.RoleAdmin,
	}
	userRepo.On("GetByUsername", mock.Anything, "admin").Return(user, nil)

	session, err := svc.Login(context.Background(), service.LoginInput{
		Username: "admin",
		Password: "wrong-password",
	})

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testSessionConfig())

	userRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, domain.ErrNotFound)

	session, err := svc.Login(context.Background(), service.LoginInput{
		Username: "nobody",
		Password: "password123",
	})

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testSessionConfig())

	user := &domain.User{
		ID:           7,
		Username:     "editor",
		PasswordHash: hashPassword("pw"),
		Role:         domain.RoleEditor,
	}
	userRepo.On("GetByUsername", mock.Anything, "editor").Return(user, nil)

	session, err := svc.Login(context.Background(), service.LoginInput{Username: "editor", Password: "pw"})
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(session.Token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "editor", claims.Username)
	assert.Equal(t, domain.RoleEditor, claims.Role)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	user := &domain.User{ID: 1, Username: "admin", PasswordHash: hashPassword("pw"), Role: domain.RoleAdmin}
	userRepo.On("GetByUsername", mock.Anything, "admin").Return(user, nil)

	signer := service.NewAuthService(userRepo, testSessionConfig())
	session, err := signer.Login(context.Background(), service.LoginInput{Username: "admin", Password: "pw"})
	assert.NoError(t, err)

	otherCfg := testSessionConfig()
	otherCfg.Secret = "a-completely-different-secret"
	verifier := service.NewAuthService(userRepo, otherCfg)

	claims, err := verifier.ValidateToken(session.Token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), testSessionConfig())

	claims, err := svc.ValidateToken("not-a-token")

	assert.Error(t, err)
	assert.Nil(t, claims)
}
