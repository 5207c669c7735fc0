package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"renova/internal/domain"
)

// MockContactService is a mock implementation of service.ContactService.
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
