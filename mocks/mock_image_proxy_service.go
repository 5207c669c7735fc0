package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"renova/internal/service"
)

// MockImageProxyService is a mock implementation of service.ImageProxyService.
type MockImageProxyService struct {
	mock.Mock
}

func (m *MockImageProxyService) Fetch(ctx context.Context, rawURL string) (*service.ProxiedImage, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProxiedImage), args.Error(1)
}

func (m *MockImageProxyService) RewriteURL(hosted string) string {
	args := m.Called(hosted)
	return args.String(0)
}

func (m *MockImageProxyService) UnwrapURL(proxied string) string {
	args := m.Called(proxied)
	return args.String(0)
}
