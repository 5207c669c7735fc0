package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockImageUploader is a mock implementation of port.ImageUploader.
type MockImageUploader struct {
	mock.Mock
}

func (m *MockImageUploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	args := m.Called(ctx, filename, data)
	return args.String(0), args.Error(1)
}
