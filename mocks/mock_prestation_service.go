package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"renova/internal/domain"
	"renova/internal/service"
)

// MockPrestationService is a mock implementation of service.PrestationService.
type MockPrestationService struct {
	mock.Mock
}

func (m *MockPrestationService) List(ctx context.Context) ([]domain.Prestation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prestation), args.Error(1)
}

func (m *MockPrestationService) GetByID(ctx context.Context, id int64) (*domain.Prestation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prestation), args.Error(1)
}

func (m *MockPrestationService) Create(ctx context.Context, input service.CreatePrestationInput) (*domain.Prestation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prestation), args.Error(1)
}

func (m *MockPrestationService) Update(ctx context.Context, id int64, input service.UpdatePrestationInput) (*domain.Prestation, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prestation), args.Error(1)
}

func (m *MockPrestationService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPrestationService) RemoveGalleryImage(ctx context.Context, id int64, imageURL string) (*domain.Prestation, error) {
	args := m.Called(ctx, id, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prestation), args.Error(1)
}
