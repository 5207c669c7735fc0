package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"renova/internal/domain"
	"renova/internal/service"
)

// MockPortfolioService is a mock implementation of service.PortfolioService.
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) List(ctx context.Context) ([]domain.PortfolioItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Create(ctx context.Context, input service.CreatePortfolioInput) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Update(ctx context.Context, id int64, input service.UpdatePortfolioInput) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPortfolioService) RemoveGalleryImage(ctx context.Context, id int64, imageURL string) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, id, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioItem), args.Error(1)
}
