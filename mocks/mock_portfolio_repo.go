package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"renova/internal/domain"
)

// MockPortfolioRepo is a mock implementation of port.PortfolioRepository.
type MockPortfolioRepo struct {
	mock.Mock
}

func (m *MockPortfolioRepo) Create(ctx context.Context, item *domain.PortfolioItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPortfolioRepo) GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepo) List(ctx context.Context) ([]domain.PortfolioItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepo) Update(ctx context.Context, item *domain.PortfolioItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPortfolioRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
