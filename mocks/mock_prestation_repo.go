package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"renova/internal/domain"
)

// MockPrestationRepo is a mock implementation of port.PrestationRepository.
type MockPrestationRepo struct {
	mock.Mock
}

func (m *MockPrestationRepo) Create(ctx context.Context, p *domain.Prestation) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPrestationRepo) GetByID(ctx context.Context, id int64) (*domain.Prestation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prestation), args.Error(1)
}

func (m *MockPrestationRepo) List(ctx context.Context) ([]domain.Prestation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prestation), args.Error(1)
}

func (m *MockPrestationRepo) Update(ctx context.Context, p *domain.Prestation) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPrestationRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
