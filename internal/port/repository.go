package port

import (
	"context"

	"renova/internal/domain"
)

// UserRepository defines the contract for admin account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// PortfolioRepository defines the contract for portfolio item persistence.
type PortfolioRepository interface {
	Create(ctx context.Context, item *domain.PortfolioItem) error
	GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error)
	List(ctx context.Context) ([]domain.PortfolioItem, error)
	Update(ctx context.Context, item *domain.PortfolioItem) error
	Delete(ctx context.Context, id int64) error
}

// PrestationRepository defines the contract for prestation persistence.
type PrestationRepository interface {
	Create(ctx context.Context, p *domain.Prestation) error
	GetByID(ctx context.Context, id int64) (*domain.Prestation, error)
	List(ctx context.Context) ([]domain.Prestation, error)
	Update(ctx context.Context, p *domain.Prestation) error
	Delete(ctx context.Context, id int64) error
}
