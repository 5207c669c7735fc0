package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"renova/internal/domain"
	"renova/internal/port"
)

type portfolioRepo struct {
	db *sqlx.DB
}

// NewPortfolioRepo creates a new PostgreSQL-backed PortfolioRepository.
func NewPortfolioRepo(db *sqlx.DB) port.PortfolioRepository {
	return &portfolioRepo{db: db}
}

func (r *portfolioRepo) Create(ctx context.Context, item *domain.PortfolioItem) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO portfolio_items (title, description, main_image, other_image, alt_text, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		item.Title, item.Description, item.MainImage, item.OtherImage, item.AltText,
		item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("portfolioRepo.Create: %w", err)
	}
	return nil
}

func (r *portfolioRepo) GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	var item domain.PortfolioItem
	err := r.db.GetContext(ctx, &item, "SELECT * FROM portfolio_items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("portfolioRepo.GetByID: %w", err)
	}
	return &item, nil
}

func (r *portfolioRepo) List(ctx context.Context) ([]domain.PortfolioItem, error) {
	var items []domain.PortfolioItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM portfolio_items ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("portfolioRepo.List: %w", err)
	}
	return items, nil
}

func (r *portfolioRepo) Update(ctx context.Context, item *domain.PortfolioItem) error {
	item.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE portfolio_items
		 SET title = $1, description = $2, main_image = $3, other_image = $4, alt_text = $5, updated_at = $6
		 WHERE id = $7`,
		item.Title, item.Description, item.MainImage, item.OtherImage, item.AltText,
		item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("portfolioRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *portfolioRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM portfolio_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("portfolioRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
