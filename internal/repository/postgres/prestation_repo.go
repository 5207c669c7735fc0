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

type prestationRepo struct {
	db *sqlx.DB
}

// NewPrestationRepo creates a new PostgreSQL-backed PrestationRepository.
func NewPrestationRepo(db *sqlx.DB) port.PrestationRepository {
	return &prestationRepo{db: db}
}

func (r *prestationRepo) Create(ctx context.Context, p *domain.Prestation) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO prestations (name, description, banner_image, other_image, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		p.Name, p.Description, p.BannerImage, p.OtherImage, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("prestationRepo.Create: %w", err)
	}
	return nil
}

func (r *prestationRepo) GetByID(ctx context.Context, id int64) (*domain.Prestation, error) {
	var p domain.Prestation
	err := r.db.GetContext(ctx, &p, "SELECT * FROM prestations WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("prestationRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *prestationRepo) List(ctx context.Context) ([]domain.Prestation, error) {
	var prestations []domain.Prestation
	err := r.db.SelectContext(ctx, &prestations,
		"SELECT * FROM prestations ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("prestationRepo.List: %w", err)
	}
	return prestations, nil
}

func (r *prestationRepo) Update(ctx context.Context, p *domain.Prestation) error {
	p.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE prestations
		 SET name = $1, description = $2, banner_image = $3, other_image = $4, updated_at = $5
		 WHERE id = $6`,
		p.Name, p.Description, p.BannerImage, p.OtherImage, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("prestationRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *prestationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM prestations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("prestationRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
