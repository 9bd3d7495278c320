package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Create(cat *models.Category) error {
	ctx := context.Background()

	cat.Prepare()

	query := `
		INSERT INTO categories (id, shower_type_id, name, slug, z_index, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		cat.ID,
		cat.ShowerTypeID,
		cat.Name,
		cat.Slug,
		cat.ZIndex,
		cat.DisplayOrder,
		now,
	)

	return err
}

func (r *CategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	ctx := context.Background()

	query := `
		SELECT id, shower_type_id, name, slug, z_index, display_order, created_at
		FROM categories WHERE id = $1
	`

	var cat models.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&cat.ID,
		&cat.ShowerTypeID,
		&cat.Name,
		&cat.Slug,
		&cat.ZIndex,
		&cat.DisplayOrder,
		&cat.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &cat, nil
}

func (r *CategoryRepository) ListByShowerType(showerTypeID uuid.UUID) ([]models.Category, error) {
	ctx := context.Background()

	query := `
		SELECT id, shower_type_id, name, slug, z_index, display_order, created_at
		FROM categories WHERE shower_type_id = $1
		ORDER BY display_order, name
	`

	rows, err := r.pool.Query(ctx, query, showerTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var cat models.Category
		err := rows.Scan(
			&cat.ID,
			&cat.ShowerTypeID,
			&cat.Name,
			&cat.Slug,
			&cat.ZIndex,
			&cat.DisplayOrder,
			&cat.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) Update(cat *models.Category) error {
	ctx := context.Background()

	query := `
		UPDATE categories SET
			name = $2, slug = $3, z_index = $4, display_order = $5
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		cat.ID,
		cat.Name,
		cat.Slug,
		cat.ZIndex,
		cat.DisplayOrder,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}

func (r *CategoryRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}

// ExistsSlug reports whether the shower type already has a category with
// this slug. The template instantiation guard relies on it.
func (r *CategoryRepository) ExistsSlug(showerTypeID uuid.UUID, slug string) (bool, error) {
	ctx := context.Background()

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE shower_type_id = $1 AND slug = $2)`,
		showerTypeID, slug,
	).Scan(&exists)
	return exists, err
}
