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

type SubcategoryRepository struct {
	pool *pgxpool.Pool
}

func NewSubcategoryRepository(pool *pgxpool.Pool) *SubcategoryRepository {
	return &SubcategoryRepository{pool: pool}
}

func (r *SubcategoryRepository) Create(sub *models.Subcategory) error {
	ctx := context.Background()

	sub.Prepare()

	query := `
		INSERT INTO subcategories (id, category_id, name, slug, z_index, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		sub.ID,
		sub.CategoryID,
		sub.Name,
		sub.Slug,
		sub.ZIndex,
		sub.DisplayOrder,
		now,
	)

	return err
}

func (r *SubcategoryRepository) GetByID(id uuid.UUID) (*models.Subcategory, error) {
	ctx := context.Background()

	query := `
		SELECT id, category_id, name, slug, z_index, display_order, created_at
		FROM subcategories WHERE id = $1
	`

	var sub models.Subcategory
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&sub.ID,
		&sub.CategoryID,
		&sub.Name,
		&sub.Slug,
		&sub.ZIndex,
		&sub.DisplayOrder,
		&sub.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (r *SubcategoryRepository) ListByCategory(categoryID uuid.UUID) ([]models.Subcategory, error) {
	ctx := context.Background()

	query := `
		SELECT id, category_id, name, slug, z_index, display_order, created_at
		FROM subcategories WHERE category_id = $1
		ORDER BY display_order, name
	`

	return r.scanList(ctx, query, categoryID)
}

// ListByShowerType returns every subcategory under the shower type's
// categories, for catalog tree resolution.
func (r *SubcategoryRepository) ListByShowerType(showerTypeID uuid.UUID) ([]models.Subcategory, error) {
	ctx := context.Background()

	query := `
		SELECT s.id, s.category_id, s.name, s.slug, s.z_index, s.display_order, s.created_at
		FROM subcategories s
		JOIN categories c ON c.id = s.category_id
		WHERE c.shower_type_id = $1
		ORDER BY s.display_order, s.name
	`

	return r.scanList(ctx, query, showerTypeID)
}

func (r *SubcategoryRepository) scanList(ctx context.Context, query string, arg interface{}) ([]models.Subcategory, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subcategories []models.Subcategory
	for rows.Next() {
		var sub models.Subcategory
		err := rows.Scan(
			&sub.ID,
			&sub.CategoryID,
			&sub.Name,
			&sub.Slug,
			&sub.ZIndex,
			&sub.DisplayOrder,
			&sub.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		subcategories = append(subcategories, sub)
	}

	return subcategories, rows.Err()
}

func (r *SubcategoryRepository) Update(sub *models.Subcategory) error {
	ctx := context.Background()

	query := `
		UPDATE subcategories SET
			name = $2, slug = $3, z_index = $4, display_order = $5
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		sub.ID,
		sub.Name,
		sub.Slug,
		sub.ZIndex,
		sub.DisplayOrder,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("subcategory not found")
	}
	return nil
}

func (r *SubcategoryRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("subcategory not found")
	}
	return nil
}

// ShowerTypeID resolves the shower type owning this subcategory, used to
// invalidate the right catalog cache entry after writes.
func (r *SubcategoryRepository) ShowerTypeID(subcategoryID uuid.UUID) (uuid.UUID, error) {
	ctx := context.Background()

	var showerTypeID uuid.UUID
	err := r.pool.QueryRow(ctx, `
		SELECT c.shower_type_id
		FROM subcategories s
		JOIN categories c ON c.id = s.category_id
		WHERE s.id = $1
	`, subcategoryID).Scan(&showerTypeID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}

	return showerTypeID, nil
}
