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

type VariantRepository struct {
	pool *pgxpool.Pool
}

func NewVariantRepository(pool *pgxpool.Pool) *VariantRepository {
	return &VariantRepository{pool: pool}
}

func (r *VariantRepository) Create(v *models.ProductVariant) error {
	ctx := context.Background()

	v.Prepare()

	query := `
		INSERT INTO product_variants
			(id, product_id, color_name, image_url, image_url_left, image_url_right,
			 plumbing_config, price_delta_cents, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		v.ID,
		v.ProductID,
		v.ColorName,
		v.ImageURL,
		v.ImageURLLeft,
		v.ImageURLRight,
		v.PlumbingConfig,
		v.PriceDeltaCents,
		v.DisplayOrder,
		now,
	)

	return err
}

func (r *VariantRepository) GetByID(id uuid.UUID) (*models.ProductVariant, error) {
	ctx := context.Background()

	query := `
		SELECT id, product_id, color_name, image_url, image_url_left, image_url_right,
		       plumbing_config, price_delta_cents, display_order, created_at
		FROM product_variants WHERE id = $1
	`

	var v models.ProductVariant
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.ProductID,
		&v.ColorName,
		&v.ImageURL,
		&v.ImageURLLeft,
		&v.ImageURLRight,
		&v.PlumbingConfig,
		&v.PriceDeltaCents,
		&v.DisplayOrder,
		&v.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &v, nil
}

func (r *VariantRepository) ListByProduct(productID uuid.UUID) ([]models.ProductVariant, error) {
	ctx := context.Background()

	query := `
		SELECT id, product_id, color_name, image_url, image_url_left, image_url_right,
		       plumbing_config, price_delta_cents, display_order, created_at
		FROM product_variants WHERE product_id = $1
		ORDER BY display_order, color_name
	`

	return r.scanList(ctx, query, productID)
}

func (r *VariantRepository) ListByShowerType(showerTypeID uuid.UUID) ([]models.ProductVariant, error) {
	ctx := context.Background()

	query := `
		SELECT v.id, v.product_id, v.color_name, v.image_url, v.image_url_left, v.image_url_right,
		       v.plumbing_config, v.price_delta_cents, v.display_order, v.created_at
		FROM product_variants v
		JOIN products p ON p.id = v.product_id
		JOIN subcategories s ON s.id = p.subcategory_id
		JOIN categories c ON c.id = s.category_id
		WHERE c.shower_type_id = $1
		ORDER BY v.display_order, v.color_name
	`

	return r.scanList(ctx, query, showerTypeID)
}

func (r *VariantRepository) scanList(ctx context.Context, query string, arg interface{}) ([]models.ProductVariant, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []models.ProductVariant
	for rows.Next() {
		var v models.ProductVariant
		err := rows.Scan(
			&v.ID,
			&v.ProductID,
			&v.ColorName,
			&v.ImageURL,
			&v.ImageURLLeft,
			&v.ImageURLRight,
			&v.PlumbingConfig,
			&v.PriceDeltaCents,
			&v.DisplayOrder,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}

	return variants, rows.Err()
}

func (r *VariantRepository) Update(v *models.ProductVariant) error {
	ctx := context.Background()

	query := `
		UPDATE product_variants SET
			color_name = $2, image_url = $3, image_url_left = $4, image_url_right = $5,
			plumbing_config = $6, price_delta_cents = $7, display_order = $8
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		v.ID,
		v.ColorName,
		v.ImageURL,
		v.ImageURLLeft,
		v.ImageURLRight,
		v.PlumbingConfig,
		v.PriceDeltaCents,
		v.DisplayOrder,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("variant not found")
	}
	return nil
}

func (r *VariantRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM product_variants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("variant not found")
	}
	return nil
}

// ExistsColorName reports whether the product already has a variant with
// this color. excludeID skips the variant being updated.
func (r *VariantRepository) ExistsColorName(productID uuid.UUID, colorName string, excludeID uuid.UUID) (bool, error) {
	ctx := context.Background()

	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM product_variants
			WHERE product_id = $1 AND color_name = $2 AND id <> $3
		)
	`, productID, colorName, excludeID).Scan(&exists)
	return exists, err
}

// CountDesignReferences returns the number of saved design selections
// pointing at this variant.
func (r *VariantRepository) CountDesignReferences(variantID uuid.UUID) (int64, error) {
	ctx := context.Background()

	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM design_selections WHERE variant_id = $1`,
		variantID,
	).Scan(&count)
	return count, err
}
