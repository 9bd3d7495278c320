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

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(p *models.Product) error {
	ctx := context.Background()

	p.Prepare()

	query := `
		INSERT INTO products (id, subcategory_id, name, slug, image_url, z_index, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.SubcategoryID,
		p.Name,
		p.Slug,
		p.ImageURL,
		p.ZIndex,
		p.DisplayOrder,
		now,
	)

	return err
}

func (r *ProductRepository) GetByID(id uuid.UUID) (*models.Product, error) {
	ctx := context.Background()

	query := `
		SELECT id, subcategory_id, name, slug, image_url, z_index, display_order, created_at
		FROM products WHERE id = $1
	`

	var p models.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.SubcategoryID,
		&p.Name,
		&p.Slug,
		&p.ImageURL,
		&p.ZIndex,
		&p.DisplayOrder,
		&p.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

func (r *ProductRepository) ListBySubcategory(subcategoryID uuid.UUID) ([]models.Product, error) {
	ctx := context.Background()

	query := `
		SELECT id, subcategory_id, name, slug, image_url, z_index, display_order, created_at
		FROM products WHERE subcategory_id = $1
		ORDER BY display_order, name
	`

	return r.scanList(ctx, query, subcategoryID)
}

func (r *ProductRepository) ListByShowerType(showerTypeID uuid.UUID) ([]models.Product, error) {
	ctx := context.Background()

	query := `
		SELECT p.id, p.subcategory_id, p.name, p.slug, p.image_url, p.z_index, p.display_order, p.created_at
		FROM products p
		JOIN subcategories s ON s.id = p.subcategory_id
		JOIN categories c ON c.id = s.category_id
		WHERE c.shower_type_id = $1
		ORDER BY p.display_order, p.name
	`

	return r.scanList(ctx, query, showerTypeID)
}

func (r *ProductRepository) scanList(ctx context.Context, query string, arg interface{}) ([]models.Product, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ID,
			&p.SubcategoryID,
			&p.Name,
			&p.Slug,
			&p.ImageURL,
			&p.ZIndex,
			&p.DisplayOrder,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *ProductRepository) Update(p *models.Product) error {
	ctx := context.Background()

	query := `
		UPDATE products SET
			name = $2, slug = $3, image_url = $4, z_index = $5, display_order = $6
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Slug,
		p.ImageURL,
		p.ZIndex,
		p.DisplayOrder,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}

func (r *ProductRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}

// ShowerTypeID resolves the shower type owning this product, used to
// invalidate the right catalog cache entry after writes.
func (r *ProductRepository) ShowerTypeID(productID uuid.UUID) (uuid.UUID, error) {
	ctx := context.Background()

	var showerTypeID uuid.UUID
	err := r.pool.QueryRow(ctx, `
		SELECT c.shower_type_id
		FROM products p
		JOIN subcategories s ON s.id = p.subcategory_id
		JOIN categories c ON c.id = s.category_id
		WHERE p.id = $1
	`, productID).Scan(&showerTypeID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}

	return showerTypeID, nil
}
