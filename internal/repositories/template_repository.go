package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
)

// TemplateRepository manages the prototype tree (template categories,
// subcategories, products, variants) and the transactional copy of a
// prepared instance tree into the concrete catalog tables.
type TemplateRepository struct {
	pool *pgxpool.Pool
}

func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

// --- template categories ---

func (r *TemplateRepository) CreateCategory(tc *models.TemplateCategory) error {
	ctx := context.Background()

	tc.Prepare()

	query := `
		INSERT INTO template_categories (id, name, slug, z_index, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query, tc.ID, tc.Name, tc.Slug, tc.ZIndex, tc.DisplayOrder, time.Now())
	return err
}

func (r *TemplateRepository) ListCategories() ([]models.TemplateCategory, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, slug, z_index, display_order, created_at
		FROM template_categories ORDER BY display_order, name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.TemplateCategory
	for rows.Next() {
		var tc models.TemplateCategory
		if err := rows.Scan(&tc.ID, &tc.Name, &tc.Slug, &tc.ZIndex, &tc.DisplayOrder, &tc.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, tc)
	}

	return categories, rows.Err()
}

func (r *TemplateRepository) UpdateCategory(tc *models.TemplateCategory) error {
	ctx := context.Background()

	query := `
		UPDATE template_categories SET name = $2, slug = $3, z_index = $4, display_order = $5
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, tc.ID, tc.Name, tc.Slug, tc.ZIndex, tc.DisplayOrder)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("template category not found")
	}
	return nil
}

func (r *TemplateRepository) DeleteCategory(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM template_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("template category not found")
	}
	return nil
}

// --- template subcategories ---

func (r *TemplateRepository) CreateSubcategory(ts *models.TemplateSubcategory) error {
	ctx := context.Background()

	ts.Prepare()

	query := `
		INSERT INTO template_subcategories (id, template_category_id, name, slug, z_index, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		ts.ID, ts.TemplateCategoryID, ts.Name, ts.Slug, ts.ZIndex, ts.DisplayOrder, time.Now())
	return err
}

func (r *TemplateRepository) ListSubcategories(templateCategoryID uuid.UUID) ([]models.TemplateSubcategory, error) {
	ctx := context.Background()

	query := `
		SELECT id, template_category_id, name, slug, z_index, display_order, created_at
		FROM template_subcategories WHERE template_category_id = $1
		ORDER BY display_order, name
	`

	rows, err := r.pool.Query(ctx, query, templateCategoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTemplateSubcategories(rows)
}

func (r *TemplateRepository) UpdateSubcategory(ts *models.TemplateSubcategory) error {
	ctx := context.Background()

	query := `
		UPDATE template_subcategories SET name = $2, slug = $3, z_index = $4, display_order = $5
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, ts.ID, ts.Name, ts.Slug, ts.ZIndex, ts.DisplayOrder)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("template subcategory not found")
	}
	return nil
}

func (r *TemplateRepository) DeleteSubcategory(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM template_subcategories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("template subcategory not found")
	}
	return nil
}

// --- template products ---

func (r *TemplateRepository) CreateProduct(tp *models.TemplateProduct) error {
	ctx := context.Background()

	tp.Prepare()

	query := `
		INSERT INTO template_products (id, template_subcategory_id, name, slug, image_url, z_index, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		tp.ID, tp.TemplateSubcategoryID, tp.Name, tp.Slug, tp.ImageURL, tp.ZIndex, tp.DisplayOrder, time.Now())
	return err
}

func (r *TemplateRepository) ListProducts(templateSubcategoryID uuid.UUID) ([]models.TemplateProduct, error) {
	ctx := context.Background()

	query := `
		SELECT id, template_subcategory_id, name, slug, image_url, z_index, display_order, created_at
		FROM template_products WHERE template_subcategory_id = $1
		ORDER BY display_order, name
	`

	rows, err := r.pool.Query(ctx, query, templateSubcategoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTemplateProducts(rows)
}

func (r *TemplateRepository) UpdateProduct(tp *models.TemplateProduct) error {
	ctx := context.Background()

	query := `
		UPDATE template_products SET name = $2, slug = $3, image_url = $4, z_index = $5, display_order = $6
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, tp.ID, tp.Name, tp.Slug, tp.ImageURL, tp.ZIndex, tp.DisplayOrder)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("template product not found")
	}
	return nil
}

func (r *TemplateRepository) DeleteProduct(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM template_products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("template product not found")
	}
	return nil
}

// --- template variants ---

func (r *TemplateRepository) CreateVariant(tv *models.TemplateVariant) error {
	ctx := context.Background()

	tv.Prepare()

	query := `
		INSERT INTO template_variants
			(id, template_product_id, color_name, image_url, image_url_left, image_url_right,
			 plumbing_config, price_delta_cents, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		tv.ID, tv.TemplateProductID, tv.ColorName, tv.ImageURL, tv.ImageURLLeft, tv.ImageURLRight,
		tv.PlumbingConfig, tv.PriceDeltaCents, tv.DisplayOrder, time.Now())
	return err
}

func (r *TemplateRepository) ListVariants(templateProductID uuid.UUID) ([]models.TemplateVariant, error) {
	ctx := context.Background()

	query := `
		SELECT id, template_product_id, color_name, image_url, image_url_left, image_url_right,
		       plumbing_config, price_delta_cents, display_order, created_at
		FROM template_variants WHERE template_product_id = $1
		ORDER BY display_order, color_name
	`

	rows, err := r.pool.Query(ctx, query, templateProductID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTemplateVariants(rows)
}

func (r *TemplateRepository) UpdateVariant(tv *models.TemplateVariant) error {
	ctx := context.Background()

	query := `
		UPDATE template_variants SET
			color_name = $2, image_url = $3, image_url_left = $4, image_url_right = $5,
			plumbing_config = $6, price_delta_cents = $7, display_order = $8
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		tv.ID, tv.ColorName, tv.ImageURL, tv.ImageURLLeft, tv.ImageURLRight,
		tv.PlumbingConfig, tv.PriceDeltaCents, tv.DisplayOrder)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("template variant not found")
	}
	return nil
}

func (r *TemplateRepository) DeleteVariant(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM template_variants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("template variant not found")
	}
	return nil
}

// --- tree loading & instantiation ---

// GetTree loads the whole prototype tree grouped by parent ID.
func (r *TemplateRepository) GetTree() (*models.TemplateTree, error) {
	ctx := context.Background()

	tree := &models.TemplateTree{
		Subcategories: make(map[uuid.UUID][]models.TemplateSubcategory),
		Products:      make(map[uuid.UUID][]models.TemplateProduct),
		Variants:      make(map[uuid.UUID][]models.TemplateVariant),
	}

	categories, err := r.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load template categories: %w", err)
	}
	tree.Categories = categories

	subRows, err := r.pool.Query(ctx, `
		SELECT id, template_category_id, name, slug, z_index, display_order, created_at
		FROM template_subcategories ORDER BY display_order, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load template subcategories: %w", err)
	}
	subcategories, err := scanTemplateSubcategories(subRows)
	if err != nil {
		return nil, err
	}
	for _, sub := range subcategories {
		tree.Subcategories[sub.TemplateCategoryID] = append(tree.Subcategories[sub.TemplateCategoryID], sub)
	}

	prodRows, err := r.pool.Query(ctx, `
		SELECT id, template_subcategory_id, name, slug, image_url, z_index, display_order, created_at
		FROM template_products ORDER BY display_order, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load template products: %w", err)
	}
	products, err := scanTemplateProducts(prodRows)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		tree.Products[p.TemplateSubcategoryID] = append(tree.Products[p.TemplateSubcategoryID], p)
	}

	varRows, err := r.pool.Query(ctx, `
		SELECT id, template_product_id, color_name, image_url, image_url_left, image_url_right,
		       plumbing_config, price_delta_cents, display_order, created_at
		FROM template_variants ORDER BY display_order, color_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load template variants: %w", err)
	}
	variants, err := scanTemplateVariants(varRows)
	if err != nil {
		return nil, err
	}
	for _, v := range variants {
		tree.Variants[v.TemplateProductID] = append(tree.Variants[v.TemplateProductID], v)
	}

	return tree, nil
}

// InsertInstance writes one shower type's copied tree in a single
// transaction, so a failed copy never leaves a partial catalog behind.
func (r *TemplateRepository) InsertInstance(
	categories []models.Category,
	subcategories []models.Subcategory,
	products []models.Product,
	variants []models.ProductVariant,
) error {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	for _, c := range categories {
		_, err := tx.Exec(ctx, `
			INSERT INTO categories (id, shower_type_id, name, slug, z_index, display_order, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, c.ID, c.ShowerTypeID, c.Name, c.Slug, c.ZIndex, c.DisplayOrder, now)
		if err != nil {
			return fmt.Errorf("failed to copy category %q: %w", c.Slug, err)
		}
	}

	for _, s := range subcategories {
		_, err := tx.Exec(ctx, `
			INSERT INTO subcategories (id, category_id, name, slug, z_index, display_order, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, s.ID, s.CategoryID, s.Name, s.Slug, s.ZIndex, s.DisplayOrder, now)
		if err != nil {
			return fmt.Errorf("failed to copy subcategory %q: %w", s.Slug, err)
		}
	}

	for _, p := range products {
		_, err := tx.Exec(ctx, `
			INSERT INTO products (id, subcategory_id, name, slug, image_url, z_index, display_order, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, p.ID, p.SubcategoryID, p.Name, p.Slug, p.ImageURL, p.ZIndex, p.DisplayOrder, now)
		if err != nil {
			return fmt.Errorf("failed to copy product %q: %w", p.Slug, err)
		}
	}

	for _, v := range variants {
		_, err := tx.Exec(ctx, `
			INSERT INTO product_variants
				(id, product_id, color_name, image_url, image_url_left, image_url_right,
				 plumbing_config, price_delta_cents, display_order, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, v.ID, v.ProductID, v.ColorName, v.ImageURL, v.ImageURLLeft, v.ImageURLRight,
			v.PlumbingConfig, v.PriceDeltaCents, v.DisplayOrder, now)
		if err != nil {
			return fmt.Errorf("failed to copy variant %q: %w", v.ColorName, err)
		}
	}

	return tx.Commit(ctx)
}

// --- row scanners shared by list and tree loads ---

func scanTemplateSubcategories(rows pgx.Rows) ([]models.TemplateSubcategory, error) {
	defer rows.Close()

	var subcategories []models.TemplateSubcategory
	for rows.Next() {
		var ts models.TemplateSubcategory
		err := rows.Scan(&ts.ID, &ts.TemplateCategoryID, &ts.Name, &ts.Slug, &ts.ZIndex, &ts.DisplayOrder, &ts.CreatedAt)
		if err != nil {
			return nil, err
		}
		subcategories = append(subcategories, ts)
	}
	return subcategories, rows.Err()
}

func scanTemplateProducts(rows pgx.Rows) ([]models.TemplateProduct, error) {
	defer rows.Close()

	var products []models.TemplateProduct
	for rows.Next() {
		var tp models.TemplateProduct
		err := rows.Scan(&tp.ID, &tp.TemplateSubcategoryID, &tp.Name, &tp.Slug, &tp.ImageURL, &tp.ZIndex, &tp.DisplayOrder, &tp.CreatedAt)
		if err != nil {
			return nil, err
		}
		products = append(products, tp)
	}
	return products, rows.Err()
}

func scanTemplateVariants(rows pgx.Rows) ([]models.TemplateVariant, error) {
	defer rows.Close()

	var variants []models.TemplateVariant
	for rows.Next() {
		var tv models.TemplateVariant
		err := rows.Scan(&tv.ID, &tv.TemplateProductID, &tv.ColorName, &tv.ImageURL, &tv.ImageURLLeft, &tv.ImageURLRight,
			&tv.PlumbingConfig, &tv.PriceDeltaCents, &tv.DisplayOrder, &tv.CreatedAt)
		if err != nil {
			return nil, err
		}
		variants = append(variants, tv)
	}
	return variants, rows.Err()
}
