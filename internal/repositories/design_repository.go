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

type DesignRepository struct {
	pool *pgxpool.Pool
}

func NewDesignRepository(pool *pgxpool.Pool) *DesignRepository {
	return &DesignRepository{pool: pool}
}

// Create writes the design and its selections in one transaction.
func (r *DesignRepository) Create(d *models.Design) error {
	ctx := context.Background()

	d.Prepare()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	_, err = tx.Exec(ctx, `
		INSERT INTO designs (id, user_id, name, shower_type_id, plumbing_config, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`, d.ID, d.UserID, d.Name, d.ShowerTypeID, d.PlumbingConfig, now)
	if err != nil {
		return fmt.Errorf("failed to save design: %w", err)
	}
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := insertSelections(ctx, tx, d); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *DesignRepository) GetByID(id uuid.UUID) (*models.Design, error) {
	ctx := context.Background()

	query := `
		SELECT id, user_id, name, shower_type_id, plumbing_config, created_at, updated_at
		FROM designs WHERE id = $1
	`

	var d models.Design
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID,
		&d.UserID,
		&d.Name,
		&d.ShowerTypeID,
		&d.PlumbingConfig,
		&d.CreatedAt,
		&d.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	selections, err := r.listSelections(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Selections = selections

	return &d, nil
}

func (r *DesignRepository) List(userID *uuid.UUID) ([]models.Design, error) {
	ctx := context.Background()

	query := `
		SELECT id, user_id, name, shower_type_id, plumbing_config, created_at, updated_at
		FROM designs
	`
	args := []interface{}{}
	if userID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []models.Design
	for rows.Next() {
		var d models.Design
		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.Name,
			&d.ShowerTypeID,
			&d.PlumbingConfig,
			&d.CreatedAt,
			&d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		designs = append(designs, d)
	}

	return designs, rows.Err()
}

// Update replaces the design row and its whole selection set.
func (r *DesignRepository) Update(d *models.Design) error {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	result, err := tx.Exec(ctx, `
		UPDATE designs SET name = $2, plumbing_config = $3, updated_at = $4
		WHERE id = $1
	`, d.ID, d.Name, d.PlumbingConfig, now)
	if err != nil {
		return fmt.Errorf("failed to update design: %w", err)
	}
	if result.RowsAffected() == 0 {
		return errors.New("design not found")
	}
	d.UpdatedAt = now

	if _, err := tx.Exec(ctx, `DELETE FROM design_selections WHERE design_id = $1`, d.ID); err != nil {
		return fmt.Errorf("failed to clear selections: %w", err)
	}

	if err := insertSelections(ctx, tx, d); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *DesignRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM designs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("design not found")
	}
	return nil
}

// GetLayerRows joins the design's selections with the catalog fields that
// drive stacking order, one row per selected product.
func (r *DesignRepository) GetLayerRows(designID uuid.UUID) ([]models.LayerRow, error) {
	ctx := context.Background()

	query := `
		SELECT p.id, p.name, p.z_index, s.z_index, c.z_index, p.display_order,
		       v.id, v.product_id, v.color_name, v.image_url, v.image_url_left, v.image_url_right,
		       v.plumbing_config, v.price_delta_cents, v.display_order, v.created_at
		FROM design_selections sel
		JOIN product_variants v ON v.id = sel.variant_id
		JOIN products p ON p.id = sel.product_id
		JOIN subcategories s ON s.id = p.subcategory_id
		JOIN categories c ON c.id = s.category_id
		WHERE sel.design_id = $1
	`

	rows, err := r.pool.Query(ctx, query, designID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var layerRows []models.LayerRow
	for rows.Next() {
		var lr models.LayerRow
		err := rows.Scan(
			&lr.ProductID,
			&lr.ProductName,
			&lr.ProductZIndex,
			&lr.SubcategoryZIndex,
			&lr.CategoryZIndex,
			&lr.ProductOrder,
			&lr.Variant.ID,
			&lr.Variant.ProductID,
			&lr.Variant.ColorName,
			&lr.Variant.ImageURL,
			&lr.Variant.ImageURLLeft,
			&lr.Variant.ImageURLRight,
			&lr.Variant.PlumbingConfig,
			&lr.Variant.PriceDeltaCents,
			&lr.Variant.DisplayOrder,
			&lr.Variant.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		layerRows = append(layerRows, lr)
	}

	return layerRows, rows.Err()
}

func (r *DesignRepository) listSelections(ctx context.Context, designID uuid.UUID) ([]models.DesignSelection, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, design_id, product_id, variant_id
		FROM design_selections WHERE design_id = $1
	`, designID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var selections []models.DesignSelection
	for rows.Next() {
		var sel models.DesignSelection
		if err := rows.Scan(&sel.ID, &sel.DesignID, &sel.ProductID, &sel.VariantID); err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}

	return selections, rows.Err()
}

func insertSelections(ctx context.Context, tx pgx.Tx, d *models.Design) error {
	for i := range d.Selections {
		sel := &d.Selections[i]
		sel.Prepare()
		sel.DesignID = d.ID

		_, err := tx.Exec(ctx, `
			INSERT INTO design_selections (id, design_id, product_id, variant_id)
			VALUES ($1, $2, $3, $4)
		`, sel.ID, sel.DesignID, sel.ProductID, sel.VariantID)
		if err != nil {
			return fmt.Errorf("failed to save selection: %w", err)
		}
	}
	return nil
}
