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

type ShowerTypeRepository struct {
	pool *pgxpool.Pool
}

func NewShowerTypeRepository(pool *pgxpool.Pool) *ShowerTypeRepository {
	return &ShowerTypeRepository{pool: pool}
}

func (r *ShowerTypeRepository) Create(st *models.ShowerType) error {
	ctx := context.Background()

	st.Prepare()

	query := `
		INSERT INTO shower_types (id, project_type_id, name, slug, base_image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		st.ID,
		st.ProjectTypeID,
		st.Name,
		st.Slug,
		st.BaseImageURL,
		now,
	)

	return err
}

func (r *ShowerTypeRepository) GetByID(id uuid.UUID) (*models.ShowerType, error) {
	ctx := context.Background()

	query := `
		SELECT id, project_type_id, name, slug, base_image_url, created_at
		FROM shower_types WHERE id = $1
	`

	var st models.ShowerType
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&st.ID,
		&st.ProjectTypeID,
		&st.Name,
		&st.Slug,
		&st.BaseImageURL,
		&st.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &st, nil
}

// List returns all shower types, optionally filtered by project type.
func (r *ShowerTypeRepository) List(projectTypeID *uuid.UUID) ([]models.ShowerType, error) {
	ctx := context.Background()

	query := `
		SELECT id, project_type_id, name, slug, base_image_url, created_at
		FROM shower_types
	`
	args := []interface{}{}
	if projectTypeID != nil {
		query += ` WHERE project_type_id = $1`
		args = append(args, *projectTypeID)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var showerTypes []models.ShowerType
	for rows.Next() {
		var st models.ShowerType
		err := rows.Scan(
			&st.ID,
			&st.ProjectTypeID,
			&st.Name,
			&st.Slug,
			&st.BaseImageURL,
			&st.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		showerTypes = append(showerTypes, st)
	}

	return showerTypes, rows.Err()
}

func (r *ShowerTypeRepository) Update(st *models.ShowerType) error {
	ctx := context.Background()

	query := `
		UPDATE shower_types SET
			project_type_id = $2, name = $3, slug = $4, base_image_url = $5
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		st.ID,
		st.ProjectTypeID,
		st.Name,
		st.Slug,
		st.BaseImageURL,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("shower type not found")
	}
	return nil
}

func (r *ShowerTypeRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM shower_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("shower type not found")
	}
	return nil
}

func (r *ShowerTypeRepository) CountByProjectType(projectTypeID uuid.UUID) (int64, error) {
	ctx := context.Background()

	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM shower_types WHERE project_type_id = $1`,
		projectTypeID,
	).Scan(&count)
	return count, err
}
