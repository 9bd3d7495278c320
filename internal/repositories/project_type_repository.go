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

type ProjectTypeRepository struct {
	pool *pgxpool.Pool
}

func NewProjectTypeRepository(pool *pgxpool.Pool) *ProjectTypeRepository {
	return &ProjectTypeRepository{pool: pool}
}

func (r *ProjectTypeRepository) Create(pt *models.ProjectType) error {
	ctx := context.Background()

	pt.Prepare()

	query := `
		INSERT INTO project_types (id, name, slug, created_at)
		VALUES ($1, $2, $3, $4)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query, pt.ID, pt.Name, pt.Slug, now)
	return err
}

func (r *ProjectTypeRepository) GetByID(id uuid.UUID) (*models.ProjectType, error) {
	ctx := context.Background()

	query := `SELECT id, name, slug, created_at FROM project_types WHERE id = $1`

	var pt models.ProjectType
	err := r.pool.QueryRow(ctx, query, id).Scan(&pt.ID, &pt.Name, &pt.Slug, &pt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &pt, nil
}

func (r *ProjectTypeRepository) List() ([]models.ProjectType, error) {
	ctx := context.Background()

	query := `SELECT id, name, slug, created_at FROM project_types ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projectTypes []models.ProjectType
	for rows.Next() {
		var pt models.ProjectType
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.Slug, &pt.CreatedAt); err != nil {
			return nil, err
		}
		projectTypes = append(projectTypes, pt)
	}

	return projectTypes, rows.Err()
}

func (r *ProjectTypeRepository) Update(pt *models.ProjectType) error {
	ctx := context.Background()

	query := `UPDATE project_types SET name = $2, slug = $3 WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, pt.ID, pt.Name, pt.Slug)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("project type not found")
	}
	return nil
}

func (r *ProjectTypeRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM project_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("project type not found")
	}
	return nil
}
