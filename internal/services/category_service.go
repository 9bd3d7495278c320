package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
	"github.com/itsfarrukhali/bathfitter-backend/internal/utils"
)

// CategoryService manages categories and subcategories within a shower
// type's catalog.
type CategoryService struct {
	categoryRepo    CategoryStore
	subcategoryRepo SubcategoryStore
	showerTypeRepo  ShowerTypeStore
	cache           CatalogCache
}

func NewCategoryService(
	categoryRepo CategoryStore,
	subcategoryRepo SubcategoryStore,
	showerTypeRepo ShowerTypeStore,
	cache CatalogCache,
) *CategoryService {
	return &CategoryService{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		showerTypeRepo:  showerTypeRepo,
		cache:           cache,
	}
}

// --- categories ---

type CategoryRequest struct {
	ShowerTypeID uuid.UUID `json:"shower_type_id" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Slug         string    `json:"slug"`
	ZIndex       int       `json:"z_index"`
	DisplayOrder int       `json:"display_order"`
}

func (s *CategoryService) CreateCategory(ctx context.Context, req CategoryRequest) (*models.Category, error) {
	st, err := s.showerTypeRepo.GetByID(req.ShowerTypeID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: shower type", ErrNotFound)
	}

	cat := &models.Category{
		ShowerTypeID: req.ShowerTypeID,
		Name:         req.Name,
		Slug:         req.Slug,
		ZIndex:       req.ZIndex,
		DisplayOrder: req.DisplayOrder,
	}
	if cat.Slug == "" {
		cat.Slug = utils.Slugify(cat.Name)
	}

	exists, err := s.categoryRepo.ExistsSlug(cat.ShowerTypeID, cat.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: category slug %q already exists for this shower type", ErrConflict, cat.Slug)
	}

	if err := s.categoryRepo.Create(cat); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	s.invalidate(ctx, cat.ShowerTypeID)
	return cat, nil
}

func (s *CategoryService) GetCategory(id uuid.UUID) (*models.Category, error) {
	cat, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: category", ErrNotFound)
	}
	return cat, nil
}

func (s *CategoryService) ListCategories(showerTypeID uuid.UUID) ([]models.Category, error) {
	return s.categoryRepo.ListByShowerType(showerTypeID)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req CategoryRequest) (*models.Category, error) {
	cat, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	cat.Name = req.Name
	cat.Slug = req.Slug
	cat.ZIndex = req.ZIndex
	cat.DisplayOrder = req.DisplayOrder
	if cat.Slug == "" {
		cat.Slug = utils.Slugify(cat.Name)
	}

	if err := s.categoryRepo.Update(cat); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.invalidate(ctx, cat.ShowerTypeID)
	return cat, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	cat, err := s.GetCategory(id)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate(ctx, cat.ShowerTypeID)
	return nil
}

// --- subcategories ---

type SubcategoryRequest struct {
	CategoryID   uuid.UUID `json:"category_id" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Slug         string    `json:"slug"`
	ZIndex       *int      `json:"z_index"`
	DisplayOrder int       `json:"display_order"`
}

func (s *CategoryService) CreateSubcategory(ctx context.Context, req SubcategoryRequest) (*models.Subcategory, error) {
	cat, err := s.GetCategory(req.CategoryID)
	if err != nil {
		return nil, err
	}

	sub := &models.Subcategory{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Slug:         req.Slug,
		ZIndex:       req.ZIndex,
		DisplayOrder: req.DisplayOrder,
	}
	if sub.Slug == "" {
		sub.Slug = utils.Slugify(sub.Name)
	}

	if err := s.subcategoryRepo.Create(sub); err != nil {
		return nil, fmt.Errorf("failed to save subcategory: %w", err)
	}

	s.invalidate(ctx, cat.ShowerTypeID)
	return sub, nil
}

func (s *CategoryService) GetSubcategory(id uuid.UUID) (*models.Subcategory, error) {
	sub, err := s.subcategoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: subcategory", ErrNotFound)
	}
	return sub, nil
}

func (s *CategoryService) ListSubcategories(categoryID uuid.UUID) ([]models.Subcategory, error) {
	return s.subcategoryRepo.ListByCategory(categoryID)
}

func (s *CategoryService) UpdateSubcategory(ctx context.Context, id uuid.UUID, req SubcategoryRequest) (*models.Subcategory, error) {
	sub, err := s.GetSubcategory(id)
	if err != nil {
		return nil, err
	}

	sub.Name = req.Name
	sub.Slug = req.Slug
	sub.ZIndex = req.ZIndex
	sub.DisplayOrder = req.DisplayOrder
	if sub.Slug == "" {
		sub.Slug = utils.Slugify(sub.Name)
	}

	if err := s.subcategoryRepo.Update(sub); err != nil {
		return nil, fmt.Errorf("failed to update subcategory: %w", err)
	}

	s.invalidateForSubcategory(ctx, id)
	return sub, nil
}

func (s *CategoryService) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	// Resolve the owning shower type before the row disappears.
	showerTypeID, err := s.subcategoryRepo.ShowerTypeID(id)
	if err != nil {
		return err
	}
	if showerTypeID == uuid.Nil {
		return fmt.Errorf("%w: subcategory", ErrNotFound)
	}

	if err := s.subcategoryRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate(ctx, showerTypeID)
	return nil
}

func (s *CategoryService) invalidateForSubcategory(ctx context.Context, subcategoryID uuid.UUID) {
	showerTypeID, err := s.subcategoryRepo.ShowerTypeID(subcategoryID)
	if err != nil {
		log.Printf("Warning: failed to resolve shower type for subcategory %s: %v", subcategoryID, err)
		return
	}
	s.invalidate(ctx, showerTypeID)
}

func (s *CategoryService) invalidate(ctx context.Context, showerTypeID uuid.UUID) {
	if showerTypeID == uuid.Nil {
		return
	}
	if err := s.cache.InvalidateCatalog(ctx, showerTypeID.String()); err != nil {
		log.Printf("Warning: failed to invalidate catalog cache for %s: %v", showerTypeID, err)
	}
}
