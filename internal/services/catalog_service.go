package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
	"github.com/itsfarrukhali/bathfitter-backend/internal/utils"
)

// CatalogService manages project types and shower types, and resolves the
// per-shower-type catalog tree the configurator renders from.
type CatalogService struct {
	projectTypeRepo ProjectTypeStore
	showerTypeRepo  ShowerTypeStore
	categoryRepo    CategoryStore
	subcategoryRepo SubcategoryStore
	productRepo     ProductStore
	variantRepo     VariantStore
	cache           CatalogCache
}

func NewCatalogService(
	projectTypeRepo ProjectTypeStore,
	showerTypeRepo ShowerTypeStore,
	categoryRepo CategoryStore,
	subcategoryRepo SubcategoryStore,
	productRepo ProductStore,
	variantRepo VariantStore,
	cache CatalogCache,
) *CatalogService {
	return &CatalogService{
		projectTypeRepo: projectTypeRepo,
		showerTypeRepo:  showerTypeRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		productRepo:     productRepo,
		variantRepo:     variantRepo,
		cache:           cache,
	}
}

// --- project types ---

type ProjectTypeRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

func (s *CatalogService) CreateProjectType(req ProjectTypeRequest) (*models.ProjectType, error) {
	pt := &models.ProjectType{
		Name: req.Name,
		Slug: req.Slug,
	}
	if pt.Slug == "" {
		pt.Slug = utils.Slugify(pt.Name)
	}

	if err := s.projectTypeRepo.Create(pt); err != nil {
		return nil, fmt.Errorf("failed to save project type: %w", err)
	}
	return pt, nil
}

func (s *CatalogService) GetProjectType(id uuid.UUID) (*models.ProjectType, error) {
	pt, err := s.projectTypeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, fmt.Errorf("%w: project type", ErrNotFound)
	}
	return pt, nil
}

func (s *CatalogService) ListProjectTypes() ([]models.ProjectType, error) {
	return s.projectTypeRepo.List()
}

func (s *CatalogService) UpdateProjectType(id uuid.UUID, req ProjectTypeRequest) (*models.ProjectType, error) {
	pt, err := s.GetProjectType(id)
	if err != nil {
		return nil, err
	}

	pt.Name = req.Name
	pt.Slug = req.Slug
	if pt.Slug == "" {
		pt.Slug = utils.Slugify(pt.Name)
	}

	if err := s.projectTypeRepo.Update(pt); err != nil {
		return nil, fmt.Errorf("failed to update project type: %w", err)
	}
	return pt, nil
}

func (s *CatalogService) DeleteProjectType(id uuid.UUID) error {
	count, err := s.showerTypeRepo.CountByProjectType(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: project type is referenced by %d shower types", ErrConflict, count)
	}
	return s.projectTypeRepo.Delete(id)
}

// --- shower types ---

type ShowerTypeRequest struct {
	ProjectTypeID uuid.UUID `json:"project_type_id" binding:"required"`
	Name          string    `json:"name" binding:"required"`
	Slug          string    `json:"slug"`
	BaseImageURL  string    `json:"base_image_url"`
}

func (s *CatalogService) CreateShowerType(req ShowerTypeRequest) (*models.ShowerType, error) {
	pt, err := s.projectTypeRepo.GetByID(req.ProjectTypeID)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, fmt.Errorf("%w: project type", ErrNotFound)
	}

	st := &models.ShowerType{
		ProjectTypeID: req.ProjectTypeID,
		Name:          req.Name,
		Slug:          req.Slug,
		BaseImageURL:  req.BaseImageURL,
	}
	if st.Slug == "" {
		st.Slug = utils.Slugify(st.Name)
	}

	if err := s.showerTypeRepo.Create(st); err != nil {
		return nil, fmt.Errorf("failed to save shower type: %w", err)
	}
	return st, nil
}

func (s *CatalogService) GetShowerType(id uuid.UUID) (*models.ShowerType, error) {
	st, err := s.showerTypeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: shower type", ErrNotFound)
	}
	return st, nil
}

func (s *CatalogService) ListShowerTypes(projectTypeID *uuid.UUID) ([]models.ShowerType, error) {
	return s.showerTypeRepo.List(projectTypeID)
}

func (s *CatalogService) UpdateShowerType(ctx context.Context, id uuid.UUID, req ShowerTypeRequest) (*models.ShowerType, error) {
	st, err := s.GetShowerType(id)
	if err != nil {
		return nil, err
	}

	st.ProjectTypeID = req.ProjectTypeID
	st.Name = req.Name
	st.Slug = req.Slug
	st.BaseImageURL = req.BaseImageURL
	if st.Slug == "" {
		st.Slug = utils.Slugify(st.Name)
	}

	if err := s.showerTypeRepo.Update(st); err != nil {
		return nil, fmt.Errorf("failed to update shower type: %w", err)
	}

	s.invalidateCatalog(ctx, id)
	return st, nil
}

func (s *CatalogService) DeleteShowerType(ctx context.Context, id uuid.UUID) error {
	if err := s.showerTypeRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx, id)
	return nil
}

// --- resolved catalog tree ---

type CatalogProduct struct {
	models.Product
	Variants []models.ProductVariant `json:"variants"`
}

type CatalogSubcategory struct {
	models.Subcategory
	Products []CatalogProduct `json:"products"`
}

type CatalogCategory struct {
	models.Category
	Subcategories []CatalogSubcategory `json:"subcategories"`
}

type CatalogTree struct {
	ShowerType models.ShowerType `json:"shower_type"`
	Categories []CatalogCategory `json:"categories"`
}

// GetCatalog returns the full tree for one shower type, served from Redis
// when a fresh copy exists.
func (s *CatalogService) GetCatalog(ctx context.Context, showerTypeID uuid.UUID) (*CatalogTree, error) {
	if cached, err := s.cache.GetCatalog(ctx, showerTypeID.String()); err == nil && cached != "" {
		var tree CatalogTree
		if err := json.Unmarshal([]byte(cached), &tree); err == nil {
			return &tree, nil
		}
		// A corrupt cache entry falls through to a rebuild.
	}

	st, err := s.GetShowerType(showerTypeID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListByShowerType(showerTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	subcategories, err := s.subcategoryRepo.ListByShowerType(showerTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subcategories: %w", err)
	}
	products, err := s.productRepo.ListByShowerType(showerTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	variants, err := s.variantRepo.ListByShowerType(showerTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load variants: %w", err)
	}

	tree := assembleCatalogTree(*st, categories, subcategories, products, variants)

	if payload, err := json.Marshal(tree); err == nil {
		if err := s.cache.SetCatalog(ctx, showerTypeID.String(), string(payload)); err != nil {
			log.Printf("Warning: failed to cache catalog for %s: %v", showerTypeID, err)
		}
	}

	return tree, nil
}

func assembleCatalogTree(
	st models.ShowerType,
	categories []models.Category,
	subcategories []models.Subcategory,
	products []models.Product,
	variants []models.ProductVariant,
) *CatalogTree {
	variantsByProduct := make(map[uuid.UUID][]models.ProductVariant)
	for _, v := range variants {
		variantsByProduct[v.ProductID] = append(variantsByProduct[v.ProductID], v)
	}

	productsBySubcategory := make(map[uuid.UUID][]CatalogProduct)
	for _, p := range products {
		productsBySubcategory[p.SubcategoryID] = append(productsBySubcategory[p.SubcategoryID], CatalogProduct{
			Product:  p,
			Variants: variantsByProduct[p.ID],
		})
	}

	subcategoriesByCategory := make(map[uuid.UUID][]CatalogSubcategory)
	for _, sub := range subcategories {
		subcategoriesByCategory[sub.CategoryID] = append(subcategoriesByCategory[sub.CategoryID], CatalogSubcategory{
			Subcategory: sub,
			Products:    productsBySubcategory[sub.ID],
		})
	}

	tree := &CatalogTree{ShowerType: st}
	for _, cat := range categories {
		tree.Categories = append(tree.Categories, CatalogCategory{
			Category:      cat,
			Subcategories: subcategoriesByCategory[cat.ID],
		})
	}

	return tree
}

func (s *CatalogService) invalidateCatalog(ctx context.Context, showerTypeID uuid.UUID) {
	if showerTypeID == uuid.Nil {
		return
	}
	if err := s.cache.InvalidateCatalog(ctx, showerTypeID.String()); err != nil {
		log.Printf("Warning: failed to invalidate catalog cache for %s: %v", showerTypeID, err)
	}
}
