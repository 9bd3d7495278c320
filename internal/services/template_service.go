package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
	"github.com/itsfarrukhali/bathfitter-backend/internal/utils"
)

// TemplateService manages the prototype tree and its instantiation into
// per-shower-type catalogs.
type TemplateService struct {
	templateRepo   TemplateStore
	showerTypeRepo ShowerTypeStore
	categoryRepo   CategoryStore
	cache          CatalogCache
}

func NewTemplateService(
	templateRepo TemplateStore,
	showerTypeRepo ShowerTypeStore,
	categoryRepo CategoryStore,
	cache CatalogCache,
) *TemplateService {
	return &TemplateService{
		templateRepo:   templateRepo,
		showerTypeRepo: showerTypeRepo,
		categoryRepo:   categoryRepo,
		cache:          cache,
	}
}

// --- template category CRUD ---

type TemplateCategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug"`
	ZIndex       int    `json:"z_index"`
	DisplayOrder int    `json:"display_order"`
}

func (s *TemplateService) CreateCategory(req TemplateCategoryRequest) (*models.TemplateCategory, error) {
	tc := &models.TemplateCategory{
		Name:         req.Name,
		Slug:         req.Slug,
		ZIndex:       req.ZIndex,
		DisplayOrder: req.DisplayOrder,
	}
	if tc.Slug == "" {
		tc.Slug = utils.Slugify(tc.Name)
	}

	if err := s.templateRepo.CreateCategory(tc); err != nil {
		return nil, fmt.Errorf("failed to save template category: %w", err)
	}
	return tc, nil
}

func (s *TemplateService) ListCategories() ([]models.TemplateCategory, error) {
	return s.templateRepo.ListCategories()
}

func (s *TemplateService) UpdateCategory(id uuid.UUID, req TemplateCategoryRequest) (*models.TemplateCategory, error) {
	tc := &models.TemplateCategory{
		ID:           id,
		Name:         req.Name,
		Slug:         req.Slug,
		ZIndex:       req.ZIndex,
		DisplayOrder: req.DisplayOrder,
	}
	if tc.Slug == "" {
		tc.Slug = utils.Slugify(tc.Name)
	}

	if err := s.templateRepo.UpdateCategory(tc); err != nil {
		return nil, fmt.Errorf("%w: template category", ErrNotFound)
	}
	return tc, nil
}

func (s *TemplateService) DeleteCategory(id uuid.UUID) error {
	return s.templateRepo.DeleteCategory(id)
}

// --- template subcategory CRUD ---

type TemplateSubcategoryRequest struct {
	TemplateCategoryID uuid.UUID `json:"template_category_id" binding:"required"`
	Name               string    `json:"name" binding:"required"`
	Slug               string    `json:"slug"`
	ZIndex             *int      `json:"z_index"`
	DisplayOrder       int       `json:"display_order"`
}

func (s *TemplateService) CreateSubcategory(req TemplateSubcategoryRequest) (*models.TemplateSubcategory, error) {
	ts := &models.TemplateSubcategory{
		TemplateCategoryID: req.TemplateCategoryID,
		Name:               req.Name,
		Slug:               req.Slug,
		ZIndex:             req.ZIndex,
		DisplayOrder:       req.DisplayOrder,
	}
	if ts.Slug == "" {
		ts.Slug = utils.Slugify(ts.Name)
	}

	if err := s.templateRepo.CreateSubcategory(ts); err != nil {
		return nil, fmt.Errorf("failed to save template subcategory: %w", err)
	}
	return ts, nil
}

func (s *TemplateService) ListSubcategories(templateCategoryID uuid.UUID) ([]models.TemplateSubcategory, error) {
	return s.templateRepo.ListSubcategories(templateCategoryID)
}

func (s *TemplateService) UpdateSubcategory(id uuid.UUID, req TemplateSubcategoryRequest) (*models.TemplateSubcategory, error) {
	ts := &models.TemplateSubcategory{
		ID:                 id,
		TemplateCategoryID: req.TemplateCategoryID,
		Name:               req.Name,
		Slug:               req.Slug,
		ZIndex:             req.ZIndex,
		DisplayOrder:       req.DisplayOrder,
	}
	if ts.Slug == "" {
		ts.Slug = utils.Slugify(ts.Name)
	}

	if err := s.templateRepo.UpdateSubcategory(ts); err != nil {
		return nil, fmt.Errorf("%w: template subcategory", ErrNotFound)
	}
	return ts, nil
}

func (s *TemplateService) DeleteSubcategory(id uuid.UUID) error {
	return s.templateRepo.DeleteSubcategory(id)
}

// --- template product CRUD ---

type TemplateProductRequest struct {
	TemplateSubcategoryID uuid.UUID `json:"template_subcategory_id" binding:"required"`
	Name                  string    `json:"name" binding:"required"`
	Slug                  string    `json:"slug"`
	ImageURL              string    `json:"image_url"`
	ZIndex                *int      `json:"z_index"`
	DisplayOrder          int       `json:"display_order"`
}

func (s *TemplateService) CreateProduct(req TemplateProductRequest) (*models.TemplateProduct, error) {
	tp := &models.TemplateProduct{
		TemplateSubcategoryID: req.TemplateSubcategoryID,
		Name:                  req.Name,
		Slug:                  req.Slug,
		ImageURL:              req.ImageURL,
		ZIndex:                req.ZIndex,
		DisplayOrder:          req.DisplayOrder,
	}
	if tp.Slug == "" {
		tp.Slug = utils.Slugify(tp.Name)
	}

	if err := s.templateRepo.CreateProduct(tp); err != nil {
		return nil, fmt.Errorf("failed to save template product: %w", err)
	}
	return tp, nil
}

func (s *TemplateService) ListProducts(templateSubcategoryID uuid.UUID) ([]models.TemplateProduct, error) {
	return s.templateRepo.ListProducts(templateSubcategoryID)
}

func (s *TemplateService) UpdateProduct(id uuid.UUID, req TemplateProductRequest) (*models.TemplateProduct, error) {
	tp := &models.TemplateProduct{
		ID:                    id,
		TemplateSubcategoryID: req.TemplateSubcategoryID,
		Name:                  req.Name,
		Slug:                  req.Slug,
		ImageURL:              req.ImageURL,
		ZIndex:                req.ZIndex,
		DisplayOrder:          req.DisplayOrder,
	}
	if tp.Slug == "" {
		tp.Slug = utils.Slugify(tp.Name)
	}

	if err := s.templateRepo.UpdateProduct(tp); err != nil {
		return nil, fmt.Errorf("%w: template product", ErrNotFound)
	}
	return tp, nil
}

func (s *TemplateService) DeleteProduct(id uuid.UUID) error {
	return s.templateRepo.DeleteProduct(id)
}

// --- template variant CRUD ---

type TemplateVariantRequest struct {
	TemplateProductID uuid.UUID             `json:"template_product_id" binding:"required"`
	ColorName         string                `json:"color_name" binding:"required"`
	ImageURL          string                `json:"image_url"`
	ImageURLLeft      string                `json:"image_url_left"`
	ImageURLRight     string                `json:"image_url_right"`
	PlumbingConfig    models.PlumbingConfig `json:"plumbing_config"`
	PriceDeltaCents   int64                 `json:"price_delta_cents"`
	DisplayOrder      int                   `json:"display_order"`
}

func (s *TemplateService) CreateVariant(req TemplateVariantRequest) (*models.TemplateVariant, error) {
	if req.PlumbingConfig != "" && !req.PlumbingConfig.Valid() {
		return nil, fmt.Errorf("%w: plumbing_config must be LEFT, RIGHT or BOTH", ErrValidation)
	}

	tv := &models.TemplateVariant{
		TemplateProductID: req.TemplateProductID,
		ColorName:         req.ColorName,
		ImageURL:          req.ImageURL,
		ImageURLLeft:      req.ImageURLLeft,
		ImageURLRight:     req.ImageURLRight,
		PlumbingConfig:    req.PlumbingConfig,
		PriceDeltaCents:   req.PriceDeltaCents,
		DisplayOrder:      req.DisplayOrder,
	}

	if err := s.templateRepo.CreateVariant(tv); err != nil {
		return nil, fmt.Errorf("failed to save template variant: %w", err)
	}
	return tv, nil
}

func (s *TemplateService) ListVariants(templateProductID uuid.UUID) ([]models.TemplateVariant, error) {
	return s.templateRepo.ListVariants(templateProductID)
}

func (s *TemplateService) UpdateVariant(id uuid.UUID, req TemplateVariantRequest) (*models.TemplateVariant, error) {
	if req.PlumbingConfig != "" && !req.PlumbingConfig.Valid() {
		return nil, fmt.Errorf("%w: plumbing_config must be LEFT, RIGHT or BOTH", ErrValidation)
	}

	tv := &models.TemplateVariant{
		ID:                id,
		TemplateProductID: req.TemplateProductID,
		ColorName:         req.ColorName,
		ImageURL:          req.ImageURL,
		ImageURLLeft:      req.ImageURLLeft,
		ImageURLRight:     req.ImageURLRight,
		PlumbingConfig:    req.PlumbingConfig,
		PriceDeltaCents:   req.PriceDeltaCents,
		DisplayOrder:      req.DisplayOrder,
	}

	if err := s.templateRepo.UpdateVariant(tv); err != nil {
		return nil, fmt.Errorf("%w: template variant", ErrNotFound)
	}
	return tv, nil
}

func (s *TemplateService) DeleteVariant(id uuid.UUID) error {
	return s.templateRepo.DeleteVariant(id)
}

// --- instantiation ---

type InstantiateRequest struct {
	ShowerTypeIDs []uuid.UUID `json:"shower_type_ids" binding:"required,min=1"`
}

type SkippedShowerType struct {
	ShowerTypeID uuid.UUID `json:"shower_type_id"`
	Reason       string    `json:"reason"`
}

type InstantiateResult struct {
	Created []uuid.UUID         `json:"created"`
	Skipped []SkippedShowerType `json:"skipped"`
}

// Instantiate copies the template tree into a concrete catalog for each
// requested shower type. Missing shower types and shower types that
// already carry a template category slug are skipped and reported; each
// successful copy commits atomically.
func (s *TemplateService) Instantiate(ctx context.Context, req InstantiateRequest) (*InstantiateResult, error) {
	tree, err := s.templateRepo.GetTree()
	if err != nil {
		return nil, fmt.Errorf("failed to load template tree: %w", err)
	}
	if len(tree.Categories) == 0 {
		return nil, fmt.Errorf("%w: no template categories defined", ErrValidation)
	}

	result := &InstantiateResult{}

	for _, showerTypeID := range req.ShowerTypeIDs {
		st, err := s.showerTypeRepo.GetByID(showerTypeID)
		if err != nil {
			return nil, err
		}
		if st == nil {
			result.Skipped = append(result.Skipped, SkippedShowerType{ShowerTypeID: showerTypeID, Reason: "not found"})
			continue
		}

		conflict, err := s.hasSlugConflict(tree, showerTypeID)
		if err != nil {
			return nil, err
		}
		if conflict {
			result.Skipped = append(result.Skipped, SkippedShowerType{ShowerTypeID: showerTypeID, Reason: "exists"})
			continue
		}

		categories, subcategories, products, variants := BuildInstance(tree, showerTypeID)
		if err := s.templateRepo.InsertInstance(categories, subcategories, products, variants); err != nil {
			return nil, fmt.Errorf("failed to instantiate shower type %s: %w", showerTypeID, err)
		}

		if err := s.cache.InvalidateCatalog(ctx, showerTypeID.String()); err != nil {
			log.Printf("Warning: failed to invalidate catalog cache for %s: %v", showerTypeID, err)
		}

		result.Created = append(result.Created, showerTypeID)
	}

	return result, nil
}

func (s *TemplateService) hasSlugConflict(tree *models.TemplateTree, showerTypeID uuid.UUID) (bool, error) {
	for _, tc := range tree.Categories {
		exists, err := s.categoryRepo.ExistsSlug(showerTypeID, tc.Slug)
		if err != nil {
			return false, err
		}
		if exists {
			return true, nil
		}
	}
	return false, nil
}

// BuildInstance walks the template tree and produces the concrete records
// for one shower type, with fresh IDs and remapped parents.
func BuildInstance(tree *models.TemplateTree, showerTypeID uuid.UUID) (
	[]models.Category,
	[]models.Subcategory,
	[]models.Product,
	[]models.ProductVariant,
) {
	var categories []models.Category
	var subcategories []models.Subcategory
	var products []models.Product
	var variants []models.ProductVariant

	for _, tc := range tree.Categories {
		cat := models.Category{
			ID:           uuid.New(),
			ShowerTypeID: showerTypeID,
			Name:         tc.Name,
			Slug:         tc.Slug,
			ZIndex:       tc.ZIndex,
			DisplayOrder: tc.DisplayOrder,
		}
		categories = append(categories, cat)

		for _, ts := range tree.Subcategories[tc.ID] {
			sub := models.Subcategory{
				ID:           uuid.New(),
				CategoryID:   cat.ID,
				Name:         ts.Name,
				Slug:         ts.Slug,
				ZIndex:       ts.ZIndex,
				DisplayOrder: ts.DisplayOrder,
			}
			subcategories = append(subcategories, sub)

			for _, tp := range tree.Products[ts.ID] {
				p := models.Product{
					ID:            uuid.New(),
					SubcategoryID: sub.ID,
					Name:          tp.Name,
					Slug:          tp.Slug,
					ImageURL:      tp.ImageURL,
					ZIndex:        tp.ZIndex,
					DisplayOrder:  tp.DisplayOrder,
				}
				products = append(products, p)

				for _, tv := range tree.Variants[tp.ID] {
					variants = append(variants, models.ProductVariant{
						ID:              uuid.New(),
						ProductID:       p.ID,
						ColorName:       tv.ColorName,
						ImageURL:        tv.ImageURL,
						ImageURLLeft:    tv.ImageURLLeft,
						ImageURLRight:   tv.ImageURLRight,
						PlumbingConfig:  tv.PlumbingConfig,
						PriceDeltaCents: tv.PriceDeltaCents,
						DisplayOrder:    tv.DisplayOrder,
					})
				}
			}
		}
	}

	return categories, subcategories, products, variants
}
