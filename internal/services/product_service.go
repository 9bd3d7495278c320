package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
	"github.com/itsfarrukhali/bathfitter-backend/internal/utils"
)

// ProductService manages products and their color variants, including the
// catalog invariants: unique color per product and no deletion of
// variants referenced by saved designs.
type ProductService struct {
	productRepo     ProductStore
	variantRepo     VariantStore
	subcategoryRepo SubcategoryStore
	cache           CatalogCache
}

func NewProductService(
	productRepo ProductStore,
	variantRepo VariantStore,
	subcategoryRepo SubcategoryStore,
	cache CatalogCache,
) *ProductService {
	return &ProductService{
		productRepo:     productRepo,
		variantRepo:     variantRepo,
		subcategoryRepo: subcategoryRepo,
		cache:           cache,
	}
}

// --- products ---

type ProductRequest struct {
	SubcategoryID uuid.UUID `json:"subcategory_id" binding:"required"`
	Name          string    `json:"name" binding:"required"`
	Slug          string    `json:"slug"`
	ImageURL      string    `json:"image_url"`
	ZIndex        *int      `json:"z_index"`
	DisplayOrder  int       `json:"display_order"`
}

func (s *ProductService) CreateProduct(ctx context.Context, req ProductRequest) (*models.Product, error) {
	sub, err := s.subcategoryRepo.GetByID(req.SubcategoryID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: subcategory", ErrNotFound)
	}

	p := &models.Product{
		SubcategoryID: req.SubcategoryID,
		Name:          req.Name,
		Slug:          req.Slug,
		ImageURL:      req.ImageURL,
		ZIndex:        req.ZIndex,
		DisplayOrder:  req.DisplayOrder,
	}
	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Name)
	}

	if err := s.productRepo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.invalidateForSubcategory(ctx, p.SubcategoryID)
	return p, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	p, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product", ErrNotFound)
	}
	return p, nil
}

func (s *ProductService) ListProducts(subcategoryID uuid.UUID) ([]models.Product, error) {
	return s.productRepo.ListBySubcategory(subcategoryID)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req ProductRequest) (*models.Product, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Slug = req.Slug
	p.ImageURL = req.ImageURL
	p.ZIndex = req.ZIndex
	p.DisplayOrder = req.DisplayOrder
	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Name)
	}

	if err := s.productRepo.Update(p); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.invalidateForProduct(ctx, id)
	return p, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	showerTypeID, err := s.productRepo.ShowerTypeID(id)
	if err != nil {
		return err
	}
	if showerTypeID == uuid.Nil {
		return fmt.Errorf("%w: product", ErrNotFound)
	}

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	s.invalidate(ctx, showerTypeID)
	return nil
}

// --- variants ---

type VariantRequest struct {
	ProductID       uuid.UUID             `json:"product_id" binding:"required"`
	ColorName       string                `json:"color_name" binding:"required"`
	ImageURL        string                `json:"image_url"`
	ImageURLLeft    string                `json:"image_url_left"`
	ImageURLRight   string                `json:"image_url_right"`
	PlumbingConfig  models.PlumbingConfig `json:"plumbing_config"`
	PriceDeltaCents int64                 `json:"price_delta_cents"`
	DisplayOrder    int                   `json:"display_order"`
}

func (s *ProductService) CreateVariant(ctx context.Context, req VariantRequest) (*models.ProductVariant, error) {
	if req.PlumbingConfig != "" && !req.PlumbingConfig.Valid() {
		return nil, fmt.Errorf("%w: plumbing_config must be LEFT, RIGHT or BOTH", ErrValidation)
	}

	if _, err := s.GetProduct(req.ProductID); err != nil {
		return nil, err
	}

	exists, err := s.variantRepo.ExistsColorName(req.ProductID, req.ColorName, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: color %q already exists for this product", ErrConflict, req.ColorName)
	}

	v := &models.ProductVariant{
		ProductID:       req.ProductID,
		ColorName:       req.ColorName,
		ImageURL:        req.ImageURL,
		ImageURLLeft:    req.ImageURLLeft,
		ImageURLRight:   req.ImageURLRight,
		PlumbingConfig:  req.PlumbingConfig,
		PriceDeltaCents: req.PriceDeltaCents,
		DisplayOrder:    req.DisplayOrder,
	}

	if err := s.variantRepo.Create(v); err != nil {
		return nil, fmt.Errorf("failed to save variant: %w", err)
	}

	s.invalidateForProduct(ctx, v.ProductID)
	return v, nil
}

func (s *ProductService) GetVariant(id uuid.UUID) (*models.ProductVariant, error) {
	v, err := s.variantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: variant", ErrNotFound)
	}
	return v, nil
}

func (s *ProductService) ListVariants(productID uuid.UUID) ([]models.ProductVariant, error) {
	return s.variantRepo.ListByProduct(productID)
}

// ListVariantsForPlumbing returns the product's variants with the one the
// configurator should preselect for the given side.
func (s *ProductService) ListVariantsForPlumbing(productID uuid.UUID, side models.PlumbingConfig) ([]models.ProductVariant, *models.ProductVariant, error) {
	if !side.Valid() {
		return nil, nil, fmt.Errorf("%w: plumbing_config must be LEFT, RIGHT or BOTH", ErrValidation)
	}

	variants, err := s.variantRepo.ListByProduct(productID)
	if err != nil {
		return nil, nil, err
	}

	selected := models.SelectVariantForPlumbing(variants, side)
	return variants, selected, nil
}

func (s *ProductService) UpdateVariant(ctx context.Context, id uuid.UUID, req VariantRequest) (*models.ProductVariant, error) {
	if req.PlumbingConfig != "" && !req.PlumbingConfig.Valid() {
		return nil, fmt.Errorf("%w: plumbing_config must be LEFT, RIGHT or BOTH", ErrValidation)
	}

	v, err := s.GetVariant(id)
	if err != nil {
		return nil, err
	}

	exists, err := s.variantRepo.ExistsColorName(v.ProductID, req.ColorName, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: color %q already exists for this product", ErrConflict, req.ColorName)
	}

	v.ColorName = req.ColorName
	v.ImageURL = req.ImageURL
	v.ImageURLLeft = req.ImageURLLeft
	v.ImageURLRight = req.ImageURLRight
	if req.PlumbingConfig != "" {
		v.PlumbingConfig = req.PlumbingConfig
	}
	v.PriceDeltaCents = req.PriceDeltaCents
	v.DisplayOrder = req.DisplayOrder

	if err := s.variantRepo.Update(v); err != nil {
		return nil, fmt.Errorf("failed to update variant: %w", err)
	}

	s.invalidateForProduct(ctx, v.ProductID)
	return v, nil
}

func (s *ProductService) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	v, err := s.GetVariant(id)
	if err != nil {
		return err
	}

	refs, err := s.variantRepo.CountDesignReferences(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: variant is referenced by %d saved designs", ErrValidation, refs)
	}

	if err := s.variantRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateForProduct(ctx, v.ProductID)
	return nil
}

func (s *ProductService) invalidateForProduct(ctx context.Context, productID uuid.UUID) {
	showerTypeID, err := s.productRepo.ShowerTypeID(productID)
	if err != nil {
		log.Printf("Warning: failed to resolve shower type for product %s: %v", productID, err)
		return
	}
	s.invalidate(ctx, showerTypeID)
}

func (s *ProductService) invalidateForSubcategory(ctx context.Context, subcategoryID uuid.UUID) {
	showerTypeID, err := s.subcategoryRepo.ShowerTypeID(subcategoryID)
	if err != nil {
		log.Printf("Warning: failed to resolve shower type for subcategory %s: %v", subcategoryID, err)
		return
	}
	s.invalidate(ctx, showerTypeID)
}

func (s *ProductService) invalidate(ctx context.Context, showerTypeID uuid.UUID) {
	if showerTypeID == uuid.Nil {
		return
	}
	if err := s.cache.InvalidateCatalog(ctx, showerTypeID.String()); err != nil {
		log.Printf("Warning: failed to invalidate catalog cache for %s: %v", showerTypeID, err)
	}
}
