package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
)

// Store interfaces are declared on the consumer side so services can be
// exercised against fakes; the pgx repositories satisfy them.

type UserStore interface {
	Create(user *models.User) error
	FindUserByID(id uuid.UUID) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	CountUsers() (int64, error)
	UpdateLastLogin(id uuid.UUID) error
}

type SessionStore interface {
	StoreSession(ctx context.Context, jti string, userID string) error
	DeleteSession(ctx context.Context, jti string) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	Blacklist(ctx context.Context, jti string) error
}

type ProjectTypeStore interface {
	Create(pt *models.ProjectType) error
	GetByID(id uuid.UUID) (*models.ProjectType, error)
	List() ([]models.ProjectType, error)
	Update(pt *models.ProjectType) error
	Delete(id uuid.UUID) error
}

type ShowerTypeStore interface {
	Create(st *models.ShowerType) error
	GetByID(id uuid.UUID) (*models.ShowerType, error)
	List(projectTypeID *uuid.UUID) ([]models.ShowerType, error)
	Update(st *models.ShowerType) error
	Delete(id uuid.UUID) error
	CountByProjectType(projectTypeID uuid.UUID) (int64, error)
}

type CategoryStore interface {
	Create(cat *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	ListByShowerType(showerTypeID uuid.UUID) ([]models.Category, error)
	Update(cat *models.Category) error
	Delete(id uuid.UUID) error
	ExistsSlug(showerTypeID uuid.UUID, slug string) (bool, error)
}

type SubcategoryStore interface {
	Create(sub *models.Subcategory) error
	GetByID(id uuid.UUID) (*models.Subcategory, error)
	ListByCategory(categoryID uuid.UUID) ([]models.Subcategory, error)
	ListByShowerType(showerTypeID uuid.UUID) ([]models.Subcategory, error)
	Update(sub *models.Subcategory) error
	Delete(id uuid.UUID) error
	ShowerTypeID(subcategoryID uuid.UUID) (uuid.UUID, error)
}

type ProductStore interface {
	Create(p *models.Product) error
	GetByID(id uuid.UUID) (*models.Product, error)
	ListBySubcategory(subcategoryID uuid.UUID) ([]models.Product, error)
	ListByShowerType(showerTypeID uuid.UUID) ([]models.Product, error)
	Update(p *models.Product) error
	Delete(id uuid.UUID) error
	ShowerTypeID(productID uuid.UUID) (uuid.UUID, error)
}

type VariantStore interface {
	Create(v *models.ProductVariant) error
	GetByID(id uuid.UUID) (*models.ProductVariant, error)
	ListByProduct(productID uuid.UUID) ([]models.ProductVariant, error)
	ListByShowerType(showerTypeID uuid.UUID) ([]models.ProductVariant, error)
	Update(v *models.ProductVariant) error
	Delete(id uuid.UUID) error
	ExistsColorName(productID uuid.UUID, colorName string, excludeID uuid.UUID) (bool, error)
	CountDesignReferences(variantID uuid.UUID) (int64, error)
}

type TemplateStore interface {
	CreateCategory(tc *models.TemplateCategory) error
	ListCategories() ([]models.TemplateCategory, error)
	UpdateCategory(tc *models.TemplateCategory) error
	DeleteCategory(id uuid.UUID) error

	CreateSubcategory(ts *models.TemplateSubcategory) error
	ListSubcategories(templateCategoryID uuid.UUID) ([]models.TemplateSubcategory, error)
	UpdateSubcategory(ts *models.TemplateSubcategory) error
	DeleteSubcategory(id uuid.UUID) error

	CreateProduct(tp *models.TemplateProduct) error
	ListProducts(templateSubcategoryID uuid.UUID) ([]models.TemplateProduct, error)
	UpdateProduct(tp *models.TemplateProduct) error
	DeleteProduct(id uuid.UUID) error

	CreateVariant(tv *models.TemplateVariant) error
	ListVariants(templateProductID uuid.UUID) ([]models.TemplateVariant, error)
	UpdateVariant(tv *models.TemplateVariant) error
	DeleteVariant(id uuid.UUID) error

	GetTree() (*models.TemplateTree, error)
	InsertInstance(
		categories []models.Category,
		subcategories []models.Subcategory,
		products []models.Product,
		variants []models.ProductVariant,
	) error
}

type DesignStore interface {
	Create(d *models.Design) error
	GetByID(id uuid.UUID) (*models.Design, error)
	List(userID *uuid.UUID) ([]models.Design, error)
	Update(d *models.Design) error
	Delete(id uuid.UUID) error
	GetLayerRows(designID uuid.UUID) ([]models.LayerRow, error)
}

type CatalogCache interface {
	GetCatalog(ctx context.Context, showerTypeID string) (string, error)
	SetCatalog(ctx context.Context, showerTypeID string, payload string) error
	InvalidateCatalog(ctx context.Context, showerTypeID string) error
}

type DraftStore interface {
	StoreDraft(ctx context.Context, token string, payload string) error
	GetDraft(ctx context.Context, token string) (string, error)
	DeleteDraft(ctx context.Context, token string) error
}
