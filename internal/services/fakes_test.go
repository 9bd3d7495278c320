package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
)

// In-memory fakes satisfying the store interfaces.

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserStore) Create(user *models.User) error {
	user.Prepare()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindUserByID(id uuid.UUID) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) FindUserByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) CountUsers() (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserStore) UpdateLastLogin(id uuid.UUID) error { return nil }

type fakeSessionStore struct {
	sessions    map[string]string
	blacklisted map[string]bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions:    make(map[string]string),
		blacklisted: make(map[string]bool),
	}
}

func (f *fakeSessionStore) StoreSession(ctx context.Context, jti string, userID string) error {
	f.sessions[jti] = userID
	return nil
}

func (f *fakeSessionStore) DeleteSession(ctx context.Context, jti string) error {
	delete(f.sessions, jti)
	return nil
}

func (f *fakeSessionStore) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	return f.blacklisted[jti], nil
}

func (f *fakeSessionStore) Blacklist(ctx context.Context, jti string) error {
	f.blacklisted[jti] = true
	return nil
}

type fakeShowerTypeStore struct {
	showerTypes map[uuid.UUID]*models.ShowerType
}

func newFakeShowerTypeStore() *fakeShowerTypeStore {
	return &fakeShowerTypeStore{showerTypes: make(map[uuid.UUID]*models.ShowerType)}
}

func (f *fakeShowerTypeStore) Create(st *models.ShowerType) error {
	st.Prepare()
	f.showerTypes[st.ID] = st
	return nil
}

func (f *fakeShowerTypeStore) GetByID(id uuid.UUID) (*models.ShowerType, error) {
	return f.showerTypes[id], nil
}

func (f *fakeShowerTypeStore) List(projectTypeID *uuid.UUID) ([]models.ShowerType, error) {
	var out []models.ShowerType
	for _, st := range f.showerTypes {
		if projectTypeID == nil || st.ProjectTypeID == *projectTypeID {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (f *fakeShowerTypeStore) Update(st *models.ShowerType) error {
	f.showerTypes[st.ID] = st
	return nil
}

func (f *fakeShowerTypeStore) Delete(id uuid.UUID) error {
	delete(f.showerTypes, id)
	return nil
}

func (f *fakeShowerTypeStore) CountByProjectType(projectTypeID uuid.UUID) (int64, error) {
	var n int64
	for _, st := range f.showerTypes {
		if st.ProjectTypeID == projectTypeID {
			n++
		}
	}
	return n, nil
}

type fakeCategoryStore struct {
	categories map[uuid.UUID]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uuid.UUID]*models.Category)}
}

func (f *fakeCategoryStore) Create(cat *models.Category) error {
	cat.Prepare()
	f.categories[cat.ID] = cat
	return nil
}

func (f *fakeCategoryStore) GetByID(id uuid.UUID) (*models.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryStore) ListByShowerType(showerTypeID uuid.UUID) ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.categories {
		if c.ShowerTypeID == showerTypeID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryStore) Update(cat *models.Category) error {
	f.categories[cat.ID] = cat
	return nil
}

func (f *fakeCategoryStore) Delete(id uuid.UUID) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryStore) ExistsSlug(showerTypeID uuid.UUID, slug string) (bool, error) {
	for _, c := range f.categories {
		if c.ShowerTypeID == showerTypeID && c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

type fakeSubcategoryStore struct {
	subcategories map[uuid.UUID]*models.Subcategory
	showerTypes   map[uuid.UUID]uuid.UUID // subcategory ID -> shower type ID
}

func newFakeSubcategoryStore() *fakeSubcategoryStore {
	return &fakeSubcategoryStore{
		subcategories: make(map[uuid.UUID]*models.Subcategory),
		showerTypes:   make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeSubcategoryStore) Create(sub *models.Subcategory) error {
	sub.Prepare()
	f.subcategories[sub.ID] = sub
	return nil
}

func (f *fakeSubcategoryStore) GetByID(id uuid.UUID) (*models.Subcategory, error) {
	return f.subcategories[id], nil
}

func (f *fakeSubcategoryStore) ListByCategory(categoryID uuid.UUID) ([]models.Subcategory, error) {
	var out []models.Subcategory
	for _, s := range f.subcategories {
		if s.CategoryID == categoryID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSubcategoryStore) ListByShowerType(showerTypeID uuid.UUID) ([]models.Subcategory, error) {
	var out []models.Subcategory
	for id, s := range f.subcategories {
		if f.showerTypes[id] == showerTypeID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSubcategoryStore) Update(sub *models.Subcategory) error {
	f.subcategories[sub.ID] = sub
	return nil
}

func (f *fakeSubcategoryStore) Delete(id uuid.UUID) error {
	delete(f.subcategories, id)
	return nil
}

func (f *fakeSubcategoryStore) ShowerTypeID(subcategoryID uuid.UUID) (uuid.UUID, error) {
	return f.showerTypes[subcategoryID], nil
}

type fakeProductStore struct {
	products    map[uuid.UUID]*models.Product
	showerTypes map[uuid.UUID]uuid.UUID // product ID -> shower type ID
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{
		products:    make(map[uuid.UUID]*models.Product),
		showerTypes: make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeProductStore) Create(p *models.Product) error {
	p.Prepare()
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductStore) GetByID(id uuid.UUID) (*models.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductStore) ListBySubcategory(subcategoryID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.SubcategoryID == subcategoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) ListByShowerType(showerTypeID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for id, p := range f.products {
		if f.showerTypes[id] == showerTypeID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) Update(p *models.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductStore) Delete(id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductStore) ShowerTypeID(productID uuid.UUID) (uuid.UUID, error) {
	return f.showerTypes[productID], nil
}

type fakeVariantStore struct {
	variants   map[uuid.UUID]*models.ProductVariant
	designRefs map[uuid.UUID]int64
}

func newFakeVariantStore() *fakeVariantStore {
	return &fakeVariantStore{
		variants:   make(map[uuid.UUID]*models.ProductVariant),
		designRefs: make(map[uuid.UUID]int64),
	}
}

func (f *fakeVariantStore) Create(v *models.ProductVariant) error {
	v.Prepare()
	f.variants[v.ID] = v
	return nil
}

func (f *fakeVariantStore) GetByID(id uuid.UUID) (*models.ProductVariant, error) {
	return f.variants[id], nil
}

func (f *fakeVariantStore) ListByProduct(productID uuid.UUID) ([]models.ProductVariant, error) {
	var out []models.ProductVariant
	for _, v := range f.variants {
		if v.ProductID == productID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVariantStore) ListByShowerType(showerTypeID uuid.UUID) ([]models.ProductVariant, error) {
	return nil, nil
}

func (f *fakeVariantStore) Update(v *models.ProductVariant) error {
	f.variants[v.ID] = v
	return nil
}

func (f *fakeVariantStore) Delete(id uuid.UUID) error {
	delete(f.variants, id)
	return nil
}

func (f *fakeVariantStore) ExistsColorName(productID uuid.UUID, colorName string, excludeID uuid.UUID) (bool, error) {
	for _, v := range f.variants {
		if v.ProductID == productID && v.ColorName == colorName && v.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVariantStore) CountDesignReferences(variantID uuid.UUID) (int64, error) {
	return f.designRefs[variantID], nil
}

type fakeTemplateStore struct {
	tree *models.TemplateTree

	insertedCategories    []models.Category
	insertedSubcategories []models.Subcategory
	insertedProducts      []models.Product
	insertedVariants      []models.ProductVariant
	insertCalls           int
}

func (f *fakeTemplateStore) CreateCategory(tc *models.TemplateCategory) error { tc.Prepare(); return nil }
func (f *fakeTemplateStore) ListCategories() ([]models.TemplateCategory, error) {
	return f.tree.Categories, nil
}
func (f *fakeTemplateStore) UpdateCategory(tc *models.TemplateCategory) error { return nil }
func (f *fakeTemplateStore) DeleteCategory(id uuid.UUID) error                { return nil }

func (f *fakeTemplateStore) CreateSubcategory(ts *models.TemplateSubcategory) error {
	ts.Prepare()
	return nil
}
func (f *fakeTemplateStore) ListSubcategories(id uuid.UUID) ([]models.TemplateSubcategory, error) {
	return f.tree.Subcategories[id], nil
}
func (f *fakeTemplateStore) UpdateSubcategory(ts *models.TemplateSubcategory) error { return nil }
func (f *fakeTemplateStore) DeleteSubcategory(id uuid.UUID) error                   { return nil }

func (f *fakeTemplateStore) CreateProduct(tp *models.TemplateProduct) error { tp.Prepare(); return nil }
func (f *fakeTemplateStore) ListProducts(id uuid.UUID) ([]models.TemplateProduct, error) {
	return f.tree.Products[id], nil
}
func (f *fakeTemplateStore) UpdateProduct(tp *models.TemplateProduct) error { return nil }
func (f *fakeTemplateStore) DeleteProduct(id uuid.UUID) error               { return nil }

func (f *fakeTemplateStore) CreateVariant(tv *models.TemplateVariant) error { tv.Prepare(); return nil }
func (f *fakeTemplateStore) ListVariants(id uuid.UUID) ([]models.TemplateVariant, error) {
	return f.tree.Variants[id], nil
}
func (f *fakeTemplateStore) UpdateVariant(tv *models.TemplateVariant) error { return nil }
func (f *fakeTemplateStore) DeleteVariant(id uuid.UUID) error               { return nil }

func (f *fakeTemplateStore) GetTree() (*models.TemplateTree, error) {
	return f.tree, nil
}

func (f *fakeTemplateStore) InsertInstance(
	categories []models.Category,
	subcategories []models.Subcategory,
	products []models.Product,
	variants []models.ProductVariant,
) error {
	f.insertCalls++
	f.insertedCategories = append(f.insertedCategories, categories...)
	f.insertedSubcategories = append(f.insertedSubcategories, subcategories...)
	f.insertedProducts = append(f.insertedProducts, products...)
	f.insertedVariants = append(f.insertedVariants, variants...)
	return nil
}

type fakeDesignStore struct {
	designs   map[uuid.UUID]*models.Design
	layerRows map[uuid.UUID][]models.LayerRow
}

func newFakeDesignStore() *fakeDesignStore {
	return &fakeDesignStore{
		designs:   make(map[uuid.UUID]*models.Design),
		layerRows: make(map[uuid.UUID][]models.LayerRow),
	}
}

func (f *fakeDesignStore) Create(d *models.Design) error {
	d.Prepare()
	f.designs[d.ID] = d
	return nil
}

func (f *fakeDesignStore) GetByID(id uuid.UUID) (*models.Design, error) {
	return f.designs[id], nil
}

func (f *fakeDesignStore) List(userID *uuid.UUID) ([]models.Design, error) {
	var out []models.Design
	for _, d := range f.designs {
		if userID == nil || (d.UserID != nil && *d.UserID == *userID) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDesignStore) Update(d *models.Design) error {
	f.designs[d.ID] = d
	return nil
}

func (f *fakeDesignStore) Delete(id uuid.UUID) error {
	delete(f.designs, id)
	return nil
}

func (f *fakeDesignStore) GetLayerRows(designID uuid.UUID) ([]models.LayerRow, error) {
	return f.layerRows[designID], nil
}

type fakeCache struct {
	entries     map[string]string
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) GetCatalog(ctx context.Context, showerTypeID string) (string, error) {
	return f.entries[showerTypeID], nil
}

func (f *fakeCache) SetCatalog(ctx context.Context, showerTypeID string, payload string) error {
	f.entries[showerTypeID] = payload
	return nil
}

func (f *fakeCache) InvalidateCatalog(ctx context.Context, showerTypeID string) error {
	delete(f.entries, showerTypeID)
	f.invalidated = append(f.invalidated, showerTypeID)
	return nil
}

type fakeDraftStore struct {
	drafts map[string]string
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: make(map[string]string)}
}

func (f *fakeDraftStore) StoreDraft(ctx context.Context, token string, payload string) error {
	f.drafts[token] = payload
	return nil
}

func (f *fakeDraftStore) GetDraft(ctx context.Context, token string) (string, error) {
	return f.drafts[token], nil
}

func (f *fakeDraftStore) DeleteDraft(ctx context.Context, token string) error {
	delete(f.drafts, token)
	return nil
}
