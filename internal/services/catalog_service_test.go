package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
)

type catalogFixture struct {
	svc           *CatalogService
	projectTypes  *fakeProjectTypeStore
	showerTypes   *fakeShowerTypeStore
	categories    *fakeCategoryStore
	subcategories *fakeSubcategoryStore
	products      *fakeProductStore
	variants      *fakeVariantStore
	cache         *fakeCache
}

type fakeProjectTypeStore struct {
	projectTypes map[uuid.UUID]*models.ProjectType
}

func newFakeProjectTypeStore() *fakeProjectTypeStore {
	return &fakeProjectTypeStore{projectTypes: make(map[uuid.UUID]*models.ProjectType)}
}

func (f *fakeProjectTypeStore) Create(pt *models.ProjectType) error {
	pt.Prepare()
	f.projectTypes[pt.ID] = pt
	return nil
}

func (f *fakeProjectTypeStore) GetByID(id uuid.UUID) (*models.ProjectType, error) {
	return f.projectTypes[id], nil
}

func (f *fakeProjectTypeStore) List() ([]models.ProjectType, error) {
	var out []models.ProjectType
	for _, pt := range f.projectTypes {
		out = append(out, *pt)
	}
	return out, nil
}

func (f *fakeProjectTypeStore) Update(pt *models.ProjectType) error {
	f.projectTypes[pt.ID] = pt
	return nil
}

func (f *fakeProjectTypeStore) Delete(id uuid.UUID) error {
	delete(f.projectTypes, id)
	return nil
}

func newCatalogFixture() *catalogFixture {
	fx := &catalogFixture{
		projectTypes:  newFakeProjectTypeStore(),
		showerTypes:   newFakeShowerTypeStore(),
		categories:    newFakeCategoryStore(),
		subcategories: newFakeSubcategoryStore(),
		products:      newFakeProductStore(),
		variants:      newFakeVariantStore(),
		cache:         newFakeCache(),
	}
	fx.svc = NewCatalogService(
		fx.projectTypes, fx.showerTypes, fx.categories, fx.subcategories,
		fx.products, fx.variants, fx.cache)
	return fx
}

func TestCreateProjectTypeSlugsItself(t *testing.T) {
	fx := newCatalogFixture()

	pt, err := fx.svc.CreateProjectType(ProjectTypeRequest{Name: "Tub to Shower"})
	require.NoError(t, err)
	assert.Equal(t, "tub-to-shower", pt.Slug)
}

func TestDeleteProjectTypeWithShowerTypes(t *testing.T) {
	fx := newCatalogFixture()

	pt, err := fx.svc.CreateProjectType(ProjectTypeRequest{Name: "Remodel"})
	require.NoError(t, err)

	_, err = fx.svc.CreateShowerType(ShowerTypeRequest{ProjectTypeID: pt.ID, Name: "Alcove"})
	require.NoError(t, err)

	err = fx.svc.DeleteProjectType(pt.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateShowerTypeUnknownProjectType(t *testing.T) {
	fx := newCatalogFixture()

	_, err := fx.svc.CreateShowerType(ShowerTypeRequest{ProjectTypeID: uuid.New(), Name: "Alcove"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCatalogAssemblesTree(t *testing.T) {
	fx := newCatalogFixture()
	ctx := context.Background()

	st := &models.ShowerType{Name: "Alcove"}
	require.NoError(t, fx.showerTypes.Create(st))

	cat := &models.Category{ShowerTypeID: st.ID, Name: "Walls", Slug: "walls", ZIndex: 1}
	require.NoError(t, fx.categories.Create(cat))

	sub := &models.Subcategory{CategoryID: cat.ID, Name: "Wall Panels", Slug: "wall-panels"}
	require.NoError(t, fx.subcategories.Create(sub))
	fx.subcategories.showerTypes[sub.ID] = st.ID

	p := &models.Product{SubcategoryID: sub.ID, Name: "Smooth Panel", Slug: "smooth-panel"}
	require.NoError(t, fx.products.Create(p))
	fx.products.showerTypes[p.ID] = st.ID

	tree, err := fx.svc.GetCatalog(ctx, st.ID)
	require.NoError(t, err)

	assert.Equal(t, st.ID, tree.ShowerType.ID)
	require.Len(t, tree.Categories, 1)
	require.Len(t, tree.Categories[0].Subcategories, 1)
	require.Len(t, tree.Categories[0].Subcategories[0].Products, 1)
	assert.Equal(t, "smooth-panel", tree.Categories[0].Subcategories[0].Products[0].Slug)

	// Second read is served from the cache entry written by the first
	assert.NotEmpty(t, fx.cache.entries[st.ID.String()])
	again, err := fx.svc.GetCatalog(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, tree.ShowerType.ID, again.ShowerType.ID)
}

func TestGetCatalogUnknownShowerType(t *testing.T) {
	fx := newCatalogFixture()

	_, err := fx.svc.GetCatalog(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCatalogIgnoresCorruptCacheEntry(t *testing.T) {
	fx := newCatalogFixture()
	ctx := context.Background()

	st := &models.ShowerType{Name: "Alcove"}
	require.NoError(t, fx.showerTypes.Create(st))

	fx.cache.entries[st.ID.String()] = "{not json"

	tree, err := fx.svc.GetCatalog(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, st.ID, tree.ShowerType.ID)
}

func TestCreateCategorySlugConflict(t *testing.T) {
	fx := newCatalogFixture()
	ctx := context.Background()

	st := &models.ShowerType{Name: "Alcove"}
	require.NoError(t, fx.showerTypes.Create(st))

	catSvc := NewCategoryService(fx.categories, fx.subcategories, fx.showerTypes, fx.cache)

	_, err := catSvc.CreateCategory(ctx, CategoryRequest{ShowerTypeID: st.ID, Name: "Walls"})
	require.NoError(t, err)

	_, err = catSvc.CreateCategory(ctx, CategoryRequest{ShowerTypeID: st.ID, Name: "Walls"})
	assert.ErrorIs(t, err, ErrConflict)

	// Same slug on another shower type is fine
	other := &models.ShowerType{Name: "Corner"}
	require.NoError(t, fx.showerTypes.Create(other))
	_, err = catSvc.CreateCategory(ctx, CategoryRequest{ShowerTypeID: other.ID, Name: "Walls"})
	assert.NoError(t, err)
}

func TestCategoryMutationsInvalidateCache(t *testing.T) {
	fx := newCatalogFixture()
	ctx := context.Background()

	st := &models.ShowerType{Name: "Alcove"}
	require.NoError(t, fx.showerTypes.Create(st))

	catSvc := NewCategoryService(fx.categories, fx.subcategories, fx.showerTypes, fx.cache)

	cat, err := catSvc.CreateCategory(ctx, CategoryRequest{ShowerTypeID: st.ID, Name: "Walls"})
	require.NoError(t, err)

	_, err = catSvc.UpdateCategory(ctx, cat.ID, CategoryRequest{ShowerTypeID: st.ID, Name: "Wall Systems"})
	require.NoError(t, err)

	require.NoError(t, catSvc.DeleteCategory(ctx, cat.ID))

	assert.Equal(t, []string{st.ID.String(), st.ID.String(), st.ID.String()}, fx.cache.invalidated)
}
