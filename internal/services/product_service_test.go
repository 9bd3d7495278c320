package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
)

func newProductServiceForTest() (*ProductService, *fakeProductStore, *fakeVariantStore, *fakeSubcategoryStore, *fakeCache) {
	products := newFakeProductStore()
	variants := newFakeVariantStore()
	subcategories := newFakeSubcategoryStore()
	cache := newFakeCache()
	svc := NewProductService(products, variants, subcategories, cache)
	return svc, products, variants, subcategories, cache
}

func TestCreateProduct(t *testing.T) {
	svc, _, _, subcategories, cache := newProductServiceForTest()
	ctx := context.Background()

	sub := &models.Subcategory{Name: "Wall Panels"}
	require.NoError(t, subcategories.Create(sub))
	showerTypeID := uuid.New()
	subcategories.showerTypes[sub.ID] = showerTypeID

	p, err := svc.CreateProduct(ctx, ProductRequest{
		SubcategoryID: sub.ID,
		Name:          "Smooth Panel",
	})
	require.NoError(t, err)
	assert.Equal(t, "smooth-panel", p.Slug)
	assert.Equal(t, []string{showerTypeID.String()}, cache.invalidated)
}

func TestCreateProductUnknownSubcategory(t *testing.T) {
	svc, _, _, _, _ := newProductServiceForTest()

	_, err := svc.CreateProduct(context.Background(), ProductRequest{
		SubcategoryID: uuid.New(),
		Name:          "Smooth Panel",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateVariantColorConflict(t *testing.T) {
	svc, products, _, _, _ := newProductServiceForTest()
	ctx := context.Background()

	p := &models.Product{Name: "Smooth Panel"}
	require.NoError(t, products.Create(p))

	_, err := svc.CreateVariant(ctx, VariantRequest{ProductID: p.ID, ColorName: "white"})
	require.NoError(t, err)

	_, err = svc.CreateVariant(ctx, VariantRequest{ProductID: p.ID, ColorName: "white"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateVariantKeepingOwnColor(t *testing.T) {
	svc, products, _, _, _ := newProductServiceForTest()
	ctx := context.Background()

	p := &models.Product{Name: "Smooth Panel"}
	require.NoError(t, products.Create(p))

	v, err := svc.CreateVariant(ctx, VariantRequest{ProductID: p.ID, ColorName: "white"})
	require.NoError(t, err)

	// Renaming a variant to its own color is not a conflict
	updated, err := svc.UpdateVariant(ctx, v.ID, VariantRequest{ProductID: p.ID, ColorName: "white", PriceDeltaCents: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(500), updated.PriceDeltaCents)
}

func TestCreateVariantRejectsBadPlumbing(t *testing.T) {
	svc, products, _, _, _ := newProductServiceForTest()

	p := &models.Product{Name: "Smooth Panel"}
	require.NoError(t, products.Create(p))

	_, err := svc.CreateVariant(context.Background(), VariantRequest{
		ProductID:      p.ID,
		ColorName:      "white",
		PlumbingConfig: "MIDDLE",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteVariantReferencedByDesign(t *testing.T) {
	svc, products, variants, _, _ := newProductServiceForTest()
	ctx := context.Background()

	p := &models.Product{Name: "Smooth Panel"}
	require.NoError(t, products.Create(p))

	v, err := svc.CreateVariant(ctx, VariantRequest{ProductID: p.ID, ColorName: "white"})
	require.NoError(t, err)

	variants.designRefs[v.ID] = 3

	err = svc.DeleteVariant(ctx, v.ID)
	assert.ErrorIs(t, err, ErrValidation)

	// Still deletable once nothing references it
	variants.designRefs[v.ID] = 0
	assert.NoError(t, svc.DeleteVariant(ctx, v.ID))
}

func TestListVariantsForPlumbing(t *testing.T) {
	svc, products, _, _, _ := newProductServiceForTest()
	ctx := context.Background()

	p := &models.Product{Name: "Glass Door"}
	require.NoError(t, products.Create(p))

	_, err := svc.CreateVariant(ctx, VariantRequest{ProductID: p.ID, ColorName: "clear", PlumbingConfig: models.PlumbingBoth})
	require.NoError(t, err)
	left, err := svc.CreateVariant(ctx, VariantRequest{ProductID: p.ID, ColorName: "clear-left", PlumbingConfig: models.PlumbingLeft})
	require.NoError(t, err)

	variants, selected, err := svc.ListVariantsForPlumbing(p.ID, models.PlumbingLeft)
	require.NoError(t, err)
	assert.Len(t, variants, 2)
	require.NotNil(t, selected)
	assert.Equal(t, left.ID, selected.ID)

	_, _, err = svc.ListVariantsForPlumbing(p.ID, "DIAGONAL")
	assert.ErrorIs(t, err, ErrValidation)
}
