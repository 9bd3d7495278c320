package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/itsfarrukhali/bathfitter-backend/internal/database"
	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
)

func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("bathfitter_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(pool))
	// Migrations are idempotent
	require.NoError(t, database.RunMigrations(pool))

	return pool
}

// seedShowerType inserts a project type and a shower type under it.
func seedShowerType(t *testing.T, pool *pgxpool.Pool, name string) *models.ShowerType {
	t.Helper()

	projectTypes := NewProjectTypeRepository(pool)
	showerTypes := NewShowerTypeRepository(pool)

	pt := &models.ProjectType{Name: name + " project", Slug: name + "-project"}
	require.NoError(t, projectTypes.Create(pt))

	st := &models.ShowerType{ProjectTypeID: pt.ID, Name: name, Slug: name}
	require.NoError(t, showerTypes.Create(st))
	return st
}

func TestCatalogRepositories(t *testing.T) {
	pool := setupTestPool(t)

	categories := NewCategoryRepository(pool)
	subcategories := NewSubcategoryRepository(pool)
	products := NewProductRepository(pool)
	variants := NewVariantRepository(pool)

	st := seedShowerType(t, pool, "alcove")

	cat := &models.Category{ShowerTypeID: st.ID, Name: "Walls", Slug: "walls", ZIndex: 1}
	require.NoError(t, categories.Create(cat))

	t.Run("category roundtrip", func(t *testing.T) {
		got, err := categories.GetByID(cat.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "walls", got.Slug)
		assert.Equal(t, 1, got.ZIndex)

		exists, err := categories.ExistsSlug(st.ID, "walls")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = categories.ExistsSlug(st.ID, "floors")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("missing rows come back nil", func(t *testing.T) {
		got, err := categories.GetByID(uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	sub := &models.Subcategory{CategoryID: cat.ID, Name: "Wall Panels", Slug: "wall-panels"}
	require.NoError(t, subcategories.Create(sub))

	t.Run("subcategory resolves its shower type", func(t *testing.T) {
		id, err := subcategories.ShowerTypeID(sub.ID)
		require.NoError(t, err)
		assert.Equal(t, st.ID, id)
	})

	nine := 9
	p := &models.Product{SubcategoryID: sub.ID, Name: "Smooth Panel", Slug: "smooth-panel", ZIndex: &nine}
	require.NoError(t, products.Create(p))

	t.Run("product z-index survives the roundtrip", func(t *testing.T) {
		got, err := products.GetByID(p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.ZIndex)
		assert.Equal(t, 9, *got.ZIndex)
	})

	v := &models.ProductVariant{
		ProductID:       p.ID,
		ColorName:       "white",
		ImageURL:        "https://example.test/white.png",
		PlumbingConfig:  models.PlumbingBoth,
		PriceDeltaCents: 2500,
	}
	require.NoError(t, variants.Create(v))

	t.Run("variant color uniqueness", func(t *testing.T) {
		exists, err := variants.ExistsColorName(p.ID, "white", uuid.Nil)
		require.NoError(t, err)
		assert.True(t, exists)

		// The variant itself is excluded when checking for rename conflicts
		exists, err = variants.ExistsColorName(p.ID, "white", v.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("list by shower type spans the joins", func(t *testing.T) {
		listed, err := products.ListByShowerType(st.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)

		vs, err := variants.ListByShowerType(st.ID)
		require.NoError(t, err)
		require.Len(t, vs, 1)
		assert.Equal(t, int64(2500), vs[0].PriceDeltaCents)
	})
}

func TestTemplateInstantiationRepository(t *testing.T) {
	pool := setupTestPool(t)

	templates := NewTemplateRepository(pool)
	categories := NewCategoryRepository(pool)

	tc := &models.TemplateCategory{Name: "Walls", Slug: "walls", ZIndex: 1}
	require.NoError(t, templates.CreateCategory(tc))
	ts := &models.TemplateSubcategory{TemplateCategoryID: tc.ID, Name: "Wall Panels", Slug: "wall-panels"}
	require.NoError(t, templates.CreateSubcategory(ts))
	tp := &models.TemplateProduct{TemplateSubcategoryID: ts.ID, Name: "Smooth Panel", Slug: "smooth-panel"}
	require.NoError(t, templates.CreateProduct(tp))
	tv := &models.TemplateVariant{TemplateProductID: tp.ID, ColorName: "white", PlumbingConfig: models.PlumbingBoth}
	require.NoError(t, templates.CreateVariant(tv))

	tree, err := templates.GetTree()
	require.NoError(t, err)
	require.Len(t, tree.Categories, 1)
	require.Len(t, tree.Subcategories[tc.ID], 1)
	require.Len(t, tree.Products[ts.ID], 1)
	require.Len(t, tree.Variants[tp.ID], 1)

	st := seedShowerType(t, pool, "corner")

	cat := models.Category{ShowerTypeID: st.ID, Name: "Walls", Slug: "walls", ZIndex: 1}
	cat.Prepare()
	sub := models.Subcategory{CategoryID: cat.ID, Name: "Wall Panels", Slug: "wall-panels"}
	sub.Prepare()
	p := models.Product{SubcategoryID: sub.ID, Name: "Smooth Panel", Slug: "smooth-panel"}
	p.Prepare()
	v := models.ProductVariant{ProductID: p.ID, ColorName: "white", PlumbingConfig: models.PlumbingBoth}
	v.Prepare()

	require.NoError(t, templates.InsertInstance(
		[]models.Category{cat},
		[]models.Subcategory{sub},
		[]models.Product{p},
		[]models.ProductVariant{v},
	))

	listed, err := categories.ListByShowerType(st.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "walls", listed[0].Slug)
}

func TestDesignRepository(t *testing.T) {
	pool := setupTestPool(t)

	categories := NewCategoryRepository(pool)
	subcategories := NewSubcategoryRepository(pool)
	products := NewProductRepository(pool)
	variants := NewVariantRepository(pool)
	designs := NewDesignRepository(pool)

	st := seedShowerType(t, pool, "walk-in")

	cat := &models.Category{ShowerTypeID: st.ID, Name: "Doors", Slug: "doors", ZIndex: 7}
	require.NoError(t, categories.Create(cat))
	sub := &models.Subcategory{CategoryID: cat.ID, Name: "Glass Doors", Slug: "glass-doors"}
	require.NoError(t, subcategories.Create(sub))
	p := &models.Product{SubcategoryID: sub.ID, Name: "Sliding Door", Slug: "sliding-door"}
	require.NoError(t, products.Create(p))
	v := &models.ProductVariant{
		ProductID:      p.ID,
		ColorName:      "frosted",
		ImageURL:       "https://example.test/door.png",
		ImageURLRight:  "https://example.test/door-right.png",
		PlumbingConfig: models.PlumbingBoth,
	}
	require.NoError(t, variants.Create(v))

	d := &models.Design{
		Name:           "Guest bath",
		ShowerTypeID:   st.ID,
		PlumbingConfig: models.PlumbingLeft,
		Selections:     []models.DesignSelection{{ProductID: p.ID, VariantID: v.ID}},
	}
	require.NoError(t, designs.Create(d))

	t.Run("create stamps timestamps on the model", func(t *testing.T) {
		assert.False(t, d.CreatedAt.IsZero())
		assert.False(t, d.UpdatedAt.IsZero())
	})

	t.Run("roundtrip with selections", func(t *testing.T) {
		got, err := designs.GetByID(d.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.PlumbingLeft, got.PlumbingConfig)
		require.Len(t, got.Selections, 1)
		assert.Equal(t, v.ID, got.Selections[0].VariantID)
	})

	t.Run("layer rows join the whole hierarchy", func(t *testing.T) {
		rows, err := designs.GetLayerRows(d.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Sliding Door", rows[0].ProductName)
		assert.Equal(t, 7, rows[0].CategoryZIndex)
		assert.Equal(t, "https://example.test/door-right.png", rows[0].Variant.ImageURLRight)
	})

	t.Run("selection counts as a design reference", func(t *testing.T) {
		refs, err := variants.CountDesignReferences(v.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), refs)
	})

	t.Run("update replaces the selection set", func(t *testing.T) {
		v2 := &models.ProductVariant{ProductID: p.ID, ColorName: "clear", PlumbingConfig: models.PlumbingBoth}
		require.NoError(t, variants.Create(v2))

		before := d.UpdatedAt
		d.Selections = []models.DesignSelection{{ProductID: p.ID, VariantID: v2.ID}}
		require.NoError(t, designs.Update(d))
		assert.True(t, d.UpdatedAt.After(before))

		got, err := designs.GetByID(d.ID)
		require.NoError(t, err)
		require.Len(t, got.Selections, 1)
		assert.Equal(t, v2.ID, got.Selections[0].VariantID)

		refs, err := variants.CountDesignReferences(v.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), refs)
	})

	t.Run("delete removes design and selections", func(t *testing.T) {
		require.NoError(t, designs.Delete(d.ID))

		got, err := designs.GetByID(d.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// Deleting a product must cascade through its variants into design
// selections instead of tripping a foreign key violation.
func TestProductDeleteCascadesIntoDesignSelections(t *testing.T) {
	pool := setupTestPool(t)

	categories := NewCategoryRepository(pool)
	subcategories := NewSubcategoryRepository(pool)
	products := NewProductRepository(pool)
	variants := NewVariantRepository(pool)
	designs := NewDesignRepository(pool)

	st := seedShowerType(t, pool, "tub")

	cat := &models.Category{ShowerTypeID: st.ID, Name: "Rods", Slug: "rods", ZIndex: 8}
	require.NoError(t, categories.Create(cat))
	sub := &models.Subcategory{CategoryID: cat.ID, Name: "Curtain Rods", Slug: "curtain-rods"}
	require.NoError(t, subcategories.Create(sub))
	p := &models.Product{SubcategoryID: sub.ID, Name: "Curved Rod", Slug: "curved-rod"}
	require.NoError(t, products.Create(p))
	v := &models.ProductVariant{ProductID: p.ID, ColorName: "chrome", PlumbingConfig: models.PlumbingBoth}
	require.NoError(t, variants.Create(v))

	d := &models.Design{
		Name:           "Kids bath",
		ShowerTypeID:   st.ID,
		PlumbingConfig: models.PlumbingBoth,
		Selections:     []models.DesignSelection{{ProductID: p.ID, VariantID: v.ID}},
	}
	require.NoError(t, designs.Create(d))

	require.NoError(t, products.Delete(p.ID))

	got, err := designs.GetByID(d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Selections)

	refs, err := variants.CountDesignReferences(v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), refs)
}
