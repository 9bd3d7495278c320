package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createEnumTypes,
		createUsersTable,
		createProjectTypesTable,
		createShowerTypesTable,
		createCategoriesTable,
		createSubcategoriesTable,
		createProductsTable,
		createProductVariantsTable,
		createTemplateTables,
		createDesignsTable,
		createDesignSelectionsTable,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createEnumTypes = `
-- Create ENUM types if they don't exist
DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'plumbing_config_t') THEN
    CREATE TYPE plumbing_config_t AS ENUM ('LEFT', 'RIGHT', 'BOTH');
  END IF;
END$$;
`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'user',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  last_login_at TIMESTAMP WITH TIME ZONE
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
`

const createProjectTypesTable = `
CREATE TABLE IF NOT EXISTS project_types (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createShowerTypesTable = `
CREATE TABLE IF NOT EXISTS shower_types (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  project_type_id UUID NOT NULL REFERENCES project_types(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  base_image_url TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_shower_types_project_type_id ON shower_types(project_type_id);
`

const createCategoriesTable = `
CREATE TABLE IF NOT EXISTS categories (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  shower_type_id UUID NOT NULL REFERENCES shower_types(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  z_index INT NOT NULL DEFAULT 0,
  display_order INT NOT NULL DEFAULT 0,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE (shower_type_id, slug)
);

CREATE INDEX IF NOT EXISTS idx_categories_shower_type_id ON categories(shower_type_id);
`

const createSubcategoriesTable = `
CREATE TABLE IF NOT EXISTS subcategories (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  z_index INT,
  display_order INT NOT NULL DEFAULT 0,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE (category_id, slug)
);

CREATE INDEX IF NOT EXISTS idx_subcategories_category_id ON subcategories(category_id);
`

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  subcategory_id UUID NOT NULL REFERENCES subcategories(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  image_url TEXT NOT NULL DEFAULT '',
  z_index INT,
  display_order INT NOT NULL DEFAULT 0,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE (subcategory_id, slug)
);

CREATE INDEX IF NOT EXISTS idx_products_subcategory_id ON products(subcategory_id);
`

const createProductVariantsTable = `
CREATE TABLE IF NOT EXISTS product_variants (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  color_name TEXT NOT NULL,
  image_url TEXT NOT NULL DEFAULT '',
  image_url_left TEXT NOT NULL DEFAULT '',
  image_url_right TEXT NOT NULL DEFAULT '',
  plumbing_config plumbing_config_t NOT NULL DEFAULT 'BOTH',
  price_delta_cents BIGINT NOT NULL DEFAULT 0,
  display_order INT NOT NULL DEFAULT 0,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE (product_id, color_name)
);

CREATE INDEX IF NOT EXISTS idx_product_variants_product_id ON product_variants(product_id);
`

const createTemplateTables = `
CREATE TABLE IF NOT EXISTS template_categories (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  z_index INT NOT NULL DEFAULT 0,
  display_order INT NOT NULL DEFAULT 0,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS template_subcategories (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  template_category_id UUID NOT NULL REFERENCES template_categories(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  z_index INT,
  display_order INT NOT NULL DEFAULT 0,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE (template_category_id, slug)
);

CREATE TABLE IF NOT EXISTS template_products (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  template_subcategory_id UUID NOT NULL REFERENCES template_subcategories(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  image_url TEXT NOT NULL DEFAULT '',
  z_index INT,
  display_order INT NOT NULL DEFAULT 0,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE (template_subcategory_id, slug)
);

CREATE TABLE IF NOT EXISTS template_variants (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  template_product_id UUID NOT NULL REFERENCES template_products(id) ON DELETE CASCADE,
  color_name TEXT NOT NULL,
  image_url TEXT NOT NULL DEFAULT '',
  image_url_left TEXT NOT NULL DEFAULT '',
  image_url_right TEXT NOT NULL DEFAULT '',
  plumbing_config plumbing_config_t NOT NULL DEFAULT 'BOTH',
  price_delta_cents BIGINT NOT NULL DEFAULT 0,
  display_order INT NOT NULL DEFAULT 0,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE (template_product_id, color_name)
);

CREATE INDEX IF NOT EXISTS idx_template_subcategories_category_id ON template_subcategories(template_category_id);
CREATE INDEX IF NOT EXISTS idx_template_products_subcategory_id ON template_products(template_subcategory_id);
CREATE INDEX IF NOT EXISTS idx_template_variants_product_id ON template_variants(template_product_id);
`

const createDesignsTable = `
CREATE TABLE IF NOT EXISTS designs (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  user_id UUID REFERENCES users(id) ON DELETE SET NULL,
  name TEXT NOT NULL,
  shower_type_id UUID NOT NULL REFERENCES shower_types(id) ON DELETE CASCADE,
  plumbing_config plumbing_config_t NOT NULL DEFAULT 'BOTH',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_designs_user_id ON designs(user_id);
CREATE INDEX IF NOT EXISTS idx_designs_shower_type_id ON designs(shower_type_id);
`

const createDesignSelectionsTable = `
CREATE TABLE IF NOT EXISTS design_selections (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  design_id UUID NOT NULL REFERENCES designs(id) ON DELETE CASCADE,
  product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  -- CASCADE so catalog subtree deletes take the selections with them; the
  -- direct variant-delete rule is enforced in the service layer.
  variant_id UUID NOT NULL REFERENCES product_variants(id) ON DELETE CASCADE,
  UNIQUE (design_id, product_id)
);

CREATE INDEX IF NOT EXISTS idx_design_selections_design_id ON design_selections(design_id);
CREATE INDEX IF NOT EXISTS idx_design_selections_variant_id ON design_selections(variant_id);
`
