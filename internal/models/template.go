package models

import (
	"time"

	"github.com/google/uuid"
)

// Template entities form an admin-defined prototype tree. Instantiation
// copies the tree into concrete catalog records bound to a shower type.

type TemplateCategory struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ZIndex       int       `json:"z_index"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (t *TemplateCategory) Prepare() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
}

type TemplateSubcategory struct {
	ID                 uuid.UUID `json:"id"`
	TemplateCategoryID uuid.UUID `json:"template_category_id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	ZIndex             *int      `json:"z_index,omitempty"`
	DisplayOrder       int       `json:"display_order"`
	CreatedAt          time.Time `json:"created_at"`
}

func (t *TemplateSubcategory) Prepare() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
}

type TemplateProduct struct {
	ID                    uuid.UUID `json:"id"`
	TemplateSubcategoryID uuid.UUID `json:"template_subcategory_id"`
	Name                  string    `json:"name"`
	Slug                  string    `json:"slug"`
	ImageURL              string    `json:"image_url"`
	ZIndex                *int      `json:"z_index,omitempty"`
	DisplayOrder          int       `json:"display_order"`
	CreatedAt             time.Time `json:"created_at"`
}

func (t *TemplateProduct) Prepare() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
}

type TemplateVariant struct {
	ID                uuid.UUID      `json:"id"`
	TemplateProductID uuid.UUID      `json:"template_product_id"`
	ColorName         string         `json:"color_name"`
	ImageURL          string         `json:"image_url"`
	ImageURLLeft      string         `json:"image_url_left,omitempty"`
	ImageURLRight     string         `json:"image_url_right,omitempty"`
	PlumbingConfig    PlumbingConfig `json:"plumbing_config"`
	PriceDeltaCents   int64          `json:"price_delta_cents"`
	DisplayOrder      int            `json:"display_order"`
	CreatedAt         time.Time      `json:"created_at"`
}

func (t *TemplateVariant) Prepare() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.PlumbingConfig == "" {
		t.PlumbingConfig = PlumbingBoth
	}
}

// TemplateTree is the fully loaded prototype, grouped by parent so the
// instantiation service can walk it without further queries.
type TemplateTree struct {
	Categories    []TemplateCategory
	Subcategories map[uuid.UUID][]TemplateSubcategory // keyed by template category ID
	Products      map[uuid.UUID][]TemplateProduct     // keyed by template subcategory ID
	Variants      map[uuid.UUID][]TemplateVariant     // keyed by template product ID
}
