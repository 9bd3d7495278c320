package models

import (
	"time"

	"github.com/google/uuid"
)

// Design is a saved configuration: a shower type, a plumbing orientation
// and one selected variant per product.
type Design struct {
	ID             uuid.UUID         `json:"id"`
	UserID         *uuid.UUID        `json:"user_id,omitempty"` // nil for anonymous saves
	Name           string            `json:"name"`
	ShowerTypeID   uuid.UUID         `json:"shower_type_id"`
	PlumbingConfig PlumbingConfig    `json:"plumbing_config"`
	Selections     []DesignSelection `json:"selections"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (d *Design) Prepare() {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.PlumbingConfig == "" {
		d.PlumbingConfig = PlumbingBoth
	}
}

type DesignSelection struct {
	ID        uuid.UUID `json:"id"`
	DesignID  uuid.UUID `json:"design_id"`
	ProductID uuid.UUID `json:"product_id"`
	VariantID uuid.UUID `json:"variant_id"`
}

func (s *DesignSelection) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
}

// LayerRow is one selection joined with the catalog fields needed to
// resolve its stacking order and image. Repositories produce these rows;
// the design service turns them into ordered DesignLayers.
type LayerRow struct {
	ProductID          uuid.UUID
	ProductName        string
	ProductZIndex      *int
	SubcategoryZIndex  *int
	CategoryZIndex     int
	ProductOrder       int
	Variant            ProductVariant
}

// DesignLayer is one image in the resolved stack, bottom-first.
type DesignLayer struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	VariantID   uuid.UUID `json:"variant_id"`
	ColorName   string    `json:"color_name"`
	ImageURL    string    `json:"image_url"`
	Mirrored    bool      `json:"mirrored"`
	ZIndex      float64   `json:"z_index"`
}
