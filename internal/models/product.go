package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID            uuid.UUID `json:"id"`
	SubcategoryID uuid.UUID `json:"subcategory_id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	ImageURL      string    `json:"image_url"`
	ZIndex        *int      `json:"z_index,omitempty"` // nil inherits from subcategory/category
	DisplayOrder  int       `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
}

func (p *Product) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
}

// ProductVariant is a color/finish option of a product. ImageURLLeft and
// ImageURLRight are optional side-specific renders; when one side is
// missing the other side's image is mirrored at display time.
type ProductVariant struct {
	ID              uuid.UUID      `json:"id"`
	ProductID       uuid.UUID      `json:"product_id"`
	ColorName       string         `json:"color_name"`
	ImageURL        string         `json:"image_url"`
	ImageURLLeft    string         `json:"image_url_left,omitempty"`
	ImageURLRight   string         `json:"image_url_right,omitempty"`
	PlumbingConfig  PlumbingConfig `json:"plumbing_config"`
	PriceDeltaCents int64          `json:"price_delta_cents"`
	DisplayOrder    int            `json:"display_order"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (v *ProductVariant) Prepare() {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.PlumbingConfig == "" {
		v.PlumbingConfig = PlumbingBoth
	}
}

// SideImageURL returns the render for the requested plumbing side, falling
// back to the neutral image when no side-specific one exists. The second
// return value reports whether the caller needs to mirror the URL.
func (v *ProductVariant) SideImageURL(side PlumbingConfig) (string, bool) {
	switch side {
	case PlumbingLeft:
		if v.ImageURLLeft != "" {
			return v.ImageURLLeft, false
		}
		if v.ImageURLRight != "" {
			return v.ImageURLRight, true
		}
	case PlumbingRight:
		if v.ImageURLRight != "" {
			return v.ImageURLRight, false
		}
		if v.ImageURLLeft != "" {
			return v.ImageURLLeft, true
		}
	}
	return v.ImageURL, false
}
