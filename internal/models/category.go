package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID           uuid.UUID `json:"id"`
	ShowerTypeID uuid.UUID `json:"shower_type_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ZIndex       int       `json:"z_index"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c *Category) Prepare() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
}

type Subcategory struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ZIndex       *int      `json:"z_index,omitempty"` // nil inherits the category z-index
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Subcategory) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
}
