package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectType groups shower types by the kind of remodel ('shower',
// 'tub-to-shower', 'bath').
type ProjectType struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *ProjectType) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
}

// ShowerType is a concrete configurable layout (e.g. "alcove 60in").
// BaseImageURL is the 2D backdrop the configurator composites layers onto.
type ShowerType struct {
	ID            uuid.UUID `json:"id"`
	ProjectTypeID uuid.UUID `json:"project_type_id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	BaseImageURL  string    `json:"base_image_url"`
	CreatedAt     time.Time `json:"created_at"`
}

func (s *ShowerType) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
}
