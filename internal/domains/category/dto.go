package category

import (
	"time"

	"github.com/google/uuid"
)

// CategoryDTO is the serialized category projection.
type CategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *Category) ToDTO() CategoryDTO {
	return CategoryDTO{
		ID:          c.ID,
		Kind:        c.Kind,
		Title:       c.Title,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
