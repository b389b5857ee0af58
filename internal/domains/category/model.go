package category

import (
	"github.com/google/uuid"

	"photoblog-backend/internal/shared/entity"
)

// Kind discriminates what a category groups.
type Kind string

const (
	KindPost  Kind = "post"
	KindImage Kind = "image"
)

func (k Kind) IsValid() bool {
	return k == KindPost || k == KindImage
}

// Category groups posts or images. Like tags, categories have no publish or
// trash state.
type Category struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Kind        Kind      `db:"kind" json:"kind"`
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description,omitempty"`

	entity.Timestamps
}
