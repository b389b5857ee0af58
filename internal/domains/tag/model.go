package tag

import (
	"github.com/google/uuid"

	"photoblog-backend/internal/shared/entity"
)

// Tag labels posts and images. Tags have no publish or trash state.
type Tag struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Title string    `db:"title" json:"title"`
	Slug  string    `db:"slug" json:"slug"`

	entity.Timestamps
}
