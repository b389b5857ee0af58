package post

import (
	"github.com/google/uuid"

	"photoblog-backend/internal/shared/entity"
)

// Post is a long-form article. Posts publish immediately on construction and
// carry an optional category plus a set of tags.
type Post struct {
	ID         uuid.UUID   `db:"id" json:"id"`
	Title      string      `db:"title" json:"title"`
	Slug       string      `db:"slug" json:"slug"`
	Body       string      `db:"body" json:"body"`
	CategoryID *uuid.UUID  `db:"category_id" json:"category_id,omitempty"`
	TagIDs     []uuid.UUID `db:"tag_ids" json:"tag_ids"`

	entity.Authored
	entity.Published
	entity.Trashed
	entity.Likes
	entity.Timestamps
}
