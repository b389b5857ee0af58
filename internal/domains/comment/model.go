package comment

import (
	"github.com/google/uuid"

	"photoblog-backend/internal/shared/entity"
)

// Kind discriminates what a comment is attached to.
type Kind string

const (
	KindPost  Kind = "post"
	KindImage Kind = "image"
)

func (k Kind) IsValid() bool {
	return k == KindPost || k == KindImage
}

// Comment is a short reply on a post or an image. Comments have no publish
// state: they are visible as soon as they exist.
type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Kind      Kind      `db:"kind" json:"kind"`
	SubjectID uuid.UUID `db:"subject_id" json:"subject_id"`
	Body      string    `db:"body" json:"body"`

	entity.Authored
	entity.Timestamps
}
