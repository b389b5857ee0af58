package comment

import (
	"time"

	"github.com/google/uuid"
)

// CommentDTO is the serialized comment projection.
type CommentDTO struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	SubjectID uuid.UUID `json:"subject_id"`
	Body      string    `json:"body"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Comment) ToDTO() CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		Kind:      c.Kind,
		SubjectID: c.SubjectID,
		Body:      c.Body,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
