package tag

import (
	"time"

	"github.com/google/uuid"
)

// TagDTO is the serialized tag projection.
type TagDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Tag) ToDTO() TagDTO {
	return TagDTO{
		ID:        t.ID,
		Title:     t.Title,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
	}
}

// MembershipDTO reports how many posts and images carry a tag.
type MembershipDTO struct {
	Tag        TagDTO `json:"tag"`
	PostCount  int64  `json:"post_count"`
	ImageCount int64  `json:"image_count"`
}
