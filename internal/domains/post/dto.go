package post

import (
	"time"

	"github.com/google/uuid"
)

// PostDTO is the serialized post projection.
type PostDTO struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Body        string      `json:"body"`
	CategoryID  *uuid.UUID  `json:"category_id,omitempty"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
	AuthorID    uuid.UUID   `json:"author_id"`
	LikeCount   int         `json:"like_count"`
	PublishedAt *time.Time  `json:"published_at,omitempty"`
	TrashedAt   *time.Time  `json:"trashed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (p *Post) ToDTO() PostDTO {
	return PostDTO{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Body:        p.Body,
		CategoryID:  p.CategoryID,
		TagIDs:      p.TagIDs,
		AuthorID:    p.AuthorID,
		LikeCount:   p.LikeCount,
		PublishedAt: p.PublishedAt,
		TrashedAt:   p.TrashedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
