package image

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImageDTO is the serialized image projection.
type ImageDTO struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Description string      `json:"description,omitempty"`
	Original    string      `json:"original"`
	Half        string      `json:"half"`
	Thumbnail   string      `json:"thumbnail"`
	CategoryID  *uuid.UUID  `json:"category_id,omitempty"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
	AuthorID    uuid.UUID   `json:"author_id"`
	LikeCount   int         `json:"like_count"`

	Aperture    *decimal.Decimal `json:"aperture,omitempty"`
	FocalLength *decimal.Decimal `json:"focal_length,omitempty"`
	ISO         *int             `json:"iso,omitempty"`

	PublishedAt *time.Time `json:"published_at,omitempty"`
	TrashedAt   *time.Time `json:"trashed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (i *Image) ToDTO() ImageDTO {
	dto := ImageDTO{
		ID:          i.ID,
		Title:       i.Title,
		Slug:        i.Slug,
		Description: i.Description,
		Original:    i.Original,
		Half:        i.Half,
		Thumbnail:   i.Thumbnail,
		CategoryID:  i.CategoryID,
		TagIDs:      i.TagIDs,
		AuthorID:    i.AuthorID,
		LikeCount:   i.LikeCount,
		ISO:         i.ISO,
		PublishedAt: i.PublishedAt,
		TrashedAt:   i.TrashedAt,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
	if i.Aperture.Valid {
		dto.Aperture = &i.Aperture.Decimal
	}
	if i.FocalLength.Valid {
		dto.FocalLength = &i.FocalLength.Decimal
	}
	return dto
}
