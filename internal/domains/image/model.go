package image

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"photoblog-backend/internal/shared/entity"
)

// Image is a photograph with its three stored variants. URL fields point at
// object storage; EXIF fields are optional and kept exact as decimals.
type Image struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Title       string      `db:"title" json:"title"`
	Slug        string      `db:"slug" json:"slug"`
	Description string      `db:"description" json:"description,omitempty"`
	Original    string      `db:"original" json:"original"`
	Half        string      `db:"half" json:"half"`
	Thumbnail   string      `db:"thumbnail" json:"thumbnail"`
	CategoryID  *uuid.UUID  `db:"category_id" json:"category_id,omitempty"`
	TagIDs      []uuid.UUID `db:"tag_ids" json:"tag_ids"`

	// EXIF
	Aperture    decimal.NullDecimal `db:"aperture" json:"aperture,omitempty"`
	FocalLength decimal.NullDecimal `db:"focal_length" json:"focal_length,omitempty"`
	ISO         *int                `db:"iso" json:"iso,omitempty"`

	entity.Authored
	entity.Published
	entity.Trashed
	entity.Likes
	entity.Timestamps
}
