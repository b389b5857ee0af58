package image

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ListFilter narrows image listings; PublishedOnly mirrors the post listing
// predicate for non-administrators.
type ListFilter struct {
	PublishedOnly bool
	CategoryID    *uuid.UUID
	TagID         *uuid.UUID
	Limit         int
	Offset        int
}

// Repository is the persistence contract for images.
type Repository interface {
	Create(ctx context.Context, i *Image) error
	GetByID(ctx context.Context, id uuid.UUID) (*Image, error)
	Update(ctx context.Context, i *Image) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]*Image, int64, error)

	// Tag membership helper used by the tag domain.
	CountByTag(ctx context.Context, tagID uuid.UUID) (int64, error)

	// PurgeTrashedBefore hard-deletes images trashed before cutoff; only the
	// nightly maintenance job calls it.
	PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
