package post

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ListFilter narrows post listings. PublishedOnly injects the
// "published_at IS NOT NULL" predicate for non-administrator requests.
type ListFilter struct {
	PublishedOnly bool
	CategoryID    *uuid.UUID
	TagID         *uuid.UUID
	Limit         int
	Offset        int
}

// Repository is the persistence contract for posts.
type Repository interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]*Post, int64, error)

	// Tag membership helpers used by the tag domain.
	CountByTag(ctx context.Context, tagID uuid.UUID) (int64, error)

	// PurgeTrashedBefore hard-deletes posts trashed before cutoff; only the
	// nightly maintenance job calls it.
	PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
