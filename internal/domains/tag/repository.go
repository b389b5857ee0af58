package tag

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for tags.
type Repository interface {
	Create(ctx context.Context, t *Tag) error
	GetByID(ctx context.Context, id uuid.UUID) (*Tag, error)
	GetBySlug(ctx context.Context, slug string) (*Tag, error)
	Update(ctx context.Context, t *Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Tag, error)
}
