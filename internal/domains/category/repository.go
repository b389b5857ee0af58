package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for categories.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetBySlug(ctx context.Context, kind Kind, slug string) (*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByKind(ctx context.Context, kind Kind) ([]*Category, error)
}
