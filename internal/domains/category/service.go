package category

import (
	"context"

	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
)

// Service is the category business-logic contract. kind chooses which field
// map applies on creation.
type Service interface {
	Create(ctx context.Context, actor *authz.Actor, kind Kind, payload []byte) (*CategoryDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*CategoryDTO, error)
	GetBySlug(ctx context.Context, kind Kind, slug string) (*CategoryDTO, error)
	Update(ctx context.Context, actor *authz.Actor, id uuid.UUID, payload []byte) (*CategoryDTO, error)
	Delete(ctx context.Context, actor *authz.Actor, id uuid.UUID) error
	ListByKind(ctx context.Context, kind Kind) ([]CategoryDTO, error)
}
