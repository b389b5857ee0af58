package tag

import (
	"context"

	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
)

// Service is the tag business-logic contract. Membership reports how many
// posts and images carry the tag; the paginated membership fetch itself
// lives on the post and image listings filtered by tag.
type Service interface {
	Create(ctx context.Context, actor *authz.Actor, payload []byte) (*TagDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*TagDTO, error)
	GetBySlug(ctx context.Context, slug string) (*TagDTO, error)
	Update(ctx context.Context, actor *authz.Actor, id uuid.UUID, payload []byte) (*TagDTO, error)
	Delete(ctx context.Context, actor *authz.Actor, id uuid.UUID) error
	List(ctx context.Context) ([]TagDTO, error)
	Membership(ctx context.Context, id uuid.UUID) (*MembershipDTO, error)
}
