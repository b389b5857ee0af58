package post

import (
	"context"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"photoblog-backend/internal/core/authz"
)

// ListResult pairs a page of posts with the total matching count.
type ListResult struct {
	Posts []PostDTO
	Total int64
}

// Service is the post business-logic contract.
type Service interface {
	Create(ctx context.Context, actor *authz.Actor, payload []byte) (*PostDTO, error)
	Get(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*PostDTO, error)
	GetBySlug(ctx context.Context, actor *authz.Actor, slug string) (*PostDTO, error)
	Update(ctx context.Context, actor *authz.Actor, id uuid.UUID, payload []byte) (*PostDTO, error)
	List(ctx context.Context, actor *authz.Actor, filter ListFilter) (*ListResult, error)
	ExportToExcel(ctx context.Context, actor *authz.Actor, filter ListFilter) (*excelize.File, error)

	Publish(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*PostDTO, error)
	Unpublish(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*PostDTO, error)
	Trash(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*PostDTO, error)
	Restore(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*PostDTO, error)
	Destroy(ctx context.Context, actor *authz.Actor, id uuid.UUID) error

	Like(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*PostDTO, error)
	Unlike(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*PostDTO, error)
}
