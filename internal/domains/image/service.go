package image

import (
	"context"

	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
)

// Upload carries a raw file plus the metadata payload accompanying it.
type Upload struct {
	Filename string
	Data     []byte
	Meta     []byte // JSON payload: title, description, category, tags, EXIF
}

// ListResult pairs a page of images with the total matching count.
type ListResult struct {
	Images []ImageDTO
	Total  int64
}

// Service is the image business-logic contract. Upload runs the full
// pipeline: validate file, derive variants, store them, then map the
// metadata payload onto a new entity whose URL fields point at storage.
type Service interface {
	Upload(ctx context.Context, actor *authz.Actor, up Upload) (*ImageDTO, error)
	Get(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*ImageDTO, error)
	Update(ctx context.Context, actor *authz.Actor, id uuid.UUID, payload []byte) (*ImageDTO, error)
	List(ctx context.Context, actor *authz.Actor, filter ListFilter) (*ListResult, error)

	Publish(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*ImageDTO, error)
	Unpublish(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*ImageDTO, error)
	Trash(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*ImageDTO, error)
	Restore(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*ImageDTO, error)
	Destroy(ctx context.Context, actor *authz.Actor, id uuid.UUID) error

	Like(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*ImageDTO, error)
	Unlike(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*ImageDTO, error)
}
