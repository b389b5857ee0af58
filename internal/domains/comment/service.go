package comment

import (
	"context"

	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
)

// ListResult pairs a page of comments with the total count on the subject.
type ListResult struct {
	Comments []CommentDTO
	Total    int64
}

// Service is the comment business-logic contract. kind chooses which field
// map applies; the subject reference comes from the payload itself.
type Service interface {
	Create(ctx context.Context, actor *authz.Actor, kind Kind, payload []byte) (*CommentDTO, error)
	Get(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*CommentDTO, error)
	Update(ctx context.Context, actor *authz.Actor, id uuid.UUID, payload []byte) (*CommentDTO, error)
	Delete(ctx context.Context, actor *authz.Actor, id uuid.UUID) error
	ListBySubject(ctx context.Context, kind Kind, subjectID uuid.UUID, limit, offset int) (*ListResult, error)
}
