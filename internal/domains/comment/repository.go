package comment

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for comments.
type Repository interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListBySubject(ctx context.Context, kind Kind, subjectID uuid.UUID, limit, offset int) ([]*Comment, int64, error)
}
