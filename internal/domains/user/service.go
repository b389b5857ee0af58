package user

import (
	"context"

	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
)

// Service is the account business-logic contract. Write operations take the
// raw request payload; field mapping and permission voting happen inside.
type Service interface {
	Register(ctx context.Context, actor *authz.Actor, payload []byte) (*UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error)

	Get(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*UserDTO, error)
	Update(ctx context.Context, actor *authz.Actor, id uuid.UUID, payload []byte) (*UserDTO, error)
	Delete(ctx context.Context, actor *authz.Actor, id uuid.UUID) error
	ChangePassword(ctx context.Context, actor *authz.Actor, req ChangePasswordRequest) error

	GetProfile(ctx context.Context, actor *authz.Actor, userID uuid.UUID) (*ProfileDTO, error)
	UpdateProfile(ctx context.Context, actor *authz.Actor, userID uuid.UUID, payload []byte) (*ProfileDTO, error)
}
