package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for accounts and profiles.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	CreateProfile(ctx context.Context, p *Profile) error
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, p *Profile) error

	// PurgeTrashedBefore hard-deletes accounts trashed before cutoff,
	// returning the number of rows removed.
	PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
