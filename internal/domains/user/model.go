package user

import (
	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
	"photoblog-backend/internal/shared/entity"
)

// User is the account entity. Soft-deleted accounts keep their row until the
// purge job removes them.
type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         authz.Role `db:"role" json:"role"`

	entity.Trashed
	entity.Timestamps

	// plainPassword holds the mapped password between field mapping and
	// hashing; never persisted.
	plainPassword string
}

// AccountID implements authz.Account: owning a user means being that user.
func (u *User) AccountID() uuid.UUID {
	return u.ID
}

// PlainPassword returns the password captured during mapping.
func (u *User) PlainPassword() string {
	return u.plainPassword
}

// Profile carries the public-facing extras of an account. Profiles are
// created exclusively as a side effect of registration.
type Profile struct {
	ID     uuid.UUID `db:"id" json:"id"`
	UserID uuid.UUID `db:"user_id" json:"user_id"`
	Avatar string    `db:"avatar" json:"avatar,omitempty"`

	entity.Timestamps
}

// OwnerID implements authz.OwnedProfile.
func (p *Profile) OwnerID() uuid.UUID {
	return p.UserID
}
