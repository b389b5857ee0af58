package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
)

// ========================================
// AUTH DTOs
// ========================================

// LoginRequest authenticates by username.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse carries the JWT pair.
type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         UserDTO   `json:"user"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest - user changes own password. Strength rules mirror
// the registration field map.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword,
			validation.Required,
			validation.Length(8, 128),
			validation.Match(passwordUpper).Error("must contain uppercase letter"),
			validation.Match(passwordLower).Error("must contain lowercase letter"),
			validation.Match(passwordDigit).Error("must contain number"),
		),
	)
}

// ========================================
// USER / PROFILE DTOs
// ========================================

// UserDTO - public account representation (safe to expose).
type UserDTO struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      authz.Role `json:"role"`
	TrashedAt *time.Time `json:"trashed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		TrashedAt: u.TrashedAt,
		CreatedAt: u.CreatedAt,
	}
}

type ProfileDTO struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Profile) ToDTO() ProfileDTO {
	return ProfileDTO{
		ID:        p.ID,
		UserID:    p.UserID,
		Avatar:    p.Avatar,
		CreatedAt: p.CreatedAt,
	}
}
