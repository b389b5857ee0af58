package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"photoblog-backend/internal/core/authz"
	"photoblog-backend/internal/core/mapping"
	user "photoblog-backend/internal/domains/user"
	"photoblog-backend/internal/infrastructure/queue"
	"photoblog-backend/internal/shared/entity"
	"photoblog-backend/pkg/jwt"
	"photoblog-backend/pkg/logger"
)

type userService struct {
	repo       user.Repository
	authorizer *authz.Authorizer
	tokens     *jwt.Manager
	queue      queue.Enqueuer
	gen        entity.IDGenerator
	now        func() time.Time

	userConfig    mapping.Config[user.User]
	profileConfig mapping.Config[user.Profile]
}

func NewUserService(
	repo user.Repository,
	authorizer *authz.Authorizer,
	tokens *jwt.Manager,
	enqueuer queue.Enqueuer,
	gen entity.IDGenerator,
	now func() time.Time,
) user.Service {
	return &userService{
		repo:          repo,
		authorizer:    authorizer,
		tokens:        tokens,
		queue:         enqueuer,
		gen:           gen,
		now:           now,
		userConfig:    user.NewUserConfig(gen, now),
		profileConfig: user.NewProfileConfig(),
	}
}

// ========================================
// REGISTRATION / AUTH
// ========================================

func (s *userService) Register(ctx context.Context, actor *authz.Actor, payload []byte) (*user.UserDTO, error) {
	// ========== STEP 1: PERMISSION CHECK ==========
	// Registration is only open to anonymous requests; a logged-in account
	// cannot create another one.
	allowed, err := s.authorizer.Allow(authz.ActionCreate, &user.User{}, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, user.ErrForbidden
	}

	// ========== STEP 2: MAP AND VALIDATE PAYLOAD ==========
	raw, err := mapping.Decode(payload)
	if err != nil {
		return nil, err
	}

	u, err := mapping.Create(raw, s.userConfig)
	if err != nil {
		return nil, err
	}

	// ========== STEP 3: PASSWORD CONFIRMATION ==========
	confirmation, _ := raw["password_confirmation"].(string)
	if confirmation != u.PlainPassword() {
		return nil, user.ErrPasswordMismatch
	}

	// ========== STEP 4: UNIQUENESS CHECKS ==========
	if taken, err := s.repo.ExistsByUsername(ctx, u.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, user.ErrDuplicateUsername
	}

	if taken, err := s.repo.ExistsByEmail(ctx, u.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, user.ErrDuplicateEmail
	}

	// ========== STEP 5: HASH PASSWORD ==========
	hash, err := bcrypt.GenerateFromPassword([]byte(u.PlainPassword()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = string(hash)

	// ========== STEP 6: BUILD PROFILE ==========
	// Every account gets exactly one profile at registration; the payload may
	// optionally seed the avatar. The profile is mapped before anything is
	// persisted: a rejected avatar must fail the whole registration, not
	// leave an orphan account behind.
	p, err := mapping.Create(raw, s.profileConfig)
	if err != nil {
		return nil, err
	}
	p.ID = s.gen.NewID()
	p.InitTimestamps(s.now())

	// ========== STEP 7: PERSIST ACCOUNT AND PROFILE ==========
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	p.UserID = u.ID
	if err := s.repo.CreateProfile(ctx, p); err != nil {
		return nil, err
	}

	// ========== STEP 8: ENQUEUE WELCOME EMAIL ==========
	// Best effort; registration already succeeded.
	if task, err := queue.NewWelcomeEmailTask(queue.WelcomeEmailPayload{
		UserID:   u.ID,
		Email:    u.Email,
		Username: u.Username,
	}); err == nil {
		if err := s.queue.Enqueue(ctx, task); err != nil {
			logger.Error("enqueue welcome email failed", err)
		}
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	// ========== STEP 1: VALIDATE REQUEST ==========
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// ========== STEP 2: LOOK UP ACCOUNT ==========
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	// Trashed accounts behave as if they no longer exist.
	if u.IsTrashed() {
		return nil, user.ErrInvalidCredentials
	}

	// ========== STEP 3: VERIFY PASSWORD ==========
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	// ========== STEP 4: ISSUE TOKEN PAIR ==========
	return s.issueTokens(u)
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*user.LoginResponse, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}
	if u.IsTrashed() {
		return nil, user.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

func (s *userService) issueTokens(u *user.User) (*user.LoginResponse, error) {
	access, err := s.tokens.GenerateAccessToken(u.ID.String(), u.Username, string(u.Role))
	if err != nil {
		return nil, err
	}

	refresh, err := s.tokens.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, err
	}

	return &user.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    s.now().Add(15 * time.Minute),
		User:         u.ToDTO(),
	}, nil
}

// ========================================
// ACCOUNT SELF-SERVICE
// ========================================

func (s *userService) Get(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Allow(authz.ActionView, u, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, user.ErrForbidden
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) Update(ctx context.Context, actor *authz.Actor, id uuid.UUID, payload []byte) (*user.UserDTO, error) {
	// ========== STEP 1: LOAD AND AUTHORIZE ==========
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Allow(authz.ActionEdit, u, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, user.ErrForbidden
	}

	// ========== STEP 2: APPLY PAYLOAD ==========
	// Username and password are editing-denied in the field map: the username
	// is immutable, and passwords only rotate through ChangePassword.
	if err := mapping.Update(payload, u, s.userConfig); err != nil {
		return nil, err
	}

	// ========== STEP 3: PERSIST ==========
	u.Touch(s.now())
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

// Delete soft-deletes the account. The row survives until the nightly purge
// job removes accounts trashed for more than thirty days.
func (s *userService) Delete(ctx context.Context, actor *authz.Actor, id uuid.UUID) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	allowed, err := s.authorizer.Allow(authz.ActionDelete, u, actor)
	if err != nil {
		return err
	}
	if !allowed {
		return user.ErrForbidden
	}

	if u.IsTrashed() {
		return nil
	}

	u.Trash(s.now())
	u.Touch(s.now())
	return s.repo.Update(ctx, u)
}

func (s *userService) ChangePassword(ctx context.Context, actor *authz.Actor, req user.ChangePasswordRequest) error {
	// ========== STEP 1: VALIDATE ==========
	if actor.IsAnonymous() {
		return user.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return err
	}

	// ========== STEP 2: VERIFY CURRENT PASSWORD ==========
	u, err := s.repo.GetByID(ctx, actor.ID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrInvalidCredentials
	}

	// ========== STEP 3: HASH AND PERSIST ==========
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Touch(s.now())

	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}

	// ========== STEP 4: NOTIFY ==========
	if task, err := queue.NewPasswordChangedTask(queue.PasswordChangedPayload{
		UserID:   u.ID,
		Email:    u.Email,
		Username: u.Username,
	}); err == nil {
		if err := s.queue.Enqueue(ctx, task); err != nil {
			logger.Error("enqueue password changed email failed", err)
		}
	}

	return nil
}

// ========================================
// PROFILES
// ========================================

func (s *userService) GetProfile(ctx context.Context, actor *authz.Actor, userID uuid.UUID) (*user.ProfileDTO, error) {
	p, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Allow(authz.ActionView, p, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, user.ErrForbidden
	}

	dto := p.ToDTO()
	return &dto, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor *authz.Actor, userID uuid.UUID, payload []byte) (*user.ProfileDTO, error) {
	p, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Allow(authz.ActionEdit, p, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, user.ErrForbidden
	}

	if err := mapping.Update(payload, p, s.profileConfig); err != nil {
		return nil, err
	}

	p.Touch(s.now())
	if err := s.repo.UpdateProfile(ctx, p); err != nil {
		return nil, err
	}

	dto := p.ToDTO()
	return &dto, nil
}
