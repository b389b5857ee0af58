package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	user "photoblog-backend/internal/domains/user"
	"photoblog-backend/pkg/cache"
	"photoblog-backend/pkg/logger"
)

// postgresRepository is the pgx-backed implementation of user.Repository.
// Reads go through the cache-aside pattern; every write invalidates the
// cached row.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) user.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// ========================================
// ACCOUNT CRUD
// ========================================

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (
			id, username, email, password_hash, role,
			trashed_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.TrashedAt,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	cacheKey := fmt.Sprintf("user:%s", id)

	var cached user.User
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `
		SELECT id, username, email, password_hash, role,
		       trashed_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	u, err := r.scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, u, 10*time.Minute); err != nil {
		logger.Warn("cache user failed", map[string]interface{}{"id": id.String()})
	}

	return u, nil
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `
		SELECT id, username, email, password_hash, role,
		       trashed_at, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	return r.scanUser(r.pool.QueryRow(ctx, query, username))
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET email = $2, password_hash = $3, role = $4,
		    trashed_at = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.TrashedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return r.invalidate(ctx, u.ID)
}

// Delete removes the row permanently. Soft deletion is an Update that sets
// trashed_at; this is the purge path.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return r.invalidate(ctx, id)
}

func (r *postgresRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

// ========================================
// PROFILES
// ========================================

func (r *postgresRepository) CreateProfile(ctx context.Context, p *user.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, avatar, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, p.ID, p.UserID, p.Avatar, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	query := `
		SELECT id, user_id, avatar, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var p user.Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Avatar, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &p, nil
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, p *user.Profile) error {
	query := `
		UPDATE profiles
		SET avatar = $2, updated_at = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, p.ID, p.Avatar, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrProfileNotFound
	}
	return nil
}

// ========================================
// MAINTENANCE
// ========================================

// PurgeTrashedBefore hard-deletes accounts that were soft-deleted before the
// cutoff. Profiles go with them via ON DELETE CASCADE.
func (r *postgresRepository) PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM users WHERE trashed_at IS NOT NULL AND trashed_at < $1`, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("purge trashed users: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ========================================
// HELPERS
// ========================================

func (r *postgresRepository) scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&u.TrashedAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) error {
	if err := r.cache.Delete(ctx, fmt.Sprintf("user:%s", id)); err != nil {
		logger.Warn("invalidate user cache failed", map[string]interface{}{"id": id.String()})
	}
	return nil
}

// mapUniqueViolation translates PostgreSQL unique violations (23505) into
// domain errors so handlers can answer 409.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "username"):
			return user.ErrDuplicateUsername
		case strings.Contains(pgErr.ConstraintName, "email"):
			return user.ErrDuplicateEmail
		}
	}
	return fmt.Errorf("users write: %w", err)
}
