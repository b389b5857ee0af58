package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	tag "photoblog-backend/internal/domains/tag"
)

// postgresRepository is the pgx-backed implementation of tag.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) tag.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, t *tag.Tag) error {
	query := `
		INSERT INTO tags (id, title, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, t.ID, t.Title, t.Slug, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*tag.Tag, error) {
	return r.getBy(ctx, "id", id)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*tag.Tag, error) {
	return r.getBy(ctx, "slug", slug)
}

func (r *postgresRepository) Update(ctx context.Context, t *tag.Tag) error {
	query := `
		UPDATE tags
		SET title = $2, slug = $3, updated_at = $4
		WHERE id = $1
	`

	cmdTag, err := r.pool.Exec(ctx, query, t.ID, t.Title, t.Slug, t.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return tag.ErrTagNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return tag.ErrTagNotFound
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*tag.Tag, error) {
	query := `
		SELECT id, title, slug, created_at, updated_at
		FROM tags
		ORDER BY title ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []*tag.Tag
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.ID, &t.Title, &t.Slug, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, &t)
	}

	return tags, rows.Err()
}

func (r *postgresRepository) getBy(ctx context.Context, column string, value interface{}) (*tag.Tag, error) {
	query := fmt.Sprintf(`
		SELECT id, title, slug, created_at, updated_at
		FROM tags
		WHERE %s = $1
	`, column)

	var t tag.Tag
	err := r.pool.QueryRow(ctx, query, value).Scan(
		&t.ID, &t.Title, &t.Slug, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tag.ErrTagNotFound
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}

	return &t, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return tag.ErrDuplicateSlug
	}
	return fmt.Errorf("tags write: %w", err)
}
