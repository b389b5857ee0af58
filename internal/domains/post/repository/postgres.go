package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	post "photoblog-backend/internal/domains/post"
	"photoblog-backend/pkg/cache"
	"photoblog-backend/pkg/logger"
)

// postgresRepository is the pgx-backed implementation of post.Repository.
// Single-post reads use the cache-aside pattern; list queries always hit the
// database because their filters are too varied to cache usefully.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) post.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const postColumns = `
	id, title, slug, body, category_id, tag_ids,
	author_id, like_count, liker_ids,
	published_at, trashed_at, created_at, updated_at
`

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) error {
	query := `
		INSERT INTO posts (` + postColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Body, p.CategoryID, pq.Array(p.TagIDs),
		p.AuthorID, p.LikeCount, pq.Array(p.LikerIDs),
		p.PublishedAt, p.TrashedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	cacheKey := fmt.Sprintf("post:%s", id)

	var cached post.Post
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, p, 10*time.Minute); err != nil {
		logger.Warn("cache post failed", map[string]interface{}{"id": id.String()})
	}

	return p, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`
	return scanPost(r.pool.QueryRow(ctx, query, slug))
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post) error {
	query := `
		UPDATE posts
		SET title = $2, slug = $3, body = $4, category_id = $5, tag_ids = $6,
		    like_count = $7, liker_ids = $8,
		    published_at = $9, trashed_at = $10, updated_at = $11
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Body, p.CategoryID, pq.Array(p.TagIDs),
		p.LikeCount, pq.Array(p.LikerIDs),
		p.PublishedAt, p.TrashedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	return r.invalidate(ctx, p.ID)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	return r.invalidate(ctx, id)
}

// List pages posts newest-first. Trashed posts never appear; unpublished
// posts appear only when the filter allows them.
func (r *postgresRepository) List(ctx context.Context, filter post.ListFilter) ([]*post.Post, int64, error) {
	where := []string{"trashed_at IS NULL"}
	args := []interface{}{}
	arg := 1

	if filter.PublishedOnly {
		where = append(where, "published_at IS NOT NULL")
	}
	if filter.CategoryID != nil {
		where = append(where, fmt.Sprintf("category_id = $%d", arg))
		args = append(args, *filter.CategoryID)
		arg++
	}
	if filter.TagID != nil {
		where = append(where, fmt.Sprintf("$%d = ANY(tag_ids)", arg))
		args = append(args, *filter.TagID)
		arg++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM posts WHERE ` + whereClause
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM posts WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		postColumns, whereClause, arg, arg+1,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []*post.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, p)
	}

	return posts, total, rows.Err()
}

func (r *postgresRepository) CountByTag(ctx context.Context, tagID uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM posts WHERE trashed_at IS NULL AND $1 = ANY(tag_ids)`,
		tagID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count posts by tag: %w", err)
	}
	return count, nil
}

// PurgeTrashedBefore hard-deletes posts that were soft-deleted before the
// cutoff.
func (r *postgresRepository) PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM posts WHERE trashed_at IS NOT NULL AND trashed_at < $1`, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("purge trashed posts: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Body, &p.CategoryID, pq.Array(&p.TagIDs),
		&p.AuthorID, &p.LikeCount, pq.Array(&p.LikerIDs),
		&p.PublishedAt, &p.TrashedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) error {
	if err := r.cache.Delete(ctx, fmt.Sprintf("post:%s", id)); err != nil {
		logger.Warn("invalidate post cache failed", map[string]interface{}{"id": id.String()})
	}
	return nil
}
