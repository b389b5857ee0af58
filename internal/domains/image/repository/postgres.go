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

	image "photoblog-backend/internal/domains/image"
	"photoblog-backend/pkg/cache"
	"photoblog-backend/pkg/logger"
)

// postgresRepository is the pgx-backed implementation of image.Repository.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) image.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const imageColumns = `
	id, title, slug, description, original, half, thumbnail,
	category_id, tag_ids, aperture, focal_length, iso,
	author_id, like_count, liker_ids,
	published_at, trashed_at, created_at, updated_at
`

func (r *postgresRepository) Create(ctx context.Context, i *image.Image) error {
	query := `
		INSERT INTO images (` + imageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.pool.Exec(ctx, query,
		i.ID, i.Title, i.Slug, i.Description, i.Original, i.Half, i.Thumbnail,
		i.CategoryID, pq.Array(i.TagIDs), i.Aperture, i.FocalLength, i.ISO,
		i.AuthorID, i.LikeCount, pq.Array(i.LikerIDs),
		i.PublishedAt, i.TrashedAt, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*image.Image, error) {
	cacheKey := fmt.Sprintf("image:%s", id)

	var cached image.Image
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + imageColumns + ` FROM images WHERE id = $1`

	i, err := scanImage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, i, 10*time.Minute); err != nil {
		logger.Warn("cache image failed", map[string]interface{}{"id": id.String()})
	}

	return i, nil
}

func (r *postgresRepository) Update(ctx context.Context, i *image.Image) error {
	query := `
		UPDATE images
		SET title = $2, slug = $3, description = $4,
		    original = $5, half = $6, thumbnail = $7,
		    category_id = $8, tag_ids = $9,
		    aperture = $10, focal_length = $11, iso = $12,
		    like_count = $13, liker_ids = $14,
		    published_at = $15, trashed_at = $16, updated_at = $17
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		i.ID, i.Title, i.Slug, i.Description,
		i.Original, i.Half, i.Thumbnail,
		i.CategoryID, pq.Array(i.TagIDs),
		i.Aperture, i.FocalLength, i.ISO,
		i.LikeCount, pq.Array(i.LikerIDs),
		i.PublishedAt, i.TrashedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return image.ErrImageNotFound
	}

	return r.invalidate(ctx, i.ID)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return image.ErrImageNotFound
	}

	return r.invalidate(ctx, id)
}

func (r *postgresRepository) List(ctx context.Context, filter image.ListFilter) ([]*image.Image, int64, error) {
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
	countQuery := `SELECT COUNT(*) FROM images WHERE ` + whereClause
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count images: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM images WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		imageColumns, whereClause, arg, arg+1,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	var images []*image.Image
	for rows.Next() {
		i, err := scanImage(rows)
		if err != nil {
			return nil, 0, err
		}
		images = append(images, i)
	}

	return images, total, rows.Err()
}

func (r *postgresRepository) CountByTag(ctx context.Context, tagID uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM images WHERE trashed_at IS NULL AND $1 = ANY(tag_ids)`,
		tagID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count images by tag: %w", err)
	}
	return count, nil
}

// PurgeTrashedBefore hard-deletes images that were soft-deleted before the
// cutoff. Stored variant objects are not touched here; image destruction
// through the service removes them.
func (r *postgresRepository) PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM images WHERE trashed_at IS NOT NULL AND trashed_at < $1`, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("purge trashed images: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanImage(row pgx.Row) (*image.Image, error) {
	var i image.Image
	err := row.Scan(
		&i.ID, &i.Title, &i.Slug, &i.Description, &i.Original, &i.Half, &i.Thumbnail,
		&i.CategoryID, pq.Array(&i.TagIDs), &i.Aperture, &i.FocalLength, &i.ISO,
		&i.AuthorID, &i.LikeCount, pq.Array(&i.LikerIDs),
		&i.PublishedAt, &i.TrashedAt, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, image.ErrImageNotFound
		}
		return nil, fmt.Errorf("scan image: %w", err)
	}
	return &i, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) error {
	if err := r.cache.Delete(ctx, fmt.Sprintf("image:%s", id)); err != nil {
		logger.Warn("invalidate image cache failed", map[string]interface{}{"id": id.String()})
	}
	return nil
}
