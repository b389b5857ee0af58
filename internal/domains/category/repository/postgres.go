package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	category "photoblog-backend/internal/domains/category"
)

// postgresRepository is the pgx-backed implementation of category.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresRepository{pool: pool}
}

const categoryColumns = `id, kind, title, slug, description, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Kind, c.Title, c.Slug, c.Description, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return scanCategory(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) GetBySlug(ctx context.Context, kind category.Kind, slug string) (*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE kind = $1 AND slug = $2`
	return scanCategory(r.pool.QueryRow(ctx, query, kind, slug))
}

func (r *postgresRepository) Update(ctx context.Context, c *category.Category) error {
	query := `
		UPDATE categories
		SET title = $2, slug = $3, description = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, c.ID, c.Title, c.Slug, c.Description, c.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

func (r *postgresRepository) ListByKind(ctx context.Context, kind category.Kind) ([]*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE kind = $1 ORDER BY title ASC`

	rows, err := r.pool.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func scanCategory(row pgx.Row) (*category.Category, error) {
	var c category.Category
	err := row.Scan(
		&c.ID, &c.Kind, &c.Title, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}
	return &c, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return category.ErrDuplicateSlug
	}
	return fmt.Errorf("categories write: %w", err)
}
