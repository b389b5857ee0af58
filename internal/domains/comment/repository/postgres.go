package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	comment "photoblog-backend/internal/domains/comment"
)

// postgresRepository is the pgx-backed implementation of comment.Repository.
// Comments are small and short-lived enough that no cache layer pays off.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) error {
	query := `
		INSERT INTO comments (id, kind, subject_id, body, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Kind, c.SubjectID, c.Body, c.AuthorID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	query := `
		SELECT id, kind, subject_id, body, author_id, created_at, updated_at
		FROM comments
		WHERE id = $1
	`

	var c comment.Comment
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Kind, &c.SubjectID, &c.Body, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &c, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *comment.Comment) error {
	query := `
		UPDATE comments
		SET body = $2, updated_at = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, c.ID, c.Body, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func (r *postgresRepository) ListBySubject(ctx context.Context, kind comment.Kind, subjectID uuid.UUID, limit, offset int) ([]*comment.Comment, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM comments WHERE kind = $1 AND subject_id = $2`,
		kind, subjectID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	query := `
		SELECT id, kind, subject_id, body, author_id, created_at, updated_at
		FROM comments
		WHERE kind = $1 AND subject_id = $2
		ORDER BY created_at ASC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, kind, subjectID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []*comment.Comment
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(
			&c.ID, &c.Kind, &c.SubjectID, &c.Body, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, &c)
	}

	return comments, total, rows.Err()
}
