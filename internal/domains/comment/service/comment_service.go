package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
	"photoblog-backend/internal/core/mapping"
	comment "photoblog-backend/internal/domains/comment"
	"photoblog-backend/internal/shared/entity"
	"photoblog-backend/internal/shared/utils"
)

type commentService struct {
	repo       comment.Repository
	authorizer *authz.Authorizer
	now        func() time.Time

	postConfig  mapping.Config[comment.Comment]
	imageConfig mapping.Config[comment.Comment]
}

func NewCommentService(
	repo comment.Repository,
	authorizer *authz.Authorizer,
	gen entity.IDGenerator,
	now func() time.Time,
) comment.Service {
	return &commentService{
		repo:        repo,
		authorizer:  authorizer,
		now:         now,
		postConfig:  comment.NewPostCommentConfig(gen, now),
		imageConfig: comment.NewImageCommentConfig(gen, now),
	}
}

func (s *commentService) Create(ctx context.Context, actor *authz.Actor, kind comment.Kind, payload []byte) (*comment.CommentDTO, error) {
	// ========== STEP 1: PERMISSION CHECK ==========
	allowed, err := s.authorizer.Allow(authz.ActionCreate, &comment.Comment{Kind: kind}, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, comment.ErrForbidden
	}

	// ========== STEP 2: MAP AND VALIDATE ==========
	cfg, err := s.configFor(kind)
	if err != nil {
		return nil, err
	}

	c, err := mapping.Create(payload, cfg)
	if err != nil {
		return nil, err
	}
	c.AuthorID = actor.ID

	// ========== STEP 3: PERSIST ==========
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *commentService) Get(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*comment.CommentDTO, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Allow(authz.ActionView, c, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, comment.ErrForbidden
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *commentService) Update(ctx context.Context, actor *authz.Actor, id uuid.UUID, payload []byte) (*comment.CommentDTO, error) {
	c, err := s.authorized(ctx, authz.ActionEdit, id, actor)
	if err != nil {
		return nil, err
	}

	cfg, err := s.configFor(c.Kind)
	if err != nil {
		return nil, err
	}

	if err := mapping.Update(payload, c, cfg); err != nil {
		return nil, err
	}

	c.Touch(s.now())
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *commentService) Delete(ctx context.Context, actor *authz.Actor, id uuid.UUID) error {
	if _, err := s.authorized(ctx, authz.ActionDelete, id, actor); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *commentService) ListBySubject(ctx context.Context, kind comment.Kind, subjectID uuid.UUID, limit, offset int) (*comment.ListResult, error) {
	if !kind.IsValid() {
		return nil, comment.ErrInvalidKind
	}

	limit, offset = utils.ClampPagination(limit, offset)

	comments, total, err := s.repo.ListBySubject(ctx, kind, subjectID, limit, offset)
	if err != nil {
		return nil, err
	}

	dtos := make([]comment.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, c.ToDTO())
	}

	return &comment.ListResult{Comments: dtos, Total: total}, nil
}

func (s *commentService) configFor(kind comment.Kind) (mapping.Config[comment.Comment], error) {
	switch kind {
	case comment.KindPost:
		return s.postConfig, nil
	case comment.KindImage:
		return s.imageConfig, nil
	default:
		return mapping.Config[comment.Comment]{}, comment.ErrInvalidKind
	}
}

func (s *commentService) authorized(ctx context.Context, action authz.Action, id uuid.UUID, actor *authz.Actor) (*comment.Comment, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Allow(action, c, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, comment.ErrForbidden
	}

	return c, nil
}
