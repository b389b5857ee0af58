package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
	"photoblog-backend/internal/core/mapping"
	image "photoblog-backend/internal/domains/image"
	post "photoblog-backend/internal/domains/post"
	tag "photoblog-backend/internal/domains/tag"
	"photoblog-backend/internal/shared/entity"
)

type tagService struct {
	repo       tag.Repository
	posts      post.Repository
	images     image.Repository
	authorizer *authz.Authorizer
	now        func() time.Time

	config mapping.Config[tag.Tag]
}

func NewTagService(
	repo tag.Repository,
	posts post.Repository,
	images image.Repository,
	authorizer *authz.Authorizer,
	gen entity.IDGenerator,
	now func() time.Time,
) tag.Service {
	return &tagService{
		repo:       repo,
		posts:      posts,
		images:     images,
		authorizer: authorizer,
		now:        now,
		config:     tag.NewTagConfig(gen, now),
	}
}

func (s *tagService) Create(ctx context.Context, actor *authz.Actor, payload []byte) (*tag.TagDTO, error) {
	allowed, err := s.authorizer.Allow(authz.ActionCreate, &tag.Tag{}, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, tag.ErrForbidden
	}

	t, err := mapping.Create(payload, s.config)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	dto := t.ToDTO()
	return &dto, nil
}

func (s *tagService) Get(ctx context.Context, id uuid.UUID) (*tag.TagDTO, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := t.ToDTO()
	return &dto, nil
}

func (s *tagService) GetBySlug(ctx context.Context, slug string) (*tag.TagDTO, error) {
	t, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	dto := t.ToDTO()
	return &dto, nil
}

func (s *tagService) Update(ctx context.Context, actor *authz.Actor, id uuid.UUID, payload []byte) (*tag.TagDTO, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Allow(authz.ActionEdit, t, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, tag.ErrForbidden
	}

	if err := mapping.Update(payload, t, s.config); err != nil {
		return nil, err
	}

	t.Touch(s.now())
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	dto := t.ToDTO()
	return &dto, nil
}

func (s *tagService) Delete(ctx context.Context, actor *authz.Actor, id uuid.UUID) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	allowed, err := s.authorizer.Allow(authz.ActionDelete, t, actor)
	if err != nil {
		return err
	}
	if !allowed {
		return tag.ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}

func (s *tagService) List(ctx context.Context) ([]tag.TagDTO, error) {
	tags, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]tag.TagDTO, 0, len(tags))
	for _, t := range tags {
		dtos = append(dtos, t.ToDTO())
	}
	return dtos, nil
}

// Membership counts how many posts and images carry the tag.
func (s *tagService) Membership(ctx context.Context, id uuid.UUID) (*tag.MembershipDTO, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	postCount, err := s.posts.CountByTag(ctx, id)
	if err != nil {
		return nil, err
	}

	imageCount, err := s.images.CountByTag(ctx, id)
	if err != nil {
		return nil, err
	}

	return &tag.MembershipDTO{
		Tag:        t.ToDTO(),
		PostCount:  postCount,
		ImageCount: imageCount,
	}, nil
}
