package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"photoblog-backend/internal/core/authz"
	"photoblog-backend/internal/core/mapping"
	category "photoblog-backend/internal/domains/category"
	"photoblog-backend/internal/shared/entity"
)

type categoryService struct {
	repo       category.Repository
	authorizer *authz.Authorizer
	now        func() time.Time

	postConfig  mapping.Config[category.Category]
	imageConfig mapping.Config[category.Category]
}

func NewCategoryService(
	repo category.Repository,
	authorizer *authz.Authorizer,
	gen entity.IDGenerator,
	now func() time.Time,
) category.Service {
	return &categoryService{
		repo:        repo,
		authorizer:  authorizer,
		now:         now,
		postConfig:  category.NewPostCategoryConfig(gen, now),
		imageConfig: category.NewImageCategoryConfig(gen, now),
	}
}

func (s *categoryService) Create(ctx context.Context, actor *authz.Actor, kind category.Kind, payload []byte) (*category.CategoryDTO, error) {
	allowed, err := s.authorizer.Allow(authz.ActionCreate, &category.Category{Kind: kind}, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, category.ErrForbidden
	}

	cfg, err := s.configFor(kind)
	if err != nil {
		return nil, err
	}

	c, err := mapping.Create(payload, cfg)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*category.CategoryDTO, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, kind category.Kind, slug string) (*category.CategoryDTO, error) {
	if !kind.IsValid() {
		return nil, category.ErrInvalidKind
	}

	c, err := s.repo.GetBySlug(ctx, kind, slug)
	if err != nil {
		return nil, err
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *categoryService) Update(ctx context.Context, actor *authz.Actor, id uuid.UUID, payload []byte) (*category.CategoryDTO, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Allow(authz.ActionEdit, c, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, category.ErrForbidden
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

func (s *categoryService) Delete(ctx context.Context, actor *authz.Actor, id uuid.UUID) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	allowed, err := s.authorizer.Allow(authz.ActionDelete, c, actor)
	if err != nil {
		return err
	}
	if !allowed {
		return category.ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}

func (s *categoryService) ListByKind(ctx context.Context, kind category.Kind) ([]category.CategoryDTO, error) {
	if !kind.IsValid() {
		return nil, category.ErrInvalidKind
	}

	categories, err := s.repo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	dtos := make([]category.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, c.ToDTO())
	}
	return dtos, nil
}

func (s *categoryService) configFor(kind category.Kind) (mapping.Config[category.Category], error) {
	switch kind {
	case category.KindPost:
		return s.postConfig, nil
	case category.KindImage:
		return s.imageConfig, nil
	default:
		return mapping.Config[category.Category]{}, category.ErrInvalidKind
	}
}
