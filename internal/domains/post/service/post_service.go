package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"photoblog-backend/internal/core/authz"
	"photoblog-backend/internal/core/mapping"
	post "photoblog-backend/internal/domains/post"
	"photoblog-backend/internal/shared/entity"
	"photoblog-backend/internal/shared/utils"
)

type postService struct {
	repo       post.Repository
	authorizer *authz.Authorizer
	now        func() time.Time

	config mapping.Config[post.Post]
}

func NewPostService(
	repo post.Repository,
	authorizer *authz.Authorizer,
	gen entity.IDGenerator,
	now func() time.Time,
) post.Service {
	return &postService{
		repo:       repo,
		authorizer: authorizer,
		now:        now,
		config:     post.NewPostConfig(gen, now),
	}
}

func (s *postService) Create(ctx context.Context, actor *authz.Actor, payload []byte) (*post.PostDTO, error) {
	// ========== STEP 1: PERMISSION CHECK ==========
	allowed, err := s.authorizer.Allow(authz.ActionCreate, &post.Post{}, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, post.ErrForbidden
	}

	// ========== STEP 2: MAP AND VALIDATE ==========
	p, err := mapping.Create(payload, s.config)
	if err != nil {
		return nil, err
	}
	p.AuthorID = actor.ID

	// ========== STEP 3: PERSIST ==========
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	dto := p.ToDTO()
	return &dto, nil
}

func (s *postService) Get(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*post.PostDTO, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.viewable(p, actor)
}

func (s *postService) GetBySlug(ctx context.Context, actor *authz.Actor, slug string) (*post.PostDTO, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.viewable(p, actor)
}

func (s *postService) Update(ctx context.Context, actor *authz.Actor, id uuid.UUID, payload []byte) (*post.PostDTO, error) {
	p, err := s.authorized(ctx, authz.ActionEdit, id, actor)
	if err != nil {
		return nil, err
	}

	if err := mapping.Update(payload, p, s.config); err != nil {
		return nil, err
	}

	return s.save(ctx, p)
}

// List pages posts. Non-administrators only ever see published posts; the
// predicate is injected here so no handler can forget it.
func (s *postService) List(ctx context.Context, actor *authz.Actor, filter post.ListFilter) (*post.ListResult, error) {
	filter.PublishedOnly = !actor.IsAdmin()
	filter.Limit, filter.Offset = utils.ClampPagination(filter.Limit, filter.Offset)

	posts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]post.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, p.ToDTO())
	}

	return &post.ListResult{Posts: dtos, Total: total}, nil
}

// ExportToExcel produces an XLSX snapshot of the post listing for
// administrators. Unpublished posts are included; the page size is capped at
// 100 rows.
func (s *postService) ExportToExcel(ctx context.Context, actor *authz.Actor, filter post.ListFilter) (*excelize.File, error) {
	// ========== STEP 1: PERMISSION CHECK ==========
	if !actor.IsAdmin() {
		return nil, post.ErrForbidden
	}

	// ========== STEP 2: FETCH LISTING ==========
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	filter.PublishedOnly = false

	posts, _, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// ========== STEP 3: BUILD WORKBOOK ==========
	return buildPostsExcelFile(posts)
}

func buildPostsExcelFile(posts []*post.Post) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Post list"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"ID",
		"Title",
		"Slug",
		"Author ID",
		"Category ID",
		"Tag IDs",
		"Like Count",
		"Published At",
		"Created At",
	}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	if headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err == nil {
		f.SetCellStyle(sheetName, "A1", "I1", headerStyle)
	}

	for i, p := range posts {
		rowNum := i + 2
		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, rowNum)
			return name
		}

		f.SetCellValue(sheetName, cell(1), p.ID.String())
		f.SetCellValue(sheetName, cell(2), p.Title)
		f.SetCellValue(sheetName, cell(3), p.Slug)
		f.SetCellValue(sheetName, cell(4), p.AuthorID.String())

		if p.CategoryID != nil {
			f.SetCellValue(sheetName, cell(5), p.CategoryID.String())
		}

		tags := make([]string, 0, len(p.TagIDs))
		for _, id := range p.TagIDs {
			tags = append(tags, id.String())
		}
		f.SetCellValue(sheetName, cell(6), strings.Join(tags, "|"))

		f.SetCellValue(sheetName, cell(7), p.LikeCount)

		if p.PublishedAt != nil {
			f.SetCellValue(sheetName, cell(8), p.PublishedAt.Format("2006-01-02 15:04:05"))
		}
		f.SetCellValue(sheetName, cell(9), p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return f, nil
}

// ========================================
// LIFECYCLE
// ========================================

func (s *postService) Publish(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*post.PostDTO, error) {
	p, err := s.authorized(ctx, authz.ActionPublish, id, actor)
	if err != nil {
		return nil, err
	}

	p.Publish(s.now())
	return s.save(ctx, p)
}

func (s *postService) Unpublish(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*post.PostDTO, error) {
	p, err := s.authorized(ctx, authz.ActionPublish, id, actor)
	if err != nil {
		return nil, err
	}

	p.Unpublish()
	return s.save(ctx, p)
}

func (s *postService) Trash(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*post.PostDTO, error) {
	p, err := s.authorized(ctx, authz.ActionTrash, id, actor)
	if err != nil {
		return nil, err
	}

	p.Trash(s.now())
	return s.save(ctx, p)
}

func (s *postService) Restore(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*post.PostDTO, error) {
	p, err := s.authorized(ctx, authz.ActionRestore, id, actor)
	if err != nil {
		return nil, err
	}

	p.Restore()
	return s.save(ctx, p)
}

// Destroy hard-deletes a post. The post must already be trashed; destroying a
// live post is rejected before the repository is touched.
func (s *postService) Destroy(ctx context.Context, actor *authz.Actor, id uuid.UUID) error {
	p, err := s.authorized(ctx, authz.ActionDelete, id, actor)
	if err != nil {
		return err
	}

	if !p.IsTrashed() {
		return post.ErrNotTrashed
	}

	return s.repo.Delete(ctx, id)
}

// ========================================
// LIKES
// ========================================

func (s *postService) Like(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*post.PostDTO, error) {
	p, err := s.likeable(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	p.AddLike(actor.ID)
	return s.save(ctx, p)
}

func (s *postService) Unlike(ctx context.Context, actor *authz.Actor, id uuid.UUID) (*post.PostDTO, error) {
	p, err := s.likeable(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	p.RemoveLike(actor.ID)
	return s.save(ctx, p)
}

// ========================================
// HELPERS
// ========================================

func (s *postService) viewable(p *post.Post, actor *authz.Actor) (*post.PostDTO, error) {
	allowed, err := s.authorizer.Allow(authz.ActionView, p, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, post.ErrForbidden
	}

	dto := p.ToDTO()
	return &dto, nil
}

func (s *postService) authorized(ctx context.Context, action authz.Action, id uuid.UUID, actor *authz.Actor) (*post.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Allow(action, p, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, post.ErrForbidden
	}

	return p, nil
}

// likeable loads a post a fully authenticated actor may view.
func (s *postService) likeable(ctx context.Context, id uuid.UUID, actor *authz.Actor) (*post.Post, error) {
	if !actor.IsFullyAuthenticated() {
		return nil, post.ErrForbidden
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.Allow(authz.ActionView, p, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, post.ErrForbidden
	}

	return p, nil
}

func (s *postService) save(ctx context.Context, p *post.Post) (*post.PostDTO, error) {
	p.Touch(s.now())
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	dto := p.ToDTO()
	return &dto, nil
}
