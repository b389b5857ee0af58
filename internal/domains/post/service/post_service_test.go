package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoblog-backend/internal/core/authz"
	post "photoblog-backend/internal/domains/post"
	"photoblog-backend/internal/shared/entity"
)

// fakeRepository is an in-memory post.Repository for service tests.
type fakeRepository struct {
	posts map[uuid.UUID]*post.Post
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{posts: make(map[uuid.UUID]*post.Post)}
}

func (f *fakeRepository) Create(_ context.Context, p *post.Post) error {
	cp := *p
	f.posts[p.ID] = &cp
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepository) GetBySlug(_ context.Context, slug string) (*post.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, post.ErrPostNotFound
}

func (f *fakeRepository) Update(_ context.Context, p *post.Post) error {
	if _, ok := f.posts[p.ID]; !ok {
		return post.ErrPostNotFound
	}
	cp := *p
	f.posts[p.ID] = &cp
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return post.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeRepository) List(_ context.Context, filter post.ListFilter) ([]*post.Post, int64, error) {
	var out []*post.Post
	for _, p := range f.posts {
		if p.IsTrashed() {
			continue
		}
		if filter.PublishedOnly && !p.IsPublished() {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepository) CountByTag(_ context.Context, tagID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range f.posts {
		for _, id := range p.TagIDs {
			if id == tagID {
				n++
			}
		}
	}
	return n, nil
}

func (f *fakeRepository) PurgeTrashedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for id, p := range f.posts {
		if p.TrashedAt != nil && p.TrashedAt.Before(cutoff) {
			delete(f.posts, id)
			n++
		}
	}
	return n, nil
}

var (
	adminActor = &authz.Actor{ID: uuid.New(), Username: "admin", Role: authz.RoleAdministrator}
	plainActor = &authz.Actor{ID: uuid.New(), Username: "reader", Role: authz.RoleUser}
)

func newTestService(repo post.Repository) post.Service {
	authorizer := authz.NewAuthorizer(post.Voter{})
	now := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return NewPostService(repo, authorizer, entity.UUIDGenerator{}, now)
}

func validPayload() []byte {
	return []byte(`{
		"title": "This is a valid enough post title",
		"body": "<p>` + strings.Repeat("x", 40) + `</p>"
	}`)
}

func TestCreateRequiresAdmin(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.Create(context.Background(), plainActor, validPayload())
	assert.ErrorIs(t, err, post.ErrForbidden)

	dto, err := svc.Create(context.Background(), adminActor, validPayload())
	require.NoError(t, err)
	assert.Equal(t, adminActor.ID, dto.AuthorID)
	assert.NotNil(t, dto.PublishedAt)
}

func TestDestroyRequiresTrash(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Create(context.Background(), adminActor, validPayload())
	require.NoError(t, err)

	// Destroying a live post is rejected before the repository delete.
	err = svc.Destroy(context.Background(), adminActor, dto.ID)
	assert.ErrorIs(t, err, post.ErrNotTrashed)
	_, err = repo.GetByID(context.Background(), dto.ID)
	assert.NoError(t, err)

	// Trash first, then destroy succeeds.
	_, err = svc.Trash(context.Background(), adminActor, dto.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Destroy(context.Background(), adminActor, dto.ID))
	_, err = repo.GetByID(context.Background(), dto.ID)
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestListHidesDraftsFromNonAdmins(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Create(context.Background(), adminActor, validPayload())
	require.NoError(t, err)

	_, err = svc.Unpublish(context.Background(), adminActor, dto.ID)
	require.NoError(t, err)

	result, err := svc.List(context.Background(), plainActor, post.ListFilter{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Posts)

	result, err = svc.List(context.Background(), adminActor, post.ListFilter{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, result.Posts, 1)
}

func TestGetUnpublishedForbiddenForAnonymous(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Create(context.Background(), adminActor, validPayload())
	require.NoError(t, err)

	_, err = svc.Unpublish(context.Background(), adminActor, dto.ID)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), nil, dto.ID)
	assert.ErrorIs(t, err, post.ErrForbidden)
}

func TestLikeUnlike(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Create(context.Background(), adminActor, validPayload())
	require.NoError(t, err)

	liked, err := svc.Like(context.Background(), plainActor, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikeCount)

	// Liking twice is a no-op.
	liked, err = svc.Like(context.Background(), plainActor, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikeCount)

	unliked, err := svc.Unlike(context.Background(), plainActor, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.LikeCount)
}

func TestLikeRequiresAuthentication(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Create(context.Background(), adminActor, validPayload())
	require.NoError(t, err)

	_, err = svc.Like(context.Background(), nil, dto.ID)
	assert.ErrorIs(t, err, post.ErrForbidden)
}

func TestExportToExcel(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Create(context.Background(), adminActor, validPayload())
	require.NoError(t, err)

	// Unpublished posts still appear in the admin export.
	_, err = svc.Unpublish(context.Background(), adminActor, dto.ID)
	require.NoError(t, err)

	f, err := svc.ExportToExcel(context.Background(), adminActor, post.ListFilter{})
	require.NoError(t, err)

	header, err := f.GetCellValue("Post list", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	id, err := f.GetCellValue("Post list", "A2")
	require.NoError(t, err)
	assert.Equal(t, dto.ID.String(), id)

	title, err := f.GetCellValue("Post list", "B2")
	require.NoError(t, err)
	assert.Equal(t, dto.Title, title)
}

func TestExportToExcelRequiresAdmin(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.ExportToExcel(context.Background(), plainActor, post.ListFilter{})
	assert.ErrorIs(t, err, post.ErrForbidden)
}

func TestUpdateRetitlesAndReslugs(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	dto, err := svc.Create(context.Background(), adminActor, validPayload())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), adminActor, dto.ID, []byte(`{
		"title": "A freshly retitled photography post"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "A freshly retitled photography post", updated.Title)
	assert.Equal(t, "a-freshly-retitled-photography-post", updated.Slug)
	assert.Equal(t, dto.Body, updated.Body)
}
