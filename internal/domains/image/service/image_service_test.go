package service

import (
	"bytes"
	"context"
	stdimage "image"
	"image/jpeg"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoblog-backend/internal/core/authz"
	image "photoblog-backend/internal/domains/image"
	"photoblog-backend/internal/infrastructure/storage"
	"photoblog-backend/internal/shared/entity"
)

// fakeRepository is an in-memory image.Repository.
type fakeRepository struct {
	images map[uuid.UUID]*image.Image
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{images: make(map[uuid.UUID]*image.Image)}
}

func (f *fakeRepository) Create(_ context.Context, i *image.Image) error {
	cp := *i
	f.images[i.ID] = &cp
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*image.Image, error) {
	i, ok := f.images[id]
	if !ok {
		return nil, image.ErrImageNotFound
	}
	cp := *i
	return &cp, nil
}

func (f *fakeRepository) Update(_ context.Context, i *image.Image) error {
	if _, ok := f.images[i.ID]; !ok {
		return image.ErrImageNotFound
	}
	cp := *i
	f.images[i.ID] = &cp
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.images[id]; !ok {
		return image.ErrImageNotFound
	}
	delete(f.images, id)
	return nil
}

func (f *fakeRepository) List(_ context.Context, filter image.ListFilter) ([]*image.Image, int64, error) {
	var out []*image.Image
	for _, i := range f.images {
		if i.IsTrashed() {
			continue
		}
		if filter.PublishedOnly && !i.IsPublished() {
			continue
		}
		cp := *i
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepository) CountByTag(_ context.Context, tagID uuid.UUID) (int64, error) {
	var n int64
	for _, i := range f.images {
		for _, id := range i.TagIDs {
			if id == tagID {
				n++
			}
		}
	}
	return n, nil
}

func (f *fakeRepository) PurgeTrashedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for id, i := range f.images {
		if i.TrashedAt != nil && i.TrashedAt.Before(cutoff) {
			delete(f.images, id)
			n++
		}
	}
	return n, nil
}

// fakeStorage records uploads and removals in memory.
type fakeStorage struct {
	objects map[string][]byte
	removed []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	f.objects[key] = data
	return "http://storage.test/photos/" + key, nil
}

func (f *fakeStorage) Remove(_ context.Context, key string) error {
	f.removed = append(f.removed, key)
	delete(f.objects, key)
	return nil
}

var (
	adminActor = &authz.Actor{ID: uuid.New(), Username: "admin", Role: authz.RoleAdministrator}
	plainActor = &authz.Actor{ID: uuid.New(), Username: "reader", Role: authz.RoleUser}
)

func newTestService(repo image.Repository, store *fakeStorage) image.Service {
	authorizer := authz.NewAuthorizer(image.Voter{})
	now := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return NewImageService(repo, authorizer, storage.NewImageProcessor(), store, entity.UUIDGenerator{}, now)
}

func makeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func validUpload(t *testing.T) image.Upload {
	return image.Upload{
		Filename: "harbor.jpg",
		Data:     makeJPEG(t, 64, 48),
		Meta:     []byte(`{"title": "Harbor at dusk", "aperture": "2.8"}`),
	}
}

func TestUploadPipeline(t *testing.T) {
	repo := newFakeRepository()
	store := newFakeStorage()
	svc := newTestService(repo, store)

	dto, err := svc.Upload(context.Background(), adminActor, validUpload(t))
	require.NoError(t, err)

	assert.Equal(t, "Harbor at dusk", dto.Title)
	assert.Equal(t, adminActor.ID, dto.AuthorID)
	assert.NotNil(t, dto.PublishedAt)
	require.NotNil(t, dto.Aperture)
	assert.Equal(t, "2.8", dto.Aperture.String())

	// All three variants stored; every URL field filled.
	assert.Len(t, store.objects, 3)
	assert.NotEmpty(t, dto.Original)
	assert.NotEmpty(t, dto.Half)
	assert.NotEmpty(t, dto.Thumbnail)
}

func TestUploadRequiresAdmin(t *testing.T) {
	svc := newTestService(newFakeRepository(), newFakeStorage())

	_, err := svc.Upload(context.Background(), plainActor, validUpload(t))
	assert.ErrorIs(t, err, image.ErrForbidden)
}

func TestUploadRejectsNonImage(t *testing.T) {
	svc := newTestService(newFakeRepository(), newFakeStorage())

	up := validUpload(t)
	up.Data = []byte("definitely not an image")

	_, err := svc.Upload(context.Background(), adminActor, up)
	assert.ErrorIs(t, err, image.ErrInvalidUpload)
}

func TestDestroyRequiresTrash(t *testing.T) {
	repo := newFakeRepository()
	store := newFakeStorage()
	svc := newTestService(repo, store)

	dto, err := svc.Upload(context.Background(), adminActor, validUpload(t))
	require.NoError(t, err)

	// Destroying a live image is rejected before the repository delete.
	err = svc.Destroy(context.Background(), adminActor, dto.ID)
	assert.ErrorIs(t, err, image.ErrNotTrashed)
	_, err = repo.GetByID(context.Background(), dto.ID)
	assert.NoError(t, err)

	// Trash first, then destroy succeeds and removes the stored variants.
	_, err = svc.Trash(context.Background(), adminActor, dto.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Destroy(context.Background(), adminActor, dto.ID))
	_, err = repo.GetByID(context.Background(), dto.ID)
	assert.ErrorIs(t, err, image.ErrImageNotFound)
	assert.Empty(t, store.objects)
}

func TestListHidesDraftsFromNonAdmins(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, newFakeStorage())

	dto, err := svc.Upload(context.Background(), adminActor, validUpload(t))
	require.NoError(t, err)

	_, err = svc.Unpublish(context.Background(), adminActor, dto.ID)
	require.NoError(t, err)

	result, err := svc.List(context.Background(), plainActor, image.ListFilter{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Images)

	result, err = svc.List(context.Background(), adminActor, image.ListFilter{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, result.Images, 1)
}
